// Package services contains the application services of the Pulse client:
// the session gateway, the feed loader and the post mutator. Each owns a
// remote client plus the store it is allowed to mutate; no other path
// writes to those stores.
package services

import (
	"context"

	"github.com/dkurbatovs/pulse/internal/client/api"
	"github.com/dkurbatovs/pulse/internal/client/form"
	"github.com/dkurbatovs/pulse/internal/client/models"
	"github.com/dkurbatovs/pulse/internal/client/state"
	"github.com/dkurbatovs/pulse/internal/logging"
)

// NavigateFunc is the router hook invoked after a successful login, once
// the session has been published.
type NavigateFunc func(ctx context.Context, sess models.Session)

// AuthService is the session gateway: it issues register/login requests
// and, on login success, publishes the session to the process-wide store.
// It satisfies form.Gateway. Neither operation retries; a resubmission is
// a fresh request.
type AuthService struct {
	client   api.Client
	sessions *state.SessionStore
	navigate NavigateFunc
	log      logging.Logger
}

func NewAuthService(client api.Client, sessions *state.SessionStore, navigate NavigateFunc, log logging.Logger) *AuthService {
	return &AuthService{client: client, sessions: sessions, navigate: navigate, log: log}
}

// Register sends the registration draft with the staged picture's data URL
// projected into the flat picturePath field. The caller owns the follow-up
// mode transition; no session is created here.
func (s *AuthService) Register(ctx context.Context, d form.Draft) (models.UserRecord, error) {
	req := api.RegisterRequest{
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Password:    d.Password,
		Location:    d.Location,
		Occupation:  d.Occupation,
		Picture:     api.Picture{Name: d.Picture.Name, Base64URL: d.Picture.Base64URL},
		PicturePath: d.Picture.Base64URL,
	}

	user, err := s.client.Register(ctx, req)
	if err != nil {
		return models.UserRecord{}, err
	}
	s.log.Info(ctx, "account created", "user", user.ID)
	return user, nil
}

// Login authenticates and, on success, publishes the returned session and
// hands control to the navigation hook.
func (s *AuthService) Login(ctx context.Context, d form.Draft) (models.Session, error) {
	sess, err := s.client.Login(ctx, d.Email, d.Password)
	if err != nil {
		return models.Session{}, err
	}

	s.sessions.Set(sess)
	s.log.Info(ctx, "logged in", "user", sess.User.ID)

	if s.navigate != nil {
		s.navigate(ctx, sess)
	}
	return sess, nil
}

// Logout clears the published session. Subsequent authenticated requests
// are refused until the next login.
func (s *AuthService) Logout(ctx context.Context) {
	s.sessions.Clear()
	s.log.Info(ctx, "logged out")
}
