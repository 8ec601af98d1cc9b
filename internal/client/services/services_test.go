package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dkurbatovs/pulse/internal/client/api"
	"github.com/dkurbatovs/pulse/internal/client/models"
	"github.com/dkurbatovs/pulse/internal/client/state"
	"github.com/dkurbatovs/pulse/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient implements api.Client with per-operation hooks; unset hooks
// fail the calling test.
type fakeClient struct {
	t *testing.T

	registerFn func(req api.RegisterRequest) (models.UserRecord, error)
	loginFn    func(email, password string) (models.Session, error)
	globalFn   func(token string) ([]models.PostEntity, error)
	userFn     func(token, userID string) ([]models.PostEntity, error)
	likeFn     func(token, postID, userID string) (models.PostEntity, error)
	commentFn  func(token, postID, comment string) (models.PostEntity, error)
}

func (f *fakeClient) Register(_ context.Context, req api.RegisterRequest) (models.UserRecord, error) {
	if f.registerFn == nil {
		f.t.Fatal("unexpected Register call")
	}
	return f.registerFn(req)
}

func (f *fakeClient) Login(_ context.Context, email, password string) (models.Session, error) {
	if f.loginFn == nil {
		f.t.Fatal("unexpected Login call")
	}
	return f.loginFn(email, password)
}

func (f *fakeClient) GlobalFeed(_ context.Context, token string) ([]models.PostEntity, error) {
	if f.globalFn == nil {
		f.t.Fatal("unexpected GlobalFeed call")
	}
	return f.globalFn(token)
}

func (f *fakeClient) UserFeed(_ context.Context, token, userID string) ([]models.PostEntity, error) {
	if f.userFn == nil {
		f.t.Fatal("unexpected UserFeed call")
	}
	return f.userFn(token, userID)
}

func (f *fakeClient) ToggleLike(_ context.Context, token, postID, userID string) (models.PostEntity, error) {
	if f.likeFn == nil {
		f.t.Fatal("unexpected ToggleLike call")
	}
	return f.likeFn(token, postID, userID)
}

func (f *fakeClient) AddComment(_ context.Context, token, postID, comment string) (models.PostEntity, error) {
	if f.commentFn == nil {
		f.t.Fatal("unexpected AddComment call")
	}
	return f.commentFn(token, postID, comment)
}

func loggedInStore(token, userID string) *state.SessionStore {
	s := state.NewSessionStore()
	s.Set(models.Session{User: models.UserRecord{ID: userID}, Token: token})
	return s
}
