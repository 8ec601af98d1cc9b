// Package api implements the HTTP client for the Pulse backend. It covers
// the six endpoints the client consumes and normalizes failures into the
// error contract the rest of the application renders from.
package api

import (
	"context"

	"github.com/dkurbatovs/pulse/internal/client/models"
)

// Picture is the staged profile image attached to a registration:
// the original file name plus a base64 data URL of its content.
type Picture struct {
	Name      string `json:"name"`
	Base64URL string `json:"base64URl"`
}

// RegisterRequest is the registration body. PicturePath carries the
// staged picture's data URL flattened out of the nested Picture object;
// the backend persists it as the account's picture reference.
type RegisterRequest struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Location    string  `json:"location"`
	Occupation  string  `json:"occupation"`
	Picture     Picture `json:"picture"`
	PicturePath string  `json:"picturePath"`
}

// Client is the remote API surface consumed by the services layer.
// Token-taking operations require an authenticated session's bearer token.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (models.UserRecord, error)
	Login(ctx context.Context, email, password string) (models.Session, error)
	GlobalFeed(ctx context.Context, token string) ([]models.PostEntity, error)
	UserFeed(ctx context.Context, token, userID string) ([]models.PostEntity, error)
	ToggleLike(ctx context.Context, token, postID, userID string) (models.PostEntity, error)
	AddComment(ctx context.Context, token, postID, comment string) (models.PostEntity, error)
}
