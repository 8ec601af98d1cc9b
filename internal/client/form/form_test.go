package form

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkurbatovs/pulse/internal/client/api"
	"github.com/dkurbatovs/pulse/internal/client/models"
	"github.com/dkurbatovs/pulse/internal/common"
	"github.com/dkurbatovs/pulse/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeGateway struct {
	registerCalls []Draft
	registerUser  models.UserRecord
	registerErr   error

	loginCalls []Draft
	loginSess  models.Session
	loginErr   error

	// block, when set, holds the gateway call open until released.
	block chan struct{}
}

func (f *fakeGateway) Register(_ context.Context, d Draft) (models.UserRecord, error) {
	if f.block != nil {
		<-f.block
	}
	f.registerCalls = append(f.registerCalls, d)
	return f.registerUser, f.registerErr
}

func (f *fakeGateway) Login(_ context.Context, d Draft) (models.Session, error) {
	if f.block != nil {
		<-f.block
	}
	f.loginCalls = append(f.loginCalls, d)
	return f.loginSess, f.loginErr
}

func newEngine(g Gateway) *Engine {
	return NewEngine(g, testLogger())
}

func TestEngine_StartsInLoginMode(t *testing.T) {
	e := newEngine(&fakeGateway{})
	assert.Equal(t, ModeLogin, e.Mode())
	assert.Equal(t, Draft{}, e.Draft())
}

func TestEngine_ToggleModeResetsDraftAndErrors(t *testing.T) {
	e := newEngine(&fakeGateway{})
	e.SetField(FieldEmail, "a@b.com")

	// A blocked submission leaves validation errors behind.
	require.ErrorIs(t, e.Submit(context.Background()), common.ErrValidation)
	require.NotEmpty(t, e.FieldErrors())

	e.ToggleMode()
	assert.Equal(t, ModeRegister, e.Mode())
	assert.Equal(t, Draft{}, e.Draft())
	assert.Empty(t, e.FieldErrors())

	e.ToggleMode()
	assert.Equal(t, ModeLogin, e.Mode())
}

func TestEngine_SubmitLogin_MissingFieldsIssueNoRequest(t *testing.T) {
	g := &fakeGateway{}
	e := newEngine(g)

	err := e.Submit(context.Background())
	require.ErrorIs(t, err, common.ErrValidation)

	assert.Empty(t, g.loginCalls)
	assert.Empty(t, g.registerCalls)
	assert.Equal(t, map[Field]string{
		FieldEmail:    "required",
		FieldPassword: "required",
	}, e.FieldErrors())
	assert.False(t, e.Submitting())
}

func TestEngine_SubmitLogin_SuccessResetsDraft(t *testing.T) {
	g := &fakeGateway{loginSess: models.Session{Token: "t1"}}
	e := newEngine(g)
	e.SetField(FieldEmail, "a@b.com")
	e.SetField(FieldPassword, "x")

	require.NoError(t, e.Submit(context.Background()))

	require.Len(t, g.loginCalls, 1)
	assert.Equal(t, "a@b.com", g.loginCalls[0].Email)
	assert.Equal(t, Draft{}, e.Draft())
	assert.Equal(t, ModeLogin, e.Mode())
	assert.False(t, e.Submitting())
	assert.Empty(t, e.AuthError())
}

func TestEngine_SubmitLogin_FailurePreservesDraftAndSetsAuthError(t *testing.T) {
	g := &fakeGateway{loginErr: &api.RequestError{StatusCode: http.StatusUnauthorized, Msg: "invalid credentials"}}
	e := newEngine(g)
	e.SetField(FieldEmail, "a@b.com")
	e.SetField(FieldPassword, "wrong")

	err := e.Submit(context.Background())
	require.Error(t, err)

	assert.Equal(t, "invalid credentials", e.AuthError())
	assert.Equal(t, "a@b.com", e.Draft().Email, "draft preserved")
	assert.Equal(t, ModeLogin, e.Mode(), "mode unchanged")
	assert.False(t, e.Submitting(), "busy flag cleared")
}

func TestEngine_SubmitLogin_TransportFailureGetsGenericMessage(t *testing.T) {
	g := &fakeGateway{loginErr: api.ErrUnavailable}
	e := newEngine(g)
	e.SetField(FieldEmail, "a@b.com")
	e.SetField(FieldPassword, "x")

	require.Error(t, e.Submit(context.Background()))
	assert.Equal(t, "something went wrong, please try again", e.AuthError())
	assert.False(t, e.Submitting())
}

func TestEngine_SubmitRegister_SuccessSwitchesToLogin(t *testing.T) {
	g := &fakeGateway{registerUser: models.UserRecord{ID: "u2"}}
	e := newEngine(g)
	e.ToggleMode()
	fillRegisterDraft(e)

	require.NoError(t, e.Submit(context.Background()))

	require.Len(t, g.registerCalls, 1)
	assert.True(t, e.RegistrationSucceeded())
	assert.Equal(t, ModeLogin, e.Mode())
	assert.Equal(t, Draft{}, e.Draft())
}

func TestEngine_SubmitRegister_FailureKeepsRegisterMode(t *testing.T) {
	g := &fakeGateway{registerErr: &api.RequestError{StatusCode: http.StatusConflict, Msg: "email already in use"}}
	e := newEngine(g)
	e.ToggleMode()
	fillRegisterDraft(e)

	require.Error(t, e.Submit(context.Background()))

	assert.Equal(t, ModeRegister, e.Mode())
	assert.Equal(t, "email already in use", e.AuthError())
	assert.False(t, e.RegistrationSucceeded())
	assert.Equal(t, "jane@doe.com", e.Draft().Email, "draft preserved")
}

func TestEngine_RejectsReentrantSubmission(t *testing.T) {
	g := &fakeGateway{block: make(chan struct{})}
	e := newEngine(g)
	e.SetField(FieldEmail, "a@b.com")
	e.SetField(FieldPassword, "x")

	first := make(chan error, 1)
	go func() { first <- e.Submit(context.Background()) }()

	// Wait for the first submission to reach the gateway.
	require.Eventually(t, e.Submitting, time.Second, time.Millisecond)

	err := e.Submit(context.Background())
	assert.ErrorIs(t, err, ErrBusy)
	assert.Empty(t, g.loginCalls, "duplicate request not dispatched")

	close(g.block)
	require.NoError(t, <-first)
	assert.False(t, e.Submitting())
}

func TestEngine_NoticesDismissibleAndClearedByNextAttempt(t *testing.T) {
	g := &fakeGateway{loginErr: &api.RequestError{StatusCode: 401, Msg: "invalid credentials"}}
	e := newEngine(g)
	e.SetField(FieldEmail, "a@b.com")
	e.SetField(FieldPassword, "x")

	require.Error(t, e.Submit(context.Background()))
	require.Equal(t, "invalid credentials", e.AuthError())

	e.DismissAuthError()
	assert.Empty(t, e.AuthError())

	// Error again, then verify the next attempt supersedes the notice.
	require.Error(t, e.Submit(context.Background()))
	require.Equal(t, "invalid credentials", e.AuthError())

	g.loginErr = nil
	require.NoError(t, e.Submit(context.Background()))
	assert.Empty(t, e.AuthError())
}

func TestEngine_DismissRegistrationNotice(t *testing.T) {
	g := &fakeGateway{}
	e := newEngine(g)
	e.ToggleMode()
	fillRegisterDraft(e)

	require.NoError(t, e.Submit(context.Background()))
	require.True(t, e.RegistrationSucceeded())

	e.DismissRegistrationNotice()
	assert.False(t, e.RegistrationSucceeded())
}

func TestEngine_ValidationErrorIsNotAuthError(t *testing.T) {
	e := newEngine(&fakeGateway{})
	err := e.Submit(context.Background())
	require.True(t, errors.Is(err, common.ErrValidation))
	assert.Empty(t, e.AuthError())
}

func fillRegisterDraft(e *Engine) {
	e.SetField(FieldFirstName, "Jane")
	e.SetField(FieldLastName, "Doe")
	e.SetField(FieldEmail, "jane@doe.com")
	e.SetField(FieldPassword, "pw")
	e.SetField(FieldLocation, "Riga")
	e.SetField(FieldOccupation, "engineer")
	stagePictureDirect(e, "avatar.png", "data:image/png;base64,AAAA")
}

// stagePictureDirect injects a staged picture synchronously, bypassing the
// encoder goroutine.
func stagePictureDirect(e *Engine, name, dataURL string) {
	e.mu.Lock()
	e.draft.Picture = Picture{Name: name, Base64URL: dataURL}
	e.mu.Unlock()
}
