// Package form implements the credential form engine: a two-mode
// (login/register) state machine owning the transient draft, per-mode
// validation, asynchronous picture staging, and the submission protocol.
package form

import (
	"context"
	"errors"
	"sync"

	"github.com/dkurbatovs/pulse/internal/client/api"
	"github.com/dkurbatovs/pulse/internal/client/models"
	"github.com/dkurbatovs/pulse/internal/common"
	"github.com/dkurbatovs/pulse/internal/logging"
)

// Mode selects which schema and submission path is active.
type Mode string

const (
	ModeLogin    Mode = "login"
	ModeRegister Mode = "register"
)

// ErrBusy is returned when Submit is called while a submission is already
// in flight. The engine never issues parallel duplicate requests.
var ErrBusy = errors.New("submission already in progress")

// Gateway is the session gateway the engine dispatches submissions to.
type Gateway interface {
	Register(ctx context.Context, d Draft) (models.UserRecord, error)
	Login(ctx context.Context, d Draft) (models.Session, error)
}

// Engine drives one credential form instance. It starts in login mode
// with an empty draft. All state transitions go through its methods; the
// mutex makes each transition atomic since picture staging completes on
// another goroutine.
type Engine struct {
	mu      sync.Mutex
	gateway Gateway
	log     logging.Logger

	mode        Mode
	draft       Draft
	fieldErrors map[Field]string

	submitting bool
	authError  string
	registered bool
}

func NewEngine(g Gateway, log logging.Logger) *Engine {
	return &Engine{
		gateway: g,
		log:     log,
		mode:    ModeLogin,
		draft:   schemas[ModeLogin].initial,
	}
}

// Mode returns the active mode.
func (e *Engine) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// ToggleMode switches between login and register. The draft is reset to
// the target mode's initial values and validation errors are cleared.
// Only an explicit user action calls this; nothing toggles automatically
// except the register-success convenience switch in Submit.
func (e *Engine) ToggleMode() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode == ModeLogin {
		e.setModeLocked(ModeRegister)
	} else {
		e.setModeLocked(ModeLogin)
	}
}

func (e *Engine) setModeLocked(m Mode) {
	e.mode = m
	e.draft = schemas[m].initial
	e.fieldErrors = nil
}

// SetField updates one draft field. Picture is staged via StagePicture,
// not set directly.
func (e *Engine) SetField(f Field, v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch f {
	case FieldFirstName:
		e.draft.FirstName = v
	case FieldLastName:
		e.draft.LastName = v
	case FieldEmail:
		e.draft.Email = v
	case FieldPassword:
		e.draft.Password = v
	case FieldLocation:
		e.draft.Location = v
	case FieldOccupation:
		e.draft.Occupation = v
	}
}

// Draft returns a copy of the current draft.
func (e *Engine) Draft() Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// FieldErrors returns the validation errors from the last blocked
// submission, one message per field.
func (e *Engine) FieldErrors() map[Field]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[Field]string, len(e.fieldErrors))
	for k, v := range e.fieldErrors {
		out[k] = v
	}
	return out
}

// Submitting reports whether a submission is in flight. The rendering
// layer shows a busy indicator in place of the submit control while true.
func (e *Engine) Submitting() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submitting
}

// AuthError is the server-supplied failure message from the last
// submission, or "".
func (e *Engine) AuthError() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.authError
}

// DismissAuthError clears the failure notice.
func (e *Engine) DismissAuthError() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.authError = ""
}

// RegistrationSucceeded reports whether the last register submission
// succeeded; it stays set until dismissed or the next submission attempt.
func (e *Engine) RegistrationSucceeded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registered
}

// DismissRegistrationNotice clears the success notice.
func (e *Engine) DismissRegistrationNotice() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.registered = false
}

// Submit validates the draft against the active mode's schema and, if it
// passes, dispatches to the gateway. Exactly one of three things happens:
//
//   - ErrBusy: a submission is already in flight, nothing was sent;
//   - common.ErrValidation: one or more fields failed, nothing was sent,
//     FieldErrors carries the per-field messages;
//   - a gateway round trip, after which the busy flag is always cleared.
//
// On gateway failure the draft is preserved, the mode is unchanged and
// AuthError carries the message. On success the draft is reset; a
// register success additionally sets RegistrationSucceeded and switches
// the mode to login.
func (e *Engine) Submit(ctx context.Context) error {
	e.mu.Lock()
	if e.submitting {
		e.mu.Unlock()
		return ErrBusy
	}

	// Any new attempt supersedes previous notices.
	e.authError = ""
	e.registered = false

	if errs := validate(e.mode, e.draft); len(errs) > 0 {
		e.fieldErrors = errs
		e.mu.Unlock()
		return common.ErrValidation
	}
	e.fieldErrors = nil
	e.submitting = true
	mode, draft := e.mode, e.draft
	e.mu.Unlock()

	var err error
	switch mode {
	case ModeRegister:
		_, err = e.gateway.Register(ctx, draft)
	default:
		_, err = e.gateway.Login(ctx, draft)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.submitting = false

	if err != nil {
		e.authError = api.Message(err)
		e.log.Warn(ctx, "submission failed", "mode", string(mode), "error", err)
		return err
	}

	e.draft = schemas[e.mode].initial
	if mode == ModeRegister {
		e.registered = true
		e.setModeLocked(ModeLogin)
	}
	e.log.Info(ctx, "submission succeeded", "mode", string(mode))
	return nil
}
