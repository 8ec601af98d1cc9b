package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkurbatovs/pulse/internal/client/form"
	"github.com/dkurbatovs/pulse/internal/common"
)

// registrationNotice mirrors the banner the web client shows after a
// successful registration.
const registrationNotice = "User account created successfully! Please Log in."

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register walks the user through the register form: switches the engine
// into register mode, prompts every field, stages the picture file and
// submits. Validation failures are printed per field and leave the draft
// as typed.
func (a *App) Register(ctx context.Context) error {
	if a.form.Mode() != form.ModeRegister {
		a.form.ToggleMode()
	}

	prompts := []struct {
		field form.Field
		label string
	}{
		{form.FieldFirstName, "First name"},
		{form.FieldLastName, "Last name"},
		{form.FieldEmail, "Email"},
		{form.FieldLocation, "Location"},
		{form.FieldOccupation, "Occupation"},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		a.form.SetField(p.field, v)
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	a.form.SetField(form.FieldPassword, string(password))
	common.WipeByteArray(password)

	picturePath, err := getSimpleText(a.reader, "Profile picture file", a.out)
	if err != nil {
		return err
	}
	if picturePath != "" {
		// Wait for the encode so validation sees the staged image.
		if err := <-a.form.StagePicture(picturePath); err != nil {
			fmt.Fprintln(a.out, "could not read picture:", err)
		}
	}

	return a.submit(ctx)
}

// Login prompts for credentials and submits the login form. On success
// the session gateway publishes the session and navigation lands the
// user on the global feed.
func (a *App) Login(ctx context.Context) error {
	if a.form.Mode() != form.ModeLogin {
		a.form.ToggleMode()
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	a.form.SetField(form.FieldEmail, email)

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	a.form.SetField(form.FieldPassword, string(password))
	common.WipeByteArray(password)

	return a.submit(ctx)
}

// submit runs the engine's submission protocol and translates its
// outcome into terminal output.
func (a *App) submit(ctx context.Context) error {
	err := a.form.Submit(ctx)

	switch {
	case errors.Is(err, form.ErrBusy):
		fmt.Fprintln(a.out, "still working on the previous submission...")
		return nil
	case errors.Is(err, common.ErrValidation):
		for field, msg := range a.form.FieldErrors() {
			fmt.Fprintf(a.out, "  %s: %s\n", field, msg)
		}
		return nil
	}

	a.renderNotices()
	return nil
}

// renderNotices prints the engine's transient notices. They stay set
// until dismissed or the next submission, matching the dismissible
// banners of the web client.
func (a *App) renderNotices() {
	if msg := a.form.AuthError(); msg != "" {
		fmt.Fprintln(a.out, "error:", msg)
	}
	if a.form.RegistrationSucceeded() {
		fmt.Fprintln(a.out, registrationNotice)
	}
}

// Dismiss clears both notices, the terminal equivalent of closing the
// banner.
func (a *App) Dismiss() {
	a.form.DismissAuthError()
	a.form.DismissRegistrationNotice()
}

// Logout clears the published session and drops per-post view state.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)

	a.mu.Lock()
	a.views = make(map[string]*postView)
	a.profile = false
	a.profileUser = ""
	a.mu.Unlock()

	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
