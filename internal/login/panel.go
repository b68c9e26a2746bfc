// Package login implements the login panel: credential and password reset
// submissions against the backend, with their user-facing outcomes.
package login

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fieldbase/admin/internal/backend"
	"github.com/fieldbase/admin/internal/clientstore"
	"github.com/fieldbase/admin/internal/domain"
)

// Authenticator is the part of the backend the panel talks to.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (backend.Reply, error)
	ForgotPassword(ctx context.Context, email string) (backend.Reply, error)
}

// SuccessFunc is called once after the backend accepted the credentials.
type SuccessFunc func(ctx context.Context, id domain.Identity) error

// Form is the state the panel is rendered from.
type Form struct {
	Mode       Mode
	Username   string
	RememberMe bool
	Error      string
	Notice     string
	Succeeded  bool
}

// Panel handles login panel submissions.
type Panel struct {
	auth  Authenticator
	guard *Guard
}

// NewPanel creates a Panel that submits through auth.
func NewPanel(auth Authenticator, guard *Guard) *Panel {
	if guard == nil {
		guard = NewGuard()
	}
	return &Panel{auth: auth, guard: guard}
}

// Initial returns the form shown when the panel first renders, pre-filled with
// a remembered username.
func Initial(mode Mode, store clientstore.Store) Form {
	f := Form{Mode: mode}
	if name, ok := store.Get(domain.StorageKeyUsername); ok {
		f.Username = name
		f.RememberMe = mode == ModeLogin
	}
	return f
}

// Submit validates sub locally, sends it to the backend and returns the form
// to render next. clientKey identifies the browser for the in-flight guard.
// onSuccess runs only for a successful login.
func (p *Panel) Submit(ctx context.Context, clientKey string, store clientstore.Store, sub Submission, onSuccess SuccessFunc) Form {
	form := formFor(sub)

	if err := sub.Validate(); err != nil {
		form.Error = submitMessage(err)
		return form
	}

	release, err := p.guard.Acquire(clientKey)
	if err != nil {
		form.Error = submitMessage(err)
		return form
	}
	defer release()

	switch s := sub.(type) {
	case Credentials:
		return p.login(ctx, store, s, form, onSuccess)
	case ResetRequest:
		return p.forgotPassword(ctx, s, form)
	default:
		form.Error = domain.MsgServerError
		return form
	}
}

func (p *Panel) login(ctx context.Context, store clientstore.Store, c Credentials, form Form, onSuccess SuccessFunc) Form {
	reply, err := p.auth.Login(ctx, c.Username, c.Password)
	if err != nil {
		slog.ErrorContext(ctx, "Error during login", "error", err)
		form.Error = domain.MsgServerError
		return form
	}

	if !reply.Is(domain.LoginSuccessSentinel) {
		slog.InfoContext(ctx, "Login rejected", "username", c.Username, "status", reply.Status)
		form.Error = domain.OrDefault(reply.Message, domain.MsgLoginFailed)
		return form
	}
	if reply.Token == "" {
		slog.WarnContext(ctx, "Login reply carried no token", "username", c.Username)
		form.Error = domain.MsgLoginFailed
		return form
	}

	if onSuccess != nil {
		if err := onSuccess(ctx, reply.Identity()); err != nil {
			slog.ErrorContext(ctx, "Failed to start session after login", "error", err)
			form.Error = domain.MsgServerError
			return form
		}
	}

	if c.RememberMe {
		if err := store.Set(domain.StorageKeyUsername, c.Username); err != nil {
			slog.WarnContext(ctx, "Failed to remember username", "error", err)
		}
	} else if err := store.Clear(domain.StorageKeyUsername); err != nil {
		slog.WarnContext(ctx, "Failed to forget username", "error", err)
	}

	form.Succeeded = true
	return form
}

func (p *Panel) forgotPassword(ctx context.Context, r ResetRequest, form Form) Form {
	reply, err := p.auth.ForgotPassword(ctx, r.Email)
	if err != nil {
		slog.ErrorContext(ctx, "Error during password reset", "error", err)
		form.Error = domain.MsgServerError
		return form
	}

	if !reply.Is(domain.PasswordResetSuccessSentinel) {
		form.Error = domain.OrDefault(reply.Message, domain.MsgResetFailed)
		return form
	}

	form.Notice = domain.MsgResetSent
	return form
}

func formFor(sub Submission) Form {
	switch s := sub.(type) {
	case Credentials:
		return Form{Mode: ModeLogin, Username: s.Username, RememberMe: s.RememberMe}
	case ResetRequest:
		return Form{Mode: ModeForgotPassword, Username: s.Email}
	default:
		return Form{Mode: sub.Mode()}
	}
}

// submitMessage maps a local rejection onto the message shown in the panel.
func submitMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return domain.MsgMissingCredentials
	case errors.Is(err, domain.ErrMissingEmail):
		return domain.MsgMissingEmail
	case errors.Is(err, domain.ErrBusy):
		return domain.MsgBusy
	default:
		return err.Error()
	}
}
