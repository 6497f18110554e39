// Package flow holds the auth-flow state machines behind the login,
// forgot-password and reset-password pages. Each machine is a plain struct
// driven by per-action methods so the pages stay thin.
package flow

import (
	"context"
	"errors"
	"net/http"

	"taskflow/internal/api"
	"taskflow/internal/session"
)

// User-facing messages for the auth flows.
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgUnexpectedError    = "An unexpected error occurred. Please try again."
	MsgPasswordMismatch   = "Passwords do not match"
	MsgCodeRequired       = "Please enter the code"
	MsgInvalidCode        = "Invalid code"
	MsgResetFailed        = "Failed to reset password"
)

type LoginState string

const (
	LoginIdle       LoginState = "idle"
	LoginSubmitting LoginState = "submitting"
	LoginSuccess    LoginState = "success"
)

// Login drives the sign-in form. All authentication goes through the session
// store; there is no direct-API fallback path.
type Login struct {
	session *session.Store

	State    LoginState
	Email    string
	Password string
	Remember bool
	Error    string
}

func NewLogin(s *session.Store) *Login {
	return &Login{
		session: s,
		State:   LoginIdle,
		Email:   s.RememberedEmail(),
	}
}

// Begin marks a submission in flight so the form disables before the network
// call starts. Returns false when one is already running.
func (l *Login) Begin() bool {
	if l.State == LoginSubmitting {
		return false
	}
	l.State = LoginSubmitting
	l.Error = ""
	return true
}

// Submit runs one login attempt. On success the remembered email is
// persisted when opted in and the state becomes LoginSuccess; on failure the
// machine returns to idle with the error text set.
func (l *Login) Submit(ctx context.Context) bool {
	l.State = LoginSubmitting
	l.Error = ""

	_, err := l.session.Login(ctx, l.Email, l.Password, l.Remember)
	if err != nil {
		if api.IsAuthFailure(err) {
			l.Error = MsgInvalidCredentials
		} else {
			l.Error = MsgUnexpectedError
		}
		l.State = LoginIdle
		return false
	}

	if l.Remember {
		l.session.RememberEmail(l.Email)
	}
	l.State = LoginSuccess
	return true
}

// serverMessage prefers the backend's structured error text, falling back to
// the given message for transport failures and bare status responses.
func serverMessage(err error, fallback string) string {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return fallback
	}
	if apiErr.Status == 0 || apiErr.Message == "" || apiErr.Message == http.StatusText(apiErr.Status) {
		return fallback
	}
	return apiErr.Message
}
