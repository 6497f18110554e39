package flow

import (
	"context"
	"net/http"

	"taskflow/internal/api"
)

const MsgInvalidResetCode = "Invalid or expired reset code"

// Reset is the single-page variant reached from the emailed link: email,
// code and new password collected together, one change-password call.
type Reset struct {
	api AuthAPI

	Email           string
	Code            string
	Password        string
	ConfirmPassword string
	Error           string
	Submitting      bool
	Done            bool
}

func NewReset(client AuthAPI) *Reset {
	return &Reset{api: client}
}

// Begin marks a submission in flight so the form disables before the network
// call starts. Returns false when one is already running.
func (r *Reset) Begin() bool {
	if r.Submitting {
		return false
	}
	r.Submitting = true
	r.Error = ""
	return true
}

// Submit rejects a password mismatch before any network call, then issues
// the change-password request. Done flips on success; the page navigates
// back to login from there.
func (r *Reset) Submit(ctx context.Context) bool {
	r.Submitting = true
	r.Error = ""
	defer func() { r.Submitting = false }()

	if r.Password != r.ConfirmPassword {
		r.Error = MsgPasswordMismatch
		return false
	}

	if err := r.api.ChangePassword(ctx, r.Email, r.Code, r.Password); err != nil {
		if api.StatusCode(err) == http.StatusBadRequest {
			r.Error = MsgInvalidResetCode
		} else {
			r.Error = MsgUnexpectedError
		}
		return false
	}
	r.Done = true
	return true
}
