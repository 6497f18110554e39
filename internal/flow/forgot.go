package flow

import "context"

// AuthAPI is the slice of the REST façade the password-reset flows need.
type AuthAPI interface {
	ForgotPassword(ctx context.Context, email string) error
	VerifyResetCode(ctx context.Context, email, code string) error
	ChangePassword(ctx context.Context, email, code, password string) error
}

type ForgotStep string

const (
	StepEmail    ForgotStep = "email"
	StepCode     ForgotStep = "code"
	StepPassword ForgotStep = "password"
	StepSuccess  ForgotStep = "success"
)

// Forgot is the linear email → code → password → success machine. Steps only
// advance on a successful call for that step; the only backward-looking
// action is Resend, which re-fires the email request in place.
type Forgot struct {
	api AuthAPI

	Step            ForgotStep
	Email           string
	Code            string
	NewPassword     string
	ConfirmPassword string
	Error           string
	Submitting      bool
}

func NewForgot(client AuthAPI) *Forgot {
	return &Forgot{api: client, Step: StepEmail}
}

// Begin marks a submission in flight so the form disables before the network
// call starts. Returns false when one is already running.
func (f *Forgot) Begin() bool {
	if f.Submitting {
		return false
	}
	f.Submitting = true
	f.Error = ""
	return true
}

func (f *Forgot) SubmitEmail(ctx context.Context) bool {
	f.Submitting = true
	f.Error = ""
	defer func() { f.Submitting = false }()

	if err := f.api.ForgotPassword(ctx, f.Email); err != nil {
		f.Error = MsgUnexpectedError
		return false
	}
	f.Step = StepCode
	return true
}

func (f *Forgot) SubmitCode(ctx context.Context) bool {
	f.Submitting = true
	f.Error = ""
	defer func() { f.Submitting = false }()

	if f.Code == "" {
		f.Error = MsgCodeRequired
		return false
	}
	if err := f.api.VerifyResetCode(ctx, f.Email, f.Code); err != nil {
		f.Error = serverMessage(err, MsgInvalidCode)
		return false
	}
	f.Step = StepPassword
	return true
}

func (f *Forgot) SubmitPassword(ctx context.Context) bool {
	f.Submitting = true
	f.Error = ""
	defer func() { f.Submitting = false }()

	if f.NewPassword == "" || f.NewPassword != f.ConfirmPassword {
		f.Error = MsgPasswordMismatch
		return false
	}
	if err := f.api.ChangePassword(ctx, f.Email, f.Code, f.NewPassword); err != nil {
		f.Error = serverMessage(err, MsgResetFailed)
		return false
	}
	f.Step = StepSuccess
	return true
}

// Resend re-requests the reset code without changing the visible step.
func (f *Forgot) Resend(ctx context.Context) {
	f.Submitting = true
	f.Error = ""
	defer func() { f.Submitting = false }()

	if err := f.api.ForgotPassword(ctx, f.Email); err != nil {
		f.Error = MsgUnexpectedError
	}
}

// ValidatePasswords keeps the mismatch message in sync while the user types.
// The transient error clears as soon as the fields agree.
func (f *Forgot) ValidatePasswords() {
	if f.NewPassword != "" && f.ConfirmPassword != "" && f.NewPassword != f.ConfirmPassword {
		f.Error = MsgPasswordMismatch
	} else if f.Error == MsgPasswordMismatch {
		f.Error = ""
	}
}
