package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskflow/internal/flow"
)

type ForgotPasswordPage struct {
	app.Compo

	flow *flow.Forgot
}

func (p *ForgotPasswordPage) OnMount(ctx app.Context) {
	if redirectIfAuthed(ctx) {
		return
	}
	sessionStore(ctx)
	p.flow = flow.NewForgot(client)
}

func (p *ForgotPasswordPage) submit(ctx app.Context, e app.Event, action func() bool) {
	e.PreventDefault()
	if !p.flow.Begin() {
		return
	}
	ctx.Async(func() {
		action()
		ctx.Dispatch(func(ctx app.Context) {})
	})
}

func (p *ForgotPasswordPage) Render() app.UI {
	if p.flow == nil {
		p.flow = flow.NewForgot(client)
	}
	f := p.flow

	return app.Div().Class("forgot-bg").Body(
		app.Div().Class("glass-card").Body(
			app.H2().Text("Reset your password"),
			app.P().Text("We will email you a one-time code"),

			app.If(f.Error != "", func() app.UI {
				return app.Div().Class("error-message").Text(f.Error)
			}),

			app.If(f.Step == flow.StepEmail, func() app.UI {
				return p.renderEmailStep()
			}).ElseIf(f.Step == flow.StepCode, func() app.UI {
				return p.renderCodeStep()
			}).ElseIf(f.Step == flow.StepPassword, func() app.UI {
				return p.renderPasswordStep()
			}).Else(func() app.UI {
				return p.renderSuccess()
			}),
		),
	)
}

func (p *ForgotPasswordPage) renderEmailStep() app.UI {
	f := p.flow
	return app.Form().OnSubmit(func(ctx app.Context, e app.Event) {
		p.submit(ctx, e, func() bool { return f.SubmitEmail(ctx) })
	}).Body(
		app.Div().Class("field-group").Body(
			app.Label().Text("Email"),
			app.Input().
				Type("email").
				Required(true).
				Disabled(f.Submitting).
				Value(f.Email).
				OnInput(func(ctx app.Context, e app.Event) {
					f.Email = e.Get("target").Get("value").String()
				}),
		),
		app.Button().
			Type("submit").
			Class("btn-primary").
			Disabled(f.Submitting).
			Text(submitLabel(f.Submitting, "Send code")),
	)
}

func (p *ForgotPasswordPage) renderCodeStep() app.UI {
	f := p.flow
	return app.Form().OnSubmit(func(ctx app.Context, e app.Event) {
		p.submit(ctx, e, func() bool { return f.SubmitCode(ctx) })
	}).Body(
		app.Div().Class("field-group").Body(
			app.Label().Text("Verification code"),
			app.Input().
				Type("text").
				Required(true).
				Disabled(f.Submitting).
				Value(f.Code).
				OnInput(func(ctx app.Context, e app.Event) {
					f.Code = e.Get("target").Get("value").String()
				}),
		),
		app.Button().
			Type("button").
			Class("link-btn").
			Disabled(f.Submitting).
			Text("Resend code").
			OnClick(func(ctx app.Context, e app.Event) {
				if !f.Begin() {
					return
				}
				ctx.Async(func() {
					f.Resend(ctx)
					ctx.Dispatch(func(ctx app.Context) {})
				})
			}),
		app.Button().
			Type("submit").
			Class("btn-primary").
			Disabled(f.Submitting).
			Text(submitLabel(f.Submitting, "Verify code")),
	)
}

func (p *ForgotPasswordPage) renderPasswordStep() app.UI {
	f := p.flow
	return app.Form().OnSubmit(func(ctx app.Context, e app.Event) {
		p.submit(ctx, e, func() bool { return f.SubmitPassword(ctx) })
	}).Body(
		app.Div().Class("field-group").Body(
			app.Label().Text("New password"),
			app.Input().
				Type("password").
				Required(true).
				Disabled(f.Submitting).
				Value(f.NewPassword).
				OnInput(func(ctx app.Context, e app.Event) {
					f.NewPassword = e.Get("target").Get("value").String()
					f.ValidatePasswords()
				}),
		),
		app.Div().Class("field-group").Body(
			app.Label().Text("Confirm password"),
			app.Input().
				Type("password").
				Required(true).
				Disabled(f.Submitting).
				Value(f.ConfirmPassword).
				OnInput(func(ctx app.Context, e app.Event) {
					f.ConfirmPassword = e.Get("target").Get("value").String()
					f.ValidatePasswords()
				}),
		),
		app.Button().
			Type("submit").
			Class("btn-primary").
			Disabled(f.Submitting).
			Text(submitLabel(f.Submitting, "Reset password")),
	)
}

func (p *ForgotPasswordPage) renderSuccess() app.UI {
	return app.Div().Class("success-message").Body(
		app.P().Text("Your password has been reset."),
		app.Button().
			Class("link-btn").
			Text("Back to login").
			OnClick(func(ctx app.Context, e app.Event) {
				ctx.Navigate("/login")
			}),
	)
}
