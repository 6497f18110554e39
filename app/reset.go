package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskflow/internal/flow"
)

// ResetPasswordPage is the single-page reset variant reached from the
// emailed link; email, code and new password are collected together.
type ResetPasswordPage struct {
	app.Compo

	flow *flow.Reset
}

func (p *ResetPasswordPage) OnMount(ctx app.Context) {
	sessionStore(ctx)
	p.flow = flow.NewReset(client)
}

func (p *ResetPasswordPage) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if !p.flow.Begin() {
		return
	}
	ctx.Async(func() {
		ok := p.flow.Submit(ctx)
		ctx.Dispatch(func(ctx app.Context) {
			if ok {
				ctx.Navigate("/login")
			}
		})
	})
}

func (p *ResetPasswordPage) Render() app.UI {
	if p.flow == nil {
		p.flow = flow.NewReset(client)
	}
	f := p.flow

	field := func(label, typ, value string, set func(string)) app.UI {
		return app.Div().Class("field-group").Body(
			app.Label().Text(label),
			app.Input().
				Type(typ).
				Required(true).
				Disabled(f.Submitting).
				Value(value).
				OnInput(func(ctx app.Context, e app.Event) {
					set(e.Get("target").Get("value").String())
				}),
		)
	}

	return app.Div().Class("login-bg").Body(
		app.Form().Class("login-form").OnSubmit(p.onSubmit).Body(
			app.Div().Class("form-header").Body(
				app.H2().Text("Set a new password"),
				app.P().Text("Enter the code from your email"),
			),

			app.If(f.Error != "", func() app.UI {
				return app.Div().Class("error-message").Text(f.Error)
			}),

			field("Email", "email", f.Email, func(v string) { f.Email = v }),
			field("Reset code", "text", f.Code, func(v string) { f.Code = v }),
			field("New password", "password", f.Password, func(v string) { f.Password = v }),
			field("Confirm password", "password", f.ConfirmPassword, func(v string) { f.ConfirmPassword = v }),

			app.Button().
				Type("submit").
				Class("btn-primary").
				Disabled(f.Submitting).
				Text(submitLabel(f.Submitting, "Reset password")),
			app.Button().
				Type("button").
				Class("btn-secondary").
				Text("Back to login").
				OnClick(func(ctx app.Context, e app.Event) {
					ctx.Navigate("/login")
				}),
		),
	)
}
