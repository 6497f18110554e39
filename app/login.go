package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskflow/internal/flow"
)

type LoginPage struct {
	app.Compo

	flow         *flow.Login
	showPassword bool
}

func (p *LoginPage) OnMount(ctx app.Context) {
	if redirectIfAuthed(ctx) {
		return
	}
	p.flow = flow.NewLogin(sessionStore(ctx))
}

func (p *LoginPage) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if !p.flow.Begin() {
		return
	}
	ctx.Async(func() {
		ok := p.flow.Submit(ctx)
		ctx.Dispatch(func(ctx app.Context) {
			if ok {
				ctx.Navigate("/dashboard")
			}
		})
	})
}

func (p *LoginPage) Render() app.UI {
	if p.flow == nil {
		p.flow = &flow.Login{State: flow.LoginIdle}
	}
	submitting := p.flow.State == flow.LoginSubmitting

	passwordType := "password"
	if p.showPassword {
		passwordType = "text"
	}

	return app.Div().Class("login-bg").Body(
		app.Form().Class("login-form").OnSubmit(p.onSubmit).Body(
			app.Div().Class("form-header").Body(
				app.H2().Text("Welcome back"),
				app.P().Text("Sign in to your TaskFlow workspace"),
			),

			app.If(p.flow.Error != "", func() app.UI {
				return app.Div().Class("error-message").Text(p.flow.Error)
			}),

			app.Div().Class("field-group").Body(
				app.Label().Text("Email"),
				app.Input().
					Type("email").
					Placeholder("you@company.com").
					Required(true).
					Value(p.flow.Email).
					OnInput(func(ctx app.Context, e app.Event) {
						p.flow.Email = e.Get("target").Get("value").String()
					}),
			),

			app.Div().Class("field-group").Body(
				app.Label().Text("Password"),
				app.Input().
					Type(passwordType).
					Placeholder("Your password").
					Required(true).
					Value(p.flow.Password).
					OnInput(func(ctx app.Context, e app.Event) {
						p.flow.Password = e.Get("target").Get("value").String()
					}),
				app.Button().
					Type("button").
					Class("password-toggle").
					Text(toggleLabel(p.showPassword)).
					OnClick(func(ctx app.Context, e app.Event) {
						p.showPassword = !p.showPassword
					}),
			),

			app.Div().Class("form-options").Body(
				app.Label().Class("remember-me").Body(
					app.Input().
						Type("checkbox").
						Checked(p.flow.Remember).
						OnChange(func(ctx app.Context, e app.Event) {
							p.flow.Remember = e.Get("target").Get("checked").Bool()
						}),
					app.Span().Text("Remember me"),
				),
				app.Button().
					Type("button").
					Class("forgot-link").
					Text("Forgot password?").
					OnClick(func(ctx app.Context, e app.Event) {
						ctx.Navigate("/forgot-password")
					}),
			),

			app.Button().
				Type("submit").
				Class("btn-primary").
				Disabled(submitting).
				Text(submitLabel(submitting, "Sign in")),
		),
	)
}

func toggleLabel(shown bool) string {
	if shown {
		return "Hide"
	}
	return "Show"
}

func submitLabel(submitting bool, idle string) string {
	if submitting {
		return "Please wait…"
	}
	return idle
}
