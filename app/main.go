// The app binary is the TaskFlow browser client, compiled to wasm and served
// by the host server at the repository root.
package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

func main() {
	app.Route("/", func() app.Composer { return &RootPage{} })
	app.Route("/login", func() app.Composer { return &LoginPage{} })
	app.Route("/dashboard", func() app.Composer { return &DashboardPage{} })
	app.Route("/forgot-password", func() app.Composer { return &ForgotPasswordPage{} })
	app.Route("/reset-password", func() app.Composer { return &ResetPasswordPage{} })
	app.RouteWithRegexp("^/.*$", func() app.Composer { return &RootPage{} })
	app.RunWhenOnBrowser()
}
