package main

import (
	"sync"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskflow/internal/api"
	"taskflow/internal/session"
)

// Shared API client; the session store owns its bearer header.
var (
	client    = api.NewClient("/api")
	store     *session.Store
	storeOnce sync.Once
)

// sessionStore bootstraps the session from browser local storage on first
// use. Initialize is synchronous, so route decisions made after this call
// never observe a half-restored session.
func sessionStore(ctx app.Context) *session.Store {
	storeOnce.Do(func() {
		store = session.NewStore(client, ctx.LocalStorage())
		store.Initialize()
	})
	return store
}

// requireAuth gates authenticated pages, bouncing logged-out visitors to the
// login page.
func requireAuth(ctx app.Context) bool {
	s := sessionStore(ctx)
	if s.Loading() {
		return false
	}
	if !s.IsAuthenticated() {
		ctx.Navigate("/login")
		return false
	}
	return true
}

// redirectIfAuthed sends an already signed-in user from the auth pages to
// their dashboard.
func redirectIfAuthed(ctx app.Context) bool {
	s := sessionStore(ctx)
	if !s.Loading() && s.IsAuthenticated() {
		ctx.Navigate("/dashboard")
		return true
	}
	return false
}

// RootPage resolves "/" and unknown paths to the right entry point.
type RootPage struct {
	app.Compo
}

func (p *RootPage) OnMount(ctx app.Context) {
	p.redirect(ctx)
}

func (p *RootPage) OnNav(ctx app.Context) {
	p.redirect(ctx)
}

func (p *RootPage) redirect(ctx app.Context) {
	if sessionStore(ctx).IsAuthenticated() {
		ctx.Navigate("/dashboard")
	} else {
		ctx.Navigate("/login")
	}
}

func (p *RootPage) Render() app.UI {
	return app.Div().Class("loading-screen").Body(
		app.Div().Class("spinner"),
	)
}
