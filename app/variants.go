package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskflow/internal/dashboard"
	"taskflow/internal/model"
)

// Each variant fetches its role-scoped data once per activation. Version is
// bumped by the shell after a task is created to force a refetch; there is
// no polling.

type AdminDashboard struct {
	app.Compo

	Version     int
	lastVersion int
	loaded      bool
	data        dashboard.Data
}

func (d *AdminDashboard) OnMount(ctx app.Context) { d.load(ctx) }

func (d *AdminDashboard) OnUpdate(ctx app.Context) {
	if d.Version != d.lastVersion {
		d.load(ctx)
	}
}

func (d *AdminDashboard) load(ctx app.Context) {
	d.lastVersion = d.Version
	d.loaded = false
	ctx.Async(func() {
		data := dashboard.Load(ctx, client, model.RoleAdmin)
		ctx.Dispatch(func(ctx app.Context) {
			d.data = data
			d.loaded = true
		})
	})
}

func (d *AdminDashboard) Render() app.UI {
	if !d.loaded {
		return loadingView()
	}
	return app.Div().Class("dashboard admin-dashboard").Body(
		app.H1().Text("Admin Dashboard"),
		statsGrid(d.data.Stats),
		app.Div().Class("dashboard-row").Body(
			recentTasksCard(d.data.Tasks, model.RoleAdmin),
			activeProjectsCard(d.data.Projects),
		),
	)
}

type ManagerDashboard struct {
	app.Compo

	Version     int
	lastVersion int
	loaded      bool
	data        dashboard.Data
}

func (d *ManagerDashboard) OnMount(ctx app.Context) { d.load(ctx) }

func (d *ManagerDashboard) OnUpdate(ctx app.Context) {
	if d.Version != d.lastVersion {
		d.load(ctx)
	}
}

func (d *ManagerDashboard) load(ctx app.Context) {
	d.lastVersion = d.Version
	d.loaded = false
	ctx.Async(func() {
		data := dashboard.Load(ctx, client, model.RoleManager)
		ctx.Dispatch(func(ctx app.Context) {
			d.data = data
			d.loaded = true
		})
	})
}

func (d *ManagerDashboard) Render() app.UI {
	if !d.loaded {
		return loadingView()
	}
	return app.Div().Class("dashboard manager-dashboard").Body(
		app.H1().Text("Manager Dashboard"),
		statsGrid(d.data.Stats),
		app.Div().Class("dashboard-row").Body(
			recentTasksCard(d.data.Tasks, model.RoleManager),
			activeProjectsCard(d.data.Projects),
		),
	)
}

type CollaboratorDashboard struct {
	app.Compo

	Version     int
	lastVersion int
	loaded      bool
	data        dashboard.Data
}

func (d *CollaboratorDashboard) OnMount(ctx app.Context) { d.load(ctx) }

func (d *CollaboratorDashboard) OnUpdate(ctx app.Context) {
	if d.Version != d.lastVersion {
		d.load(ctx)
	}
}

func (d *CollaboratorDashboard) load(ctx app.Context) {
	d.lastVersion = d.Version
	d.loaded = false
	ctx.Async(func() {
		data := dashboard.Load(ctx, client, model.RoleCollaborator)
		ctx.Dispatch(func(ctx app.Context) {
			d.data = data
			d.loaded = true
		})
	})
}

func (d *CollaboratorDashboard) Render() app.UI {
	if !d.loaded {
		return loadingView()
	}
	return app.Div().Class("dashboard collaborator-dashboard").Body(
		app.H1().Text("My Dashboard"),
		statsGrid(d.data.Stats),
		app.Div().Class("dashboard-row").Body(
			recentTasksCard(d.data.Tasks, model.RoleCollaborator),
			activeProjectsCard(d.data.Projects),
		),
	)
}

// ClientDashboard skips the recent-tasks read; clients only see stats and
// project progress.
type ClientDashboard struct {
	app.Compo

	Version     int
	lastVersion int
	loaded      bool
	data        dashboard.Data
}

func (d *ClientDashboard) OnMount(ctx app.Context) { d.load(ctx) }

func (d *ClientDashboard) OnUpdate(ctx app.Context) {
	if d.Version != d.lastVersion {
		d.load(ctx)
	}
}

func (d *ClientDashboard) load(ctx app.Context) {
	d.lastVersion = d.Version
	d.loaded = false
	ctx.Async(func() {
		data := dashboard.Load(ctx, client, model.RoleClient)
		ctx.Dispatch(func(ctx app.Context) {
			d.data = data
			d.loaded = true
		})
	})
}

func (d *ClientDashboard) Render() app.UI {
	if !d.loaded {
		return loadingView()
	}
	return app.Div().Class("dashboard client-dashboard").Body(
		app.H1().Text("Client Dashboard"),
		statsGrid(d.data.Stats),
		activeProjectsCard(d.data.Projects),
	)
}

func loadingView() app.UI {
	return app.Div().Class("loading-screen").Body(app.Div().Class("spinner"))
}
