package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskflow/internal/model"
)

// Cross-component actions emitted by the new-task modal.
const (
	actionTaskCreated = "taskflow/task-created"
	actionModalClosed = "taskflow/modal-closed"
)

// Sidebar entries per role, Client being the fallback set.
var sidebarNav = map[model.Role][]string{
	model.RoleAdmin:        {"Dashboard", "All Projects", "User Management", "All Tasks", "Analytics", "Calendar", "Messages", "System Settings"},
	model.RoleManager:      {"Dashboard", "My Projects", "Team Tasks", "Team Members", "Reports", "Calendar", "Messages", "Settings"},
	model.RoleCollaborator: {"Dashboard", "My Tasks", "Projects", "Calendar", "Messages", "Settings"},
	model.RoleClient:       {"Dashboard", "My Projects", "Progress Reports", "Messages", "Account Settings"},
}

// dashboardForRole picks exactly one variant for the role; unknown or
// missing roles get the Client view.
func dashboardForRole(role model.Role, version int) app.UI {
	switch role {
	case model.RoleAdmin:
		return &AdminDashboard{Version: version}
	case model.RoleManager:
		return &ManagerDashboard{Version: version}
	case model.RoleCollaborator:
		return &CollaboratorDashboard{Version: version}
	default:
		return &ClientDashboard{Version: version}
	}
}

// DashboardPage is the authenticated shell: sidebar, topbar and the
// role-selected dashboard variant.
type DashboardPage struct {
	app.Compo

	showModal    bool
	showDropdown bool
	dataVersion  int
}

func (p *DashboardPage) OnMount(ctx app.Context) {
	if !requireAuth(ctx) {
		return
	}
	ctx.Handle(actionTaskCreated, func(ctx app.Context, a app.Action) {
		p.showModal = false
		p.dataVersion++
	})
	ctx.Handle(actionModalClosed, func(ctx app.Context, a app.Action) {
		p.showModal = false
	})
}

func (p *DashboardPage) OnNav(ctx app.Context) {
	requireAuth(ctx)
}

func (p *DashboardPage) logout(ctx app.Context, e app.Event) {
	sessionStore(ctx).Logout()
	ctx.Navigate("/login")
}

func (p *DashboardPage) Render() app.UI {
	s := store
	if s == nil || s.Loading() || !s.IsAuthenticated() {
		return app.Div().Class("loading-screen").Body(app.Div().Class("spinner"))
	}

	user := s.User()
	role := s.Role()

	return app.Div().Class("dashboardlayout").Body(
		p.renderSidebar(role),
		app.Main().Class("dashboardmain").Body(
			p.renderTopbar(user, role),
			dashboardForRole(role, p.dataVersion),
			app.If(p.showModal, func() app.UI {
				return &NewTaskModal{Role: role}
			}),
		),
	)
}

func (p *DashboardPage) renderSidebar(role model.Role) app.UI {
	items, ok := sidebarNav[role]
	if !ok {
		items = sidebarNav[model.RoleClient]
	}

	return app.Aside().Class("sidebar").Body(
		app.Div().Class("sidebar-logo").Body(
			app.Span().Class("sidebar-title").Text("TaskFlow"),
		),
		app.Nav().Class("sidebar-nav").Body(
			app.Range(items).Slice(func(i int) app.UI {
				class := "sidebar-nav-item"
				if i == 0 {
					class += " active"
				}
				return app.Div().Class(class).Text(items[i])
			}),
		),
	)
}

func (p *DashboardPage) renderTopbar(user *model.User, role model.Role) app.UI {
	name := ""
	avatar := ""
	if user != nil {
		name = user.FullName
		avatar = user.ProfilePicture
	}

	return app.Div().Class("topbar").Body(
		app.Div().Class("topbar-user").
			OnClick(func(ctx app.Context, e app.Event) {
				p.showDropdown = !p.showDropdown
			}).
			Body(
				app.If(avatar != "", func() app.UI {
					return app.Img().Class("topbar-avatar").Src(avatar).Alt(name)
				}),
				app.Div().Class("topbar-user-info").Body(
					app.Div().Class("topbar-user-name").Text(name),
					app.Div().Class("topbar-user-role").Text(string(role)),
				),
				app.If(p.showDropdown, func() app.UI {
					return app.Div().Class("user-dropdown").Body(
						app.Button().Class("user-dropdown-item").Text("Logout").OnClick(p.logout),
					)
				}),
			),
		app.H1().Class("topbar-title").Text("Dashboard"),
		app.Button().
			Class("topbar-newtask").
			Text("New Task").
			OnClick(func(ctx app.Context, e app.Event) {
				p.showModal = true
			}),
		&NotificationBell{},
	)
}
