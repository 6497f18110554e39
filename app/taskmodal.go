package main

import (
	"strconv"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskflow/internal/model"
)

// NewTaskModal creates a task. On open it fetches the project list; picking
// a project fetches the users eligible for assignment to it. Only roles that
// can assign see the assignee picker.
type NewTaskModal struct {
	app.Compo

	Role model.Role

	task       model.NewTask
	projects   []model.Project
	users      []model.User
	err        string
	submitting bool
}

func (m *NewTaskModal) OnMount(ctx app.Context) {
	m.task = model.NewTask{Priority: model.PriorityMedium, AssignedTo: []int64{}}
	ctx.Async(func() {
		projects, err := client.Projects(ctx)
		if err != nil {
			app.Log("error loading projects:", err)
			return
		}
		ctx.Dispatch(func(ctx app.Context) {
			m.projects = projects
		})
	})
}

func (m *NewTaskModal) selectProject(ctx app.Context, raw string) {
	id, _ := strconv.ParseInt(raw, 10, 64)
	m.task.Project = id
	m.task.AssignedTo = []int64{}
	if id == 0 || !m.Role.CanAssign() {
		m.users = nil
		return
	}
	ctx.Async(func() {
		users, err := client.AvailableUsers(ctx, id)
		if err != nil {
			app.Log("error loading available users:", err)
			return
		}
		ctx.Dispatch(func(ctx app.Context) {
			m.users = users
		})
	})
}

func (m *NewTaskModal) toggleAssignee(id int64) {
	for i, existing := range m.task.AssignedTo {
		if existing == id {
			m.task.AssignedTo = append(m.task.AssignedTo[:i], m.task.AssignedTo[i+1:]...)
			return
		}
	}
	m.task.AssignedTo = append(m.task.AssignedTo, id)
}

func (m *NewTaskModal) isAssigned(id int64) bool {
	for _, existing := range m.task.AssignedTo {
		if existing == id {
			return true
		}
	}
	return false
}

func (m *NewTaskModal) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()

	if msg := m.task.Validate(); msg != "" {
		m.err = msg
		return
	}

	m.submitting = true
	m.err = ""
	ctx.Async(func() {
		_, err := client.CreateTask(ctx, m.task)
		ctx.Dispatch(func(ctx app.Context) {
			m.submitting = false
			if err != nil {
				app.Log("error creating task:", err)
				m.err = "Could not create the task. Please try again."
				return
			}
			m.task = model.NewTask{Priority: model.PriorityMedium, AssignedTo: []int64{}}
			ctx.NewAction(actionTaskCreated)
		})
	})
}

func (m *NewTaskModal) close(ctx app.Context, e app.Event) {
	ctx.NewAction(actionModalClosed)
}

func (m *NewTaskModal) Render() app.UI {
	return app.Div().Class("modal-overlay").Body(
		app.Div().Class("modal").Body(
			app.Div().Class("modal-header").Body(
				app.H2().Text("Create New Task"),
				app.Button().Class("modal-close").Text("Close").OnClick(m.close),
			),

			app.If(m.err != "", func() app.UI {
				return app.Div().Class("error-message").Text(m.err)
			}),

			app.Form().Class("modal-form").OnSubmit(m.onSubmit).Body(
				app.Div().Class("form-group").Body(
					app.Label().Text("Task Title"),
					app.Input().
						Type("text").
						Required(true).
						Value(m.task.Title).
						OnInput(func(ctx app.Context, e app.Event) {
							m.task.Title = e.Get("target").Get("value").String()
						}),
				),

				app.Div().Class("form-group").Body(
					app.Label().Text("Description"),
					app.Textarea().
						Rows(3).
						Text(m.task.Description).
						OnInput(func(ctx app.Context, e app.Event) {
							m.task.Description = e.Get("target").Get("value").String()
						}),
				),

				app.Div().Class("form-row").Body(
					app.Div().Class("form-group").Body(
						app.Label().Text("Priority"),
						app.Select().
							OnChange(func(ctx app.Context, e app.Event) {
								m.task.Priority = model.TaskPriority(e.Get("target").Get("value").String())
							}).
							Body(
								priorityOption(model.PriorityLow, "Low", m.task.Priority),
								priorityOption(model.PriorityMedium, "Medium", m.task.Priority),
								priorityOption(model.PriorityHigh, "High", m.task.Priority),
								priorityOption(model.PriorityUrgent, "Urgent", m.task.Priority),
							),
					),
					app.Div().Class("form-group").Body(
						app.Label().Text("Due Date"),
						app.Input().
							Type("datetime-local").
							Required(true).
							Value(m.task.DueDate).
							OnInput(func(ctx app.Context, e app.Event) {
								m.task.DueDate = e.Get("target").Get("value").String()
							}),
					),
				),

				app.Div().Class("form-group").Body(
					app.Label().Text("Project"),
					app.Select().
						Required(true).
						OnChange(func(ctx app.Context, e app.Event) {
							m.selectProject(ctx, e.Get("target").Get("value").String())
						}).
						Body(
							app.Option().Value("").Text("Select project"),
							app.Range(m.projects).Slice(func(i int) app.UI {
								p := m.projects[i]
								return app.Option().
									Value(strconv.FormatInt(p.ID, 10)).
									Selected(m.task.Project == p.ID).
									Text(p.Name)
							}),
						),
				),

				app.If(m.Role.CanAssign() && len(m.users) > 0, func() app.UI {
					return app.Div().Class("form-group").Body(
						app.Label().Text("Assign To"),
						app.Div().Class("assignee-list").Body(
							app.Range(m.users).Slice(func(i int) app.UI {
								u := m.users[i]
								return app.Label().Class("assignee-item").Body(
									app.Input().
										Type("checkbox").
										Checked(m.isAssigned(u.ID)).
										OnChange(func(ctx app.Context, e app.Event) {
											m.toggleAssignee(u.ID)
										}),
									app.Span().Text(u.FullName),
								)
							}),
						),
					)
				}),

				app.Div().Class("modal-actions").Body(
					app.Button().Type("button").Class("btn btn--secondary").Text("Cancel").OnClick(m.close),
					app.Button().
						Type("submit").
						Class("btn btn--primary").
						Disabled(m.submitting).
						Text(submitLabel(m.submitting, "Create Task")),
				),
			),
		),
	)
}

func priorityOption(value model.TaskPriority, label string, current model.TaskPriority) app.UI {
	return app.Option().
		Value(string(value)).
		Selected(current == value).
		Text(label)
}
