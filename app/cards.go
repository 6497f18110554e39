package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskflow/internal/model"
)

// Labels for the stat keys the backend is known to emit; anything else falls
// back to a title-cased key.
var statLabels = map[string]string{
	"total_users":        "Total Users",
	"active_projects":    "Active Projects",
	"total_tasks":        "Total Tasks",
	"completed_tasks":    "Completed Tasks",
	"system_issues":      "System Issues",
	"managed_projects":   "Managed Projects",
	"team_tasks":         "Team Tasks",
	"overdue_tasks":      "Overdue Tasks",
	"my_tasks":           "My Tasks",
	"in_progress":        "In Progress",
	"pending_tasks":      "Pending Tasks",
	"my_projects":        "My Projects",
	"completed_projects": "Completed Projects",
	"pending_review":     "Pending Review",
}

func statLabel(key string) string {
	if label, ok := statLabels[key]; ok {
		return label
	}
	words := strings.Split(key, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func statsGrid(stats model.Stats) app.UI {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	colors := []string{"blue", "green", "yellow", "red"}

	return app.Div().Class("stats").Body(
		app.Range(keys).Slice(func(i int) app.UI {
			key := keys[i]
			return app.Div().Class("statcard statcard--" + colors[i%len(colors)]).Body(
				app.Div().Class("statcard-count").Text(fmt.Sprintf("%d", stats[key])),
				app.Div().Class("statcard-label").Text(statLabel(key)),
			)
		}),
	)
}

var taskDescriptions = map[model.Role]string{
	model.RoleAdmin:        "All recently updated tasks",
	model.RoleManager:      "Team tasks updated recently",
	model.RoleCollaborator: "Your recently updated tasks",
	model.RoleClient:       "Project tasks updated recently",
}

var statusClasses = map[model.TaskStatus]string{
	model.StatusTodo:       "pending",
	model.StatusInProgress: "in-progress",
	model.StatusInReview:   "in-review",
	model.StatusDone:       "completed",
}

func statusClass(status model.TaskStatus) string {
	if c, ok := statusClasses[status]; ok {
		return "status-pill status-pill--" + c
	}
	return "status-pill status-pill--pending"
}

func priorityClass(priority model.TaskPriority) string {
	return "priority-pill priority-pill--" + strings.ToLower(string(priority))
}

func recentTasksCard(tasks []model.Task, role model.Role) app.UI {
	return app.Div().Class("recenttasks card").Body(
		app.Div().Class("card-header").Body(
			app.Div().Class("card-title").Text("Recent Tasks"),
			app.Div().Class("card-desc").Text(taskDescriptions[role]),
		),
		app.If(len(tasks) == 0, func() app.UI {
			return app.Div().Class("card-empty").Text("No tasks found")
		}).Else(func() app.UI {
			return app.Div().Class("task-list").Body(
				app.Range(tasks).Slice(func(i int) app.UI {
					t := tasks[i]
					return app.Div().Class("task-item").Body(
						app.Div().Class("task-title").Text(t.Title),
						app.Div().Class("task-meta").Body(
							app.Span().Class("task-project").Text(t.ProjectName()),
							app.Span().Class("task-assignees").Text(t.AssigneeNames()),
							app.Span().Class(priorityClass(t.Priority)).Text(string(t.Priority)),
							app.Span().Class(statusClass(t.Status)).Text(string(t.Status)),
							app.Span().Class("task-due").Text(t.DueDate),
						),
					)
				}),
			)
		}),
	)
}

func activeProjectsCard(projects []model.Project) app.UI {
	return app.Div().Class("activeprojects card").Body(
		app.Div().Class("card-header").Body(
			app.Div().Class("card-title").Text("Active Projects"),
		),
		app.If(len(projects) == 0, func() app.UI {
			return app.Div().Class("card-empty").Text("No active projects")
		}).Else(func() app.UI {
			return app.Div().Class("project-list").Body(
				app.Range(projects).Slice(func(i int) app.UI {
					p := projects[i]
					return app.Div().Class("project-item").Body(
						app.Div().Class("project-name").Text(p.Name),
						app.Div().Class("project-tasks").Text(fmt.Sprintf("%d tasks", p.TotalTasks())),
						app.Div().Class("project-progress").Body(
							app.Div().Class("project-progress-bar").
								Style("width", fmt.Sprintf("%.0f%%", p.ProgressPercentage)),
						),
						app.Div().Class("project-percent").
							Text(fmt.Sprintf("%.0f%%", p.ProgressPercentage)),
					)
				}),
			)
		}),
	)
}
