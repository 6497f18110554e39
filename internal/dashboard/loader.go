// Package dashboard implements the data-refresh flow shared by the four
// role dashboards: the role-scoped set of reads issued concurrently, with
// partial-failure tolerance instead of all-or-nothing loading.
package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"taskflow/internal/model"
)

// API is the slice of the REST façade the dashboards read from.
type API interface {
	DashboardStats(ctx context.Context) (model.Stats, error)
	RecentTasks(ctx context.Context) ([]model.Task, error)
	ActiveProjects(ctx context.Context) ([]model.Project, error)
}

// Data is one dashboard activation's worth of view state. Sections whose
// fetch failed hold their empty state; none are ever nil.
type Data struct {
	Stats    model.Stats
	Tasks    []model.Task
	Projects []model.Project
}

// Load issues the dashboard reads for the given role concurrently and waits
// for all of them to settle. A failure in any one call is logged and leaves
// that section empty; the rest of the data still renders. Client dashboards
// skip the recent-tasks read entirely.
func Load(ctx context.Context, client API, role model.Role) Data {
	data := Data{
		Stats:    model.Stats{},
		Tasks:    []model.Task{},
		Projects: []model.Project{},
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		stats, err := client.DashboardStats(ctx)
		if err != nil {
			slog.Warn("dashboard stats fetch failed", "error", err)
			return
		}
		if stats != nil {
			data.Stats = stats
		}
	}()

	if role != model.RoleClient {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tasks, err := client.RecentTasks(ctx)
			if err != nil {
				slog.Warn("recent tasks fetch failed", "error", err)
				return
			}
			if tasks != nil {
				data.Tasks = tasks
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		projects, err := client.ActiveProjects(ctx)
		if err != nil {
			slog.Warn("active projects fetch failed", "error", err)
			return
		}
		if projects != nil {
			data.Projects = projects
		}
	}()

	wg.Wait()
	return data
}
