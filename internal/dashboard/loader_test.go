package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"taskflow/internal/model"
)

type stubAPI struct {
	stats    model.Stats
	tasks    []model.Task
	projects []model.Project

	statsErr    error
	tasksErr    error
	projectsErr error

	taskCalls atomic.Int32
}

func (s *stubAPI) DashboardStats(context.Context) (model.Stats, error) {
	return s.stats, s.statsErr
}

func (s *stubAPI) RecentTasks(context.Context) ([]model.Task, error) {
	s.taskCalls.Add(1)
	return s.tasks, s.tasksErr
}

func (s *stubAPI) ActiveProjects(context.Context) ([]model.Project, error) {
	return s.projects, s.projectsErr
}

func TestLoad_AllSectionsSucceed(t *testing.T) {
	stub := &stubAPI{
		stats:    model.Stats{"my_tasks": 3, "my_projects": 2},
		tasks:    []model.Task{{ID: 1, Title: "Ship it"}},
		projects: []model.Project{{ID: 7, Name: "Atlas"}},
	}

	data := Load(context.Background(), stub, model.RoleManager)

	assert.Equal(t, 3, data.Stats["my_tasks"])
	assert.Len(t, data.Tasks, 1)
	assert.Len(t, data.Projects, 1)
}

func TestLoad_PartialFailureKeepsOtherSections(t *testing.T) {
	stub := &stubAPI{
		stats:    model.Stats{"total_users": 12},
		tasksErr: errors.New("backend down"),
		projects: []model.Project{{ID: 1, Name: "Atlas"}},
	}

	data := Load(context.Background(), stub, model.RoleAdmin)

	assert.Equal(t, 12, data.Stats["total_users"])
	assert.Empty(t, data.Tasks, "failed section renders its empty state")
	assert.Len(t, data.Projects, 1)
}

func TestLoad_ProjectsFailureStillRendersTasksAndStats(t *testing.T) {
	stub := &stubAPI{
		stats:       model.Stats{"team_tasks": 5},
		tasks:       []model.Task{{ID: 2, Title: "Review PR"}},
		projectsErr: errors.New("timeout"),
	}

	data := Load(context.Background(), stub, model.RoleManager)

	assert.Equal(t, 5, data.Stats["team_tasks"])
	assert.Len(t, data.Tasks, 1)
	assert.Empty(t, data.Projects)
}

func TestLoad_ClientRoleSkipsRecentTasks(t *testing.T) {
	stub := &stubAPI{
		stats: model.Stats{"my_projects": 1},
		tasks: []model.Task{{ID: 1}},
	}

	data := Load(context.Background(), stub, model.RoleClient)

	assert.Zero(t, stub.taskCalls.Load())
	assert.Empty(t, data.Tasks)
	assert.Equal(t, 1, data.Stats["my_projects"])
}

func TestLoad_SectionsNeverNil(t *testing.T) {
	stub := &stubAPI{
		statsErr:    errors.New("boom"),
		tasksErr:    errors.New("boom"),
		projectsErr: errors.New("boom"),
	}

	data := Load(context.Background(), stub, model.RoleCollaborator)

	assert.NotNil(t, data.Stats)
	assert.NotNil(t, data.Tasks)
	assert.NotNil(t, data.Projects)
}
