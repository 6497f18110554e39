package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskflow/internal/model"
)

func TestDashboardForRole(t *testing.T) {
	assert.IsType(t, &AdminDashboard{}, dashboardForRole(model.RoleAdmin, 0))
	assert.IsType(t, &ManagerDashboard{}, dashboardForRole(model.RoleManager, 0))
	assert.IsType(t, &CollaboratorDashboard{}, dashboardForRole(model.RoleCollaborator, 0))
	assert.IsType(t, &ClientDashboard{}, dashboardForRole(model.RoleClient, 0))

	t.Run("unknown roles get the client view", func(t *testing.T) {
		assert.IsType(t, &ClientDashboard{}, dashboardForRole(model.Role("NOBODY"), 0))
	})
}

func TestStatLabel(t *testing.T) {
	assert.Equal(t, "Total Users", statLabel("total_users"))
	assert.Equal(t, "Pending Review", statLabel("pending_review"))

	t.Run("unknown keys are title-cased", func(t *testing.T) {
		assert.Equal(t, "Open Incidents", statLabel("open_incidents"))
		assert.Equal(t, "Velocity", statLabel("velocity"))
	})
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "status-pill status-pill--completed", statusClass(model.StatusDone))
	assert.Equal(t, "status-pill status-pill--in-progress", statusClass(model.StatusInProgress))
	assert.Equal(t, "status-pill status-pill--pending", statusClass(model.TaskStatus("ARCHIVED")))
}

func TestPriorityClass(t *testing.T) {
	assert.Equal(t, "priority-pill priority-pill--urgent", priorityClass(model.PriorityUrgent))
}

func TestToggleAndSubmitLabels(t *testing.T) {
	assert.Equal(t, "Hide", toggleLabel(true))
	assert.Equal(t, "Show", toggleLabel(false))
	assert.Equal(t, "Please wait…", submitLabel(true, "Sign in"))
	assert.Equal(t, "Sign in", submitLabel(false, "Sign in"))
}

func TestMarkNotificationRead(t *testing.T) {
	notifications := []model.Notification{
		{ID: 1, Title: "Task assigned", IsRead: false},
		{ID: 2, Title: "Comment added", IsRead: false},
	}

	markNotificationRead(notifications, 2)

	assert.False(t, notifications[0].IsRead, "other items stay untouched")
	assert.True(t, notifications[1].IsRead)

	markNotificationRead(notifications, 99)
	assert.False(t, notifications[0].IsRead)
}

func TestNotificationIconClass(t *testing.T) {
	assert.NotEqual(t,
		notificationIconClass(model.NotifyTaskAssigned),
		notificationIconClass(model.NotifySystem),
	)
}

func TestSidebarNavCoversEveryRole(t *testing.T) {
	for _, role := range []model.Role{model.RoleAdmin, model.RoleManager, model.RoleCollaborator, model.RoleClient} {
		assert.NotEmpty(t, sidebarNav[role], string(role))
	}
}
