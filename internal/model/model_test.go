package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("ADMIN"))
	assert.Equal(t, RoleManager, ParseRole("MANAGER"))
	assert.Equal(t, RoleCollaborator, ParseRole("COLLABORATOR"))
	assert.Equal(t, RoleClient, ParseRole("CLIENT"))

	t.Run("unknown roles fall back to client", func(t *testing.T) {
		assert.Equal(t, RoleClient, ParseRole("SUPERUSER"))
		assert.Equal(t, RoleClient, ParseRole("admin"))
		assert.Equal(t, RoleClient, ParseRole(""))
	})
}

func TestRole_CanAssign(t *testing.T) {
	assert.True(t, RoleAdmin.CanAssign())
	assert.True(t, RoleManager.CanAssign())
	assert.False(t, RoleCollaborator.CanAssign())
	assert.False(t, RoleClient.CanAssign())
}

func TestTask_AssigneeNames(t *testing.T) {
	assert.Equal(t, "Unassigned", Task{}.AssigneeNames())

	task := Task{AssignedTo: []User{
		{FullName: "Ada Lovelace"},
		{FullName: "Grace Hopper"},
	}}
	assert.Equal(t, "Ada Lovelace, Grace Hopper", task.AssigneeNames())
}

func TestTask_ProjectName(t *testing.T) {
	assert.Equal(t, "No Project", Task{}.ProjectName())
	assert.Equal(t, "No Project", Task{Project: &ProjectRef{}}.ProjectName())
	assert.Equal(t, "Atlas", Task{Project: &ProjectRef{Name: "Atlas"}}.ProjectName())
}

func TestProject_TotalTasks(t *testing.T) {
	assert.Zero(t, Project{}.TotalTasks())
	assert.Equal(t, 9, Project{TaskStats: &TaskStats{Total: 9}}.TotalTasks())
}

func TestNewTask_Validate(t *testing.T) {
	task := NewTask{}
	assert.Equal(t, "Task title is required", task.Validate())

	task.Title = "Write release notes"
	assert.Equal(t, "Select a project", task.Validate())

	task.Project = 4
	assert.Equal(t, "Due date is required", task.Validate())

	task.DueDate = "2026-09-01"
	assert.Empty(t, task.Validate())
}
