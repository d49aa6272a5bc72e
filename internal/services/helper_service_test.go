package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhive_backend/internal/services/dto"
	"taskhive_backend/pkg/apperrors"
)

func TestHelperService_Register(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp, err := env.helperService.Register(&dto.RegisterHelperRequest{
		Name:     "Bekzat",
		Email:    "bekzat@example.com",
		Username: "bekzat",
		Password: "password123",
		Skills:   []string{"plumbing", "electrical"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.Availability)
	assert.Equal(t, []string{"plumbing", "electrical"}, resp.Skills)
	assert.Empty(t, resp.AppliedTasks)
	assert.Empty(t, resp.AssignedTasks)
	assert.Empty(t, resp.CompletedTasks)
}

func TestHelperService_Register_DuplicateIdentity(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	req := &dto.RegisterHelperRequest{
		Name:     "Bekzat",
		Email:    "bekzat@example.com",
		Username: "bekzat",
		Password: "password123",
	}
	_, err := env.helperService.Register(req)
	require.NoError(t, err)

	_, err = env.helperService.Register(req)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestHelperService_Update(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	helper := env.createHelper(t, "bekzat")

	experience := "Five seasons of landscaping work."
	availability := false
	resp, err := env.helperService.UpdateHelper(helper.ID, &dto.UpdateHelperRequest{
		Skills:       []string{"landscaping"},
		Experience:   &experience,
		Availability: &availability,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"landscaping"}, resp.Skills)
	assert.Equal(t, experience, resp.Experience)
	assert.False(t, resp.Availability)
}

func TestHelperService_DeleteAccount_WithdrawsApplications(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	owner := env.createUser(t, "poster")
	category := env.createCategory(t, "Yard & Garden Care")
	taskA := env.createTask(t, owner.ID, category.ID)
	taskB := env.createTask(t, owner.ID, category.ID)
	helper := env.createHelper(t, "leaver")

	require.NoError(t, env.taskService.ApplyForTask(helper.ID, taskA.ID))
	require.NoError(t, env.taskService.ApplyForTask(helper.ID, taskB.ID))

	require.NoError(t, env.helperService.DeleteAccount(helper.ID))

	// Deactivated, not removed.
	gone := env.reloadHelper(t, helper.ID)
	assert.False(t, gone.IsActive)
	assert.False(t, gone.Availability)
	assert.Empty(t, gone.AppliedTasks)

	// No task keeps a reference to the departed helper.
	assert.Empty(t, env.reloadTask(t, taskA.ID).AppliedHelpers)
	assert.Empty(t, env.reloadTask(t, taskB.ID).AppliedHelpers)
}

func TestHelperService_DeleteAccount_BlockedByAssignedWork(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	owner := env.createUser(t, "poster")
	category := env.createCategory(t, "Home Improvement")
	task := env.createTask(t, owner.ID, category.ID)
	helper := env.createHelper(t, "busy")

	require.NoError(t, env.taskService.AssignHelper(owner.ID, task.ID, helper.ID))

	err := env.helperService.DeleteAccount(helper.ID)
	assert.ErrorIs(t, err, apperrors.ErrHasAssignedTasks)

	assert.True(t, env.reloadHelper(t, helper.ID).IsActive)
}

func TestHelperService_DeleteAccount_CompletedTasksUntouched(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	owner := env.createUser(t, "poster")
	category := env.createCategory(t, "Event Help")
	task := env.createTask(t, owner.ID, category.ID)
	helper := env.createHelper(t, "veteran")

	require.NoError(t, env.taskService.AssignHelper(owner.ID, task.ID, helper.ID))
	require.NoError(t, env.taskService.CompleteTask(owner.ID, task.ID))

	require.NoError(t, env.helperService.DeleteAccount(helper.ID))

	// The completed task record survives the helper's departure.
	got := env.reloadTask(t, task.ID)
	assert.Equal(t, "DONE", string(got.Status))
}
