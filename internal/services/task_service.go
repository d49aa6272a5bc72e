package services

import (
	"time"

	"taskhive_backend/internal/logger"
	"taskhive_backend/internal/models"
	"taskhive_backend/internal/repositories"
	"taskhive_backend/internal/services/dto"
	"taskhive_backend/pkg/apperrors"
)

// TaskService owns the task lifecycle: NEW -> IN_PROGRESS -> DONE, the
// applicant set on both sides of the task/helper relation, and the
// cascading-delete rule.
type TaskService struct {
	taskRepo     repositories.TaskRepository
	helperRepo   repositories.HelperRepository
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	helperRepo repositories.HelperRepository,
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		helperRepo:   helperRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

// ---------------- Task Operations ----------------

func (s *TaskService) CreateTask(ownerID string, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	owner, err := s.userRepo.FindByID(ownerID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "user", "Owner not found")
	}
	if !owner.IsActive {
		return nil, apperrors.ErrInvalidStatus("user", "Owner account is deactivated")
	}

	if !models.ValidCoordinates(req.Latitude, req.Longitude) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		return nil, apperrors.ErrNotFound(err, "category", "Category not found")
	}

	task := &models.Task{
		Title:               req.Title,
		Description:         req.Description,
		CategoryID:          req.CategoryID,
		Location:            *models.NewPoint(req.Latitude, req.Longitude),
		Status:              models.TaskStatusNew,
		SpecialInstructions: req.SpecialInstructions,
		OwnerID:             ownerID,
		Budget:              req.Budget,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return buildTaskResponse(task), nil
}

func (s *TaskService) GetTask(taskID string) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "task", "Task not found")
	}
	return buildTaskResponse(task), nil
}

func (s *TaskService) ListTasks(query *dto.ListTasksQuery) ([]*dto.TaskResponse, error) {
	tasks, err := s.taskRepo.FindAll(repositories.TaskFilter{
		OwnerID:    query.OwnerID,
		CategoryID: query.CategoryID,
		Status:     models.TaskStatus(query.Status),
	})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, buildTaskResponse(&tasks[i]))
	}
	return responses, nil
}

func (s *TaskService) ListCategories() ([]*dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, &dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return responses, nil
}

func (s *TaskService) UpdateTask(ownerID, taskID string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "task", "Task not found")
	}

	if task.OwnerID != ownerID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			return nil, apperrors.ErrNotFound(err, "category", "Category not found")
		}
		task.CategoryID = *req.CategoryID
	}
	if req.Latitude != nil && req.Longitude != nil {
		if !models.ValidCoordinates(*req.Latitude, *req.Longitude) {
			return nil, apperrors.ErrInvalidCoordinates
		}
		task.Location = *models.NewPoint(*req.Latitude, *req.Longitude)
	}
	if req.SpecialInstructions != nil {
		task.SpecialInstructions = req.SpecialInstructions
	}
	if req.Budget != nil {
		task.Budget = *req.Budget
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return buildTaskResponse(task), nil
}

// ---------------- Application Operations ----------------

// ApplyForTask records the application on both sides of the relation: the
// helper id joins the task's applied set and the task id joins the helper's
// applied set. There is no cross-aggregate transaction; if the second write
// fails the operation is reported as failed.
func (s *TaskService) ApplyForTask(helperID, taskID string) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return apperrors.ErrNotFound(err, "task", "Task not found")
	}

	helper, err := s.helperRepo.FindByID(helperID)
	if err != nil {
		return apperrors.ErrNotFound(err, "helper", "Helper not found")
	}
	if !helper.IsActive {
		return apperrors.ErrInvalidStatus("helper", "Helper account is deactivated")
	}

	if task.Status == models.TaskStatusDone {
		return apperrors.ErrInvalidStatus("task", "Cannot apply to a completed task")
	}

	if task.HasApplicant(helperID) || helper.HasApplied(taskID) {
		return apperrors.ErrAlreadyApplied
	}

	task.AppliedHelpers = append(task.AppliedHelpers, helperID)
	if err := s.taskRepo.Update(task); err != nil {
		return err
	}

	helper.AppliedTasks = append(helper.AppliedTasks, taskID)
	return s.helperRepo.Update(helper)
}

// CancelApplication removes the application from both sides. Removal is
// idempotent: cancelling an application that does not exist is a no-op.
func (s *TaskService) CancelApplication(helperID, taskID string) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return apperrors.ErrNotFound(err, "task", "Task not found")
	}

	helper, err := s.helperRepo.FindByID(helperID)
	if err != nil {
		return apperrors.ErrNotFound(err, "helper", "Helper not found")
	}

	task.AppliedHelpers = removeID(task.AppliedHelpers, helperID)
	if err := s.taskRepo.Update(task); err != nil {
		return err
	}

	helper.AppliedTasks = removeID(helper.AppliedTasks, taskID)
	return s.helperRepo.Update(helper)
}

// ---------------- Lifecycle Transitions ----------------

// AssignHelper moves the task to IN_PROGRESS and records the assignment on
// both sides. The helper need not have applied (policy choice); when it has,
// the task id moves from the helper's applied set to its assigned set so a
// task id lives in at most one of the three sets.
func (s *TaskService) AssignHelper(ownerID, taskID, helperID string) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return apperrors.ErrNotFound(err, "task", "Task not found")
	}

	if task.OwnerID != ownerID {
		return apperrors.ErrInsufficientPermissions
	}
	if task.Status != models.TaskStatusNew {
		return apperrors.ErrInvalidStatus("task", "Only a NEW task can be assigned")
	}

	helper, err := s.helperRepo.FindByID(helperID)
	if err != nil {
		return apperrors.ErrNotFound(err, "helper", "Helper not found")
	}
	if !helper.IsActive {
		return apperrors.ErrInvalidStatus("helper", "Helper account is deactivated")
	}

	task.AssignedHelper = &helperID
	task.Status = models.TaskStatusInProgress
	task.AppliedHelpers = removeID(task.AppliedHelpers, helperID)
	if err := s.taskRepo.Update(task); err != nil {
		return err
	}

	helper.AppliedTasks = removeID(helper.AppliedTasks, taskID)
	if !helper.HasAssigned(taskID) {
		helper.AssignedTasks = append(helper.AssignedTasks, taskID)
	}
	return s.helperRepo.Update(helper)
}

// CompleteTask moves the task to DONE. IN_PROGRESS is the sole predecessor
// of DONE; the task id moves to the assigned helper's completed set.
func (s *TaskService) CompleteTask(ownerID, taskID string) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return apperrors.ErrNotFound(err, "task", "Task not found")
	}

	if task.OwnerID != ownerID {
		return apperrors.ErrInsufficientPermissions
	}
	if task.Status != models.TaskStatusInProgress {
		return apperrors.ErrInvalidStatus("task", "Only a task in progress can be completed")
	}

	task.Status = models.TaskStatusDone
	if err := s.taskRepo.Update(task); err != nil {
		return err
	}

	if task.AssignedHelper == nil {
		return nil
	}

	helper, err := s.helperRepo.FindByID(*task.AssignedHelper)
	if err != nil {
		return apperrors.ErrCascadeFailed(err, "task", "Failed to load assigned helper on completion")
	}

	helper.AssignedTasks = removeID(helper.AssignedTasks, taskID)
	if !containsID(helper.CompletedTasks, taskID) {
		helper.CompletedTasks = append(helper.CompletedTasks, taskID)
	}
	return s.helperRepo.Update(helper)
}

// ---------------- Deletion Cascade ----------------

// DeleteTask removes a task after cancelling every pending application.
// A task with an assigned helper can never be deleted.
func (s *TaskService) DeleteTask(ownerID, taskID string) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return apperrors.ErrNotFound(err, "task", "Task not found")
	}

	if task.OwnerID != ownerID {
		return apperrors.ErrInsufficientPermissions
	}

	return s.deleteWithCascade(task)
}

// deleteWithCascade runs the two-phase cascade: collect the applied helpers
// up front, cancel each reciprocal reference, then delete the task record.
// An unexpected step failure is wrapped as a cascade failure with the
// originating message preserved.
func (s *TaskService) deleteWithCascade(task *models.Task) error {
	if task.AssignedHelper != nil {
		return apperrors.ErrTaskHasAssignedHelper
	}

	helpers, err := s.helperRepo.FindByIDs(task.AppliedHelpers)
	if err != nil {
		return apperrors.ErrCascadeFailed(err, "task", "Failed to load applied helpers")
	}

	for i := range helpers {
		helper := &helpers[i]
		start := time.Now()
		helper.AppliedTasks = removeID(helper.AppliedTasks, task.ID)
		err := s.helperRepo.Update(helper)
		logger.CascadeLog("task.delete/cancel_application", helper.ID, time.Since(start), err)
		if err != nil {
			return apperrors.ErrCascadeFailed(err, "task", "Failed to cancel helper application")
		}
	}

	return s.taskRepo.Delete(task.ID)
}

// ---------------- Helpers ----------------

func buildTaskResponse(task *models.Task) *dto.TaskResponse {
	resp := &dto.TaskResponse{
		ID:                  task.ID,
		Title:               task.Title,
		Description:         task.Description,
		CategoryID:          task.CategoryID,
		Location:            dto.PointInfo{Type: task.Location.Type, Coordinates: task.Location.Coordinates},
		Status:              string(task.Status),
		SpecialInstructions: task.SpecialInstructions,
		OwnerID:             task.OwnerID,
		Budget:              task.Budget,
		AppliedHelpers:      task.AppliedHelpers,
		AssignedHelper:      task.AssignedHelper,
		CreatedAt:           task.CreatedAt,
		UpdatedAt:           task.UpdatedAt,
	}
	if resp.SpecialInstructions == nil {
		resp.SpecialInstructions = []string{}
	}
	if resp.AppliedHelpers == nil {
		resp.AppliedHelpers = []string{}
	}
	return resp
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
