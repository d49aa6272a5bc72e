package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskhive_backend/internal/auth"
	"taskhive_backend/internal/logger"
	"taskhive_backend/internal/models"
	"taskhive_backend/internal/queue"
	"taskhive_backend/internal/repositories"
	"taskhive_backend/internal/services/dto"
	"taskhive_backend/pkg/apperrors"
)

// HelperService manages helper accounts. Deleting a helper withdraws every
// pending application first; a helper with assigned work cannot leave.
type HelperService struct {
	helperRepo repositories.HelperRepository
	taskRepo   repositories.TaskRepository
	mailQueue  queue.EmailProducer
}

func NewHelperService(
	helperRepo repositories.HelperRepository,
	taskRepo repositories.TaskRepository,
	mailQueue queue.EmailProducer,
) *HelperService {
	return &HelperService{
		helperRepo: helperRepo,
		taskRepo:   taskRepo,
		mailQueue:  mailQueue,
	}
}

func (s *HelperService) Register(req *dto.RegisterHelperRequest) (*dto.HelperResponse, error) {
	exists, err := s.helperRepo.ExistsByEmailOrUsername(req.Email, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyExists(repositories.ErrHelperAlreadyExists, "helper", "Email or username is already taken")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	helper := &models.Helper{
		Name:         req.Name,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		Skills:       req.Skills,
		Availability: true,
		IsActive:     true,
	}
	if req.Latitude != nil && req.Longitude != nil {
		if !models.ValidCoordinates(*req.Latitude, *req.Longitude) {
			return nil, apperrors.ErrInvalidCoordinates
		}
		helper.Location = models.NewPoint(*req.Latitude, *req.Longitude)
	}

	if err := s.helperRepo.Create(helper); err != nil {
		if errors.Is(err, repositories.ErrHelperAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "helper", "Email or username is already taken")
		}
		return nil, err
	}

	s.sendWelcomeEmail(helper)

	return buildHelperResponse(helper), nil
}

func (s *HelperService) GetHelper(helperID string) (*dto.HelperResponse, error) {
	helper, err := s.helperRepo.FindByID(helperID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "helper", "Helper not found")
	}
	return buildHelperResponse(helper), nil
}

func (s *HelperService) ListHelpers() ([]*dto.HelperResponse, error) {
	helpers, err := s.helperRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.HelperResponse, 0, len(helpers))
	for i := range helpers {
		responses = append(responses, buildHelperResponse(&helpers[i]))
	}
	return responses, nil
}

func (s *HelperService) UpdateHelper(helperID string, req *dto.UpdateHelperRequest) (*dto.HelperResponse, error) {
	helper, err := s.helperRepo.FindByID(helperID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "helper", "Helper not found")
	}

	if req.Name != nil {
		helper.Name = *req.Name
	}
	if req.Email != nil && *req.Email != helper.Email {
		taken, err := s.helperRepo.ExistsByEmailOrUsername(*req.Email, "")
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrAlreadyExists(repositories.ErrHelperAlreadyExists, "helper", "Email is already taken")
		}
		helper.Email = *req.Email
	}
	if req.Username != nil && *req.Username != helper.Username {
		taken, err := s.helperRepo.ExistsByEmailOrUsername("", *req.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrAlreadyExists(repositories.ErrHelperAlreadyExists, "helper", "Username is already taken")
		}
		helper.Username = *req.Username
	}
	if req.Skills != nil {
		helper.Skills = req.Skills
	}
	if req.Experience != nil {
		helper.Experience = *req.Experience
	}
	if req.Availability != nil {
		helper.Availability = *req.Availability
	}
	if req.Latitude != nil && req.Longitude != nil {
		if !models.ValidCoordinates(*req.Latitude, *req.Longitude) {
			return nil, apperrors.ErrInvalidCoordinates
		}
		helper.Location = models.NewPoint(*req.Latitude, *req.Longitude)
	}

	if err := s.helperRepo.Update(helper); err != nil {
		return nil, err
	}
	return buildHelperResponse(helper), nil
}

// DeleteAccount deactivates the helper after withdrawing every pending
// application. Assigned work blocks deletion outright; completed task ids
// stay on the deactivated record's side only, so no task is touched for
// them. The record is kept, deactivated, so reviews stay resolvable.
func (s *HelperService) DeleteAccount(helperID string) error {
	helper, err := s.helperRepo.FindByID(helperID)
	if err != nil {
		return apperrors.ErrNotFound(err, "helper", "Helper not found")
	}

	if len(helper.AssignedTasks) > 0 {
		return apperrors.ErrHasAssignedTasks
	}

	appliedTasks := append([]string(nil), helper.AppliedTasks...)
	for _, taskID := range appliedTasks {
		start := time.Now()
		err := s.withdrawApplication(helperID, taskID)
		logger.CascadeLog("helper.delete/withdraw_application", taskID, time.Since(start), err)
		if err != nil {
			return apperrors.ErrCascadeFailed(err, "helper", "Failed to withdraw application")
		}
	}

	helper.IsActive = false
	helper.Availability = false
	return s.helperRepo.Update(helper)
}

// withdrawApplication removes the helper id from one task's applied set.
// A task that no longer exists is skipped; the reference is already dead.
func (s *HelperService) withdrawApplication(helperID, taskID string) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return nil
		}
		return err
	}

	if !task.HasApplicant(helperID) {
		return nil
	}
	task.AppliedHelpers = removeID(task.AppliedHelpers, helperID)
	return s.taskRepo.Update(task)
}

func (s *HelperService) sendWelcomeEmail(helper *models.Helper) {
	if s.mailQueue == nil {
		return
	}
	job := queue.EmailJob{
		To:      helper.Email,
		Subject: "Welcome to TaskHive",
		Text:    fmt.Sprintf("Hi %s, your helper profile is live. Browse open tasks and apply to the ones that fit your skills.", helper.Name),
	}
	go func() {
		if err := s.mailQueue.Enqueue(context.Background(), job); err != nil {
			logger.WithError(err).Warn("failed to enqueue welcome email", "email", helper.Email)
		}
	}()
}

func buildHelperResponse(helper *models.Helper) *dto.HelperResponse {
	resp := &dto.HelperResponse{
		ID:               helper.ID,
		Name:             helper.Name,
		Email:            helper.Email,
		Username:         helper.Username,
		Skills:           helper.Skills,
		Experience:       helper.Experience,
		Availability:     helper.Availability,
		TotalPeopleRated: helper.TotalPeopleRated,
		TotalRating:      helper.TotalRating,
		AppliedTasks:     helper.AppliedTasks,
		AssignedTasks:    helper.AssignedTasks,
		CompletedTasks:   helper.CompletedTasks,
		IsActive:         helper.IsActive,
		CreatedAt:        helper.CreatedAt,
	}
	if helper.Location != nil {
		resp.Location = &dto.PointInfo{Type: helper.Location.Type, Coordinates: helper.Location.Coordinates}
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if resp.AppliedTasks == nil {
		resp.AppliedTasks = []string{}
	}
	if resp.AssignedTasks == nil {
		resp.AssignedTasks = []string{}
	}
	if resp.CompletedTasks == nil {
		resp.CompletedTasks = []string{}
	}
	return resp
}
