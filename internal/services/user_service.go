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

// UserService manages task-poster accounts and the cascade that runs when
// one is deleted: every task the user owns goes through the task deletion
// path first, so applied helpers are cleaned up too.
type UserService struct {
	userRepo    repositories.UserRepository
	taskRepo    repositories.TaskRepository
	taskService *TaskService
	mailQueue   queue.EmailProducer
}

func NewUserService(
	userRepo repositories.UserRepository,
	taskRepo repositories.TaskRepository,
	taskService *TaskService,
	mailQueue queue.EmailProducer,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		taskRepo:    taskRepo,
		taskService: taskService,
		mailQueue:   mailQueue,
	}
}

func (s *UserService) Register(req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	exists, err := s.userRepo.ExistsByEmailOrUsername(req.Email, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyExists(repositories.ErrUserAlreadyExists, "user", "Email or username is already taken")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		IsActive:     true,
	}
	if req.Latitude != nil && req.Longitude != nil {
		if !models.ValidCoordinates(*req.Latitude, *req.Longitude) {
			return nil, apperrors.ErrInvalidCoordinates
		}
		user.Location = models.NewPoint(*req.Latitude, *req.Longitude)
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "user", "Email or username is already taken")
		}
		return nil, err
	}

	s.sendWelcomeEmail(user)

	return buildUserResponse(user), nil
}

func (s *UserService) GetUser(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "user", "User not found")
	}
	return buildUserResponse(user), nil
}

func (s *UserService) ListUsers() ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, buildUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *UserService) UpdateUser(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "user", "User not found")
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepo.ExistsByEmailOrUsername(*req.Email, "")
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrAlreadyExists(repositories.ErrUserAlreadyExists, "user", "Email is already taken")
		}
		user.Email = *req.Email
	}
	if req.Username != nil && *req.Username != user.Username {
		taken, err := s.userRepo.ExistsByEmailOrUsername("", *req.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrAlreadyExists(repositories.ErrUserAlreadyExists, "user", "Username is already taken")
		}
		user.Username = *req.Username
	}
	if req.Latitude != nil && req.Longitude != nil {
		if !models.ValidCoordinates(*req.Latitude, *req.Longitude) {
			return nil, apperrors.ErrInvalidCoordinates
		}
		user.Location = models.NewPoint(*req.Latitude, *req.Longitude)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return buildUserResponse(user), nil
}

// DeleteAccount deactivates the user after deleting every task they own.
// Each owned task runs the full task deletion cascade; a task with an
// assigned helper aborts the whole operation before anything is touched.
// The user record itself is kept, deactivated, so reviews that reference
// it stay resolvable.
func (s *UserService) DeleteAccount(userID string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return apperrors.ErrNotFound(err, "user", "User not found")
	}

	tasks, err := s.taskRepo.FindByOwner(userID)
	if err != nil {
		return apperrors.ErrCascadeFailed(err, "user", "Failed to load owned tasks")
	}

	for i := range tasks {
		if tasks[i].AssignedHelper != nil {
			return apperrors.ErrTaskHasAssignedHelper
		}
	}

	for i := range tasks {
		start := time.Now()
		err := s.taskService.deleteWithCascade(&tasks[i])
		logger.CascadeLog("user.delete/delete_task", tasks[i].ID, time.Since(start), err)
		if err != nil {
			return apperrors.ErrCascadeFailed(err, "user", "Failed to delete owned task")
		}
	}

	user.IsActive = false
	return s.userRepo.Update(user)
}

func (s *UserService) sendWelcomeEmail(user *models.User) {
	if s.mailQueue == nil {
		return
	}
	job := queue.EmailJob{
		To:      user.Email,
		Subject: "Welcome to TaskHive",
		Text:    fmt.Sprintf("Hi %s, your account is ready. Post your first task to get started.", user.Name),
	}
	go func() {
		if err := s.mailQueue.Enqueue(context.Background(), job); err != nil {
			logger.WithError(err).Warn("failed to enqueue welcome email", "email", user.Email)
		}
	}()
}

func buildUserResponse(user *models.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Username:         user.Username,
		IsActive:         user.IsActive,
		TotalHelperRated: user.TotalHelperRated,
		TotalRating:      user.TotalRating,
		CreatedAt:        user.CreatedAt,
	}
	if user.Location != nil {
		resp.Location = &dto.PointInfo{Type: user.Location.Type, Coordinates: user.Location.Coordinates}
	}
	return resp
}
