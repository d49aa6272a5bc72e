package services

import (
	"time"

	"taskhive_backend/internal/auth"
	"taskhive_backend/internal/config"
	"taskhive_backend/internal/logger"
	"taskhive_backend/internal/models"
	"taskhive_backend/internal/repositories"
	"taskhive_backend/internal/services/dto"
	"taskhive_backend/pkg/apperrors"
)

// AuthService issues JWT pairs for both actor types. Refresh tokens are
// persisted so they can be revoked; access tokens are stateless.
type AuthService struct {
	userRepo         repositories.UserRepository
	helperRepo       repositories.HelperRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	helperRepo repositories.HelperRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		helperRepo:       helperRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Login authenticates by username or email against the requested actor
// type. Credential failures are indistinguishable on purpose.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var (
		actorID      string
		username     string
		passwordHash string
		active       bool
		role         models.Role
	)

	if req.IsHelper {
		helper, err := s.helperRepo.FindByLogin(req.Login)
		if err != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
		actorID, username, passwordHash, active = helper.ID, helper.Username, helper.PasswordHash, helper.IsActive
		role = models.RoleHelper
	} else {
		user, err := s.userRepo.FindByLogin(req.Login)
		if err != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
		actorID, username, passwordHash, active = user.ID, user.Username, user.PasswordHash, user.IsActive
		role = models.RoleUser
	}

	if !active {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPasswordHash(req.Password, passwordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokenPair(actorID, username, role)
}

// Refresh rotates a refresh token: the presented token is revoked and a
// fresh pair is issued. A token that fails validation or is not on record
// is rejected.
func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.LoginResponse, error) {
	claims, err := auth.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}

	stored, err := s.refreshTokenRepo.FindByToken(req.RefreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Refresh token is not recognised")
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.refreshTokenRepo.DeleteByToken(req.RefreshToken)
		return nil, apperrors.NewUnauthorizedError("Refresh token has expired")
	}

	if err := s.refreshTokenRepo.DeleteByToken(req.RefreshToken); err != nil {
		logger.WithError(err).Warn("failed to revoke rotated refresh token", "actor_id", claims.ActorID)
	}

	return s.issueTokenPair(claims.ActorID, claims.Username, claims.Role)
}

// Logout revokes one refresh token. Revoking a token that is already gone
// is a no-op.
func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	return s.refreshTokenRepo.DeleteByToken(req.RefreshToken)
}

// LogoutAll revokes every refresh token held by the actor.
func (s *AuthService) LogoutAll(actorID string) error {
	return s.refreshTokenRepo.DeleteByActor(actorID)
}

func (s *AuthService) issueTokenPair(actorID, username string, role models.Role) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateAccessToken(actorID, username, role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	refreshToken, err := auth.GenerateRefreshToken(actorID, username, role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	record := &models.RefreshToken{
		ActorID:   actorID,
		Role:      role,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(time.Duration(cfg.JWT.RefreshTTLDays) * 24 * time.Hour),
	}
	if err := s.refreshTokenRepo.Create(record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ActorID:      actorID,
		Role:         string(role),
	}, nil
}
