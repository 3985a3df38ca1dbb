package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/collegeops/attendance-service/models"
	"github.com/collegeops/attendance-service/repositories"
	"github.com/collegeops/attendance-service/store"
	"github.com/collegeops/attendance-service/validator"
)

// SessionKey is the single persisted session slot: one logged-in user
// per client.
const SessionKey = "attendance_system_user"

type identityService struct {
	repo      repositories.Repository
	sessions  store.Store
	logger    *slog.Logger
	validator *validator.Validator
}

func NewIdentityService(repo repositories.Repository, sessions store.Store, logger *slog.Logger, v *validator.Validator) IdentityService {
	return &identityService{
		repo:      repo,
		sessions:  sessions,
		logger:    logger,
		validator: v,
	}
}

func (s *identityService) Authenticate(ctx context.Context, req LoginRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		// Malformed credentials can never match; report the same
		// generic failure as a wrong password.
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.Users().GetByEmail(ctx, req.Email)
	if err != nil {
		if err == repositories.ErrNotFound {
			s.logger.Info("login failed", "email", req.Email)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.Password != req.Password {
		s.logger.Info("login failed", "email", req.Email)
		return nil, ErrInvalidCredentials
	}

	session := user.WithoutPassword()
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.sessions.Set(ctx, SessionKey, data); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.Info("login succeeded", "user_id", session.ID, "role", session.Role)
	return &session, nil
}

func (s *identityService) CurrentSession(ctx context.Context) (*models.User, error) {
	data, err := s.sessions.Get(ctx, SessionKey)
	if err != nil {
		if err == store.ErrKeyNotFound {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &user, nil
}

func (s *identityService) ClearSession(ctx context.Context) error {
	if err := s.sessions.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
