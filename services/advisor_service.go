package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/collegeops/attendance-service/events"
	"github.com/collegeops/attendance-service/models"
	"github.com/collegeops/attendance-service/repositories"
	"github.com/collegeops/attendance-service/scope"
	"github.com/collegeops/attendance-service/validator"
)

type advisorService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
}

func NewAdvisorService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, pub events.Publisher) AdvisorService {
	return &advisorService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: pub,
	}
}

func (s *advisorService) List(ctx context.Context, caller *models.User) ([]models.User, error) {
	advisors, err := s.repo.Users().ListAdvisors(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list advisors: %w", err)
	}

	visible := scope.ForUser(caller).Advisors(advisors)
	out := make([]models.User, 0, len(visible))
	for _, a := range visible {
		out = append(out, a.WithoutPassword())
	}
	return out, nil
}

func (s *advisorService) Create(ctx context.Context, caller *models.User, req CreateAdvisorRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	advisor, err := s.repo.Users().CreateAdvisor(ctx, repositories.NewAdvisor{
		Email:      req.Email,
		Password:   req.Password,
		FullName:   req.FullName,
		Department: callerDepartment(caller, req.Department),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create advisor: %w", err)
	}

	publishChange(ctx, s.publisher, s.logger, "users", events.ActionCreated, advisor.ID)
	created := advisor.WithoutPassword()
	return &created, nil
}

func (s *advisorService) Update(ctx context.Context, caller *models.User, id string, req UpdateAdvisorRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	advisor, err := s.repo.Users().UpdateAdvisor(ctx, id, repositories.AdvisorUpdate{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update advisor: %w", err)
	}

	publishChange(ctx, s.publisher, s.logger, "users", events.ActionUpdated, advisor.ID)
	updated := advisor.WithoutPassword()
	return &updated, nil
}

func (s *advisorService) Delete(ctx context.Context, caller *models.User, id string) error {
	if err := s.repo.Users().DeleteAdvisor(ctx, id); err != nil {
		if err == repositories.ErrNotFound {
			return err
		}
		return fmt.Errorf("failed to delete advisor: %w", err)
	}

	publishChange(ctx, s.publisher, s.logger, "users", events.ActionDeleted, id)
	return nil
}

func (s *advisorService) AdvisorName(ctx context.Context, id string) string {
	return s.repo.Users().AdvisorName(ctx, id)
}
