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

type sectionService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
}

func NewSectionService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, pub events.Publisher) SectionService {
	return &sectionService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: pub,
	}
}

func (s *sectionService) List(ctx context.Context, caller *models.User) ([]models.Section, error) {
	sections, err := s.repo.Sections().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	return scope.ForUser(caller).Sections(sections), nil
}

func (s *sectionService) Create(ctx context.Context, caller *models.User, req CreateSectionRequest) (*models.Section, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	section, err := s.repo.Sections().Create(ctx, repositories.NewSection{
		Name:       req.Name,
		Department: callerDepartment(caller, req.Department),
		Year:       req.Year,
		AdvisorID:  req.AdvisorID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}

	publishChange(ctx, s.publisher, s.logger, "sections", events.ActionCreated, section.ID)
	return section, nil
}

func (s *sectionService) Update(ctx context.Context, caller *models.User, id string, req UpdateSectionRequest) (*models.Section, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	section, err := s.repo.Sections().Update(ctx, id, repositories.SectionUpdate{
		Name:      req.Name,
		Year:      req.Year,
		AdvisorID: req.AdvisorID,
	})
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update section: %w", err)
	}

	publishChange(ctx, s.publisher, s.logger, "sections", events.ActionUpdated, section.ID)
	return section, nil
}

func (s *sectionService) Delete(ctx context.Context, caller *models.User, id string) error {
	if err := s.repo.Sections().Delete(ctx, id); err != nil {
		if err == repositories.ErrNotFound {
			return err
		}
		return fmt.Errorf("failed to delete section: %w", err)
	}

	publishChange(ctx, s.publisher, s.logger, "sections", events.ActionDeleted, id)
	return nil
}
