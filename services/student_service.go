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

type studentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
}

func NewStudentService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, pub events.Publisher) StudentService {
	return &studentService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: pub,
	}
}

func (s *studentService) List(ctx context.Context, caller *models.User) ([]models.Student, error) {
	students, err := s.repo.Students().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return scope.ForUser(caller).Students(students), nil
}

func (s *studentService) Create(ctx context.Context, caller *models.User, req CreateStudentRequest) (*models.Student, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	// Advisors add students to their own roster; HODs to their own
	// department. Explicit fields in the request win.
	advisorID := req.AdvisorID
	if advisorID == nil && caller != nil && caller.Role == models.RoleAdvisor {
		id := caller.ID
		advisorID = &id
	}

	student, err := s.repo.Students().Create(ctx, repositories.NewStudent{
		RollNumber: req.RollNumber,
		Name:       req.Name,
		Department: callerDepartment(caller, req.Department),
		Year:       req.Year,
		AdvisorID:  advisorID,
		SectionID:  req.SectionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	publishChange(ctx, s.publisher, s.logger, "students", events.ActionCreated, student.ID)
	return student, nil
}

func (s *studentService) Update(ctx context.Context, caller *models.User, id string, req UpdateStudentRequest) (*models.Student, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	student, err := s.repo.Students().Update(ctx, id, repositories.StudentUpdate{
		RollNumber: req.RollNumber,
		Name:       req.Name,
		Year:       req.Year,
		SectionID:  req.SectionID,
	})
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	publishChange(ctx, s.publisher, s.logger, "students", events.ActionUpdated, student.ID)
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, caller *models.User, id string) error {
	if err := s.repo.Students().Delete(ctx, id); err != nil {
		if err == repositories.ErrNotFound {
			return err
		}
		return fmt.Errorf("failed to delete student: %w", err)
	}

	publishChange(ctx, s.publisher, s.logger, "students", events.ActionDeleted, id)
	return nil
}
