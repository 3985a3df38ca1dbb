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

type attendanceService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
}

func NewAttendanceService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, pub events.Publisher) AttendanceService {
	return &attendanceService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: pub,
	}
}

func (s *attendanceService) Mark(ctx context.Context, caller *models.User, req MarkAttendanceRequest) (*models.AttendanceRecord, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	markedBy := ""
	if caller != nil {
		markedBy = caller.ID
	}

	record, err := s.repo.Attendance().Upsert(ctx, repositories.UpsertAttendance{
		StudentID: req.StudentID,
		Date:      date,
		Status:    models.AttendanceStatus(req.Status),
		MarkedBy:  markedBy,
		Remarks:   req.Remarks,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark attendance: %w", err)
	}

	publishChange(ctx, s.publisher, s.logger, "attendance_records", events.ActionMarked, record.ID)
	return record, nil
}

func (s *attendanceService) List(ctx context.Context, caller *models.User, date *models.Date) ([]models.AttendanceRecord, error) {
	records, err := s.repo.Attendance().List(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	students, err := s.repo.Students().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return scope.ForUser(caller).Attendance(records, students), nil
}
