package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/collegeops/attendance-service/models"
	"github.com/collegeops/attendance-service/repositories"
	"github.com/collegeops/attendance-service/scope"
)

const reportSheet = "Attendance"

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

// AttendanceReport renders one date as a workbook: a header row, then
// one row per student the caller may see. Students without a record for
// the date show an empty status.
func (s *exportService) AttendanceReport(ctx context.Context, caller *models.User, date models.Date) (*excelize.File, error) {
	students, err := s.repo.Students().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	records, err := s.repo.Attendance().List(ctx, &date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	sc := scope.ForUser(caller)
	visible := sc.Students(students)
	byStudent := make(map[string]models.AttendanceRecord)
	for _, rec := range sc.Attendance(records, students) {
		byStudent[rec.StudentID] = rec
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("failed to set up report sheet: %w", err)
	}

	header := []interface{}{"Roll Number", "Name", "Department", "Year", "Date", "Status", "Remarks"}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	for i, st := range visible {
		status, remarks := "", ""
		if rec, ok := byStudent[st.ID]; ok {
			status = string(rec.Status)
			if rec.Remarks != nil {
				remarks = *rec.Remarks
			}
		}
		row := []interface{}{st.RollNumber, st.Name, st.Department, st.Year, date.String(), status, remarks}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address report row: %w", err)
		}
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write report row: %w", err)
		}
	}

	s.logger.Info("attendance report built", "date", date.String(), "rows", len(visible))
	return f, nil
}
