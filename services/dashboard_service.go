package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/collegeops/attendance-service/models"
	"github.com/collegeops/attendance-service/repositories"
	"github.com/collegeops/attendance-service/scope"
)

// dashboardService derives every number the three dashboard views show.
// Rollups are computed from the attendance collection on demand; nothing
// aggregated is ever stored.
type dashboardService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewDashboardService(repo repositories.Repository, logger *slog.Logger) DashboardService {
	return &dashboardService{
		repo:   repo,
		logger: logger,
	}
}

func (s *dashboardService) StatsFor(ctx context.Context, studentIDs []string) (map[string]AttendanceStats, error) {
	records, err := s.repo.Attendance().List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	stats := make(map[string]AttendanceStats, len(studentIDs))
	for _, id := range studentIDs {
		stats[id] = AttendanceStats{}
	}
	for _, rec := range records {
		st, ok := stats[rec.StudentID]
		if !ok {
			continue
		}
		switch rec.Status {
		case models.StatusPresent:
			st.Present++
		case models.StatusAbsent:
			st.Absent++
		case models.StatusLate:
			st.Late++
		}
		st.Total++
		stats[rec.StudentID] = st
	}
	return stats, nil
}

// visibleDay returns the caller's student set and that set's records for
// one date.
func (s *dashboardService) visibleDay(ctx context.Context, caller *models.User, date models.Date) ([]models.Student, []models.AttendanceRecord, error) {
	students, err := s.repo.Students().List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list students: %w", err)
	}
	records, err := s.repo.Attendance().List(ctx, &date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	sc := scope.ForUser(caller)
	return sc.Students(students), sc.Attendance(records, students), nil
}

func summarize(date models.Date, students []models.Student, records []models.AttendanceRecord) DaySummary {
	summary := DaySummary{Date: date, Students: len(students)}
	for _, rec := range records {
		switch rec.Status {
		case models.StatusPresent:
			summary.Present++
		case models.StatusAbsent:
			summary.Absent++
		case models.StatusLate:
			summary.Late++
		}
	}
	return summary
}

func (s *dashboardService) DaySummary(ctx context.Context, caller *models.User, date models.Date) (*DaySummary, error) {
	students, records, err := s.visibleDay(ctx, caller, date)
	if err != nil {
		return nil, err
	}
	summary := summarize(date, students, records)
	return &summary, nil
}

func (s *dashboardService) PrincipalOverview(ctx context.Context, caller *models.User, date models.Date) (*PrincipalOverview, error) {
	students, records, err := s.visibleDay(ctx, caller, date)
	if err != nil {
		return nil, err
	}

	presentToday := make(map[string]bool)
	for _, rec := range records {
		if rec.Status == models.StatusPresent {
			presentToday[rec.StudentID] = true
		}
	}

	// Departments in first-seen order, each rolled up over its own
	// student set.
	var names []string
	byDept := make(map[string][]models.Student)
	for _, st := range students {
		if _, seen := byDept[st.Department]; !seen {
			names = append(names, st.Department)
		}
		byDept[st.Department] = append(byDept[st.Department], st)
	}

	rollups := make([]DepartmentRollup, 0, len(names))
	for _, name := range names {
		deptStudents := byDept[name]
		present := 0
		for _, st := range deptStudents {
			if presentToday[st.ID] {
				present++
			}
		}
		percentage := "0"
		if len(deptStudents) > 0 {
			percentage = fmt.Sprintf("%.1f", float64(present)/float64(len(deptStudents))*100)
		}
		rollups = append(rollups, DepartmentRollup{
			Name:       name,
			Total:      len(deptStudents),
			Present:    present,
			Percentage: percentage,
		})
	}

	return &PrincipalOverview{
		TotalStudents: len(students),
		Day:           summarize(date, students, records),
		Departments:   rollups,
	}, nil
}

func (s *dashboardService) DepartmentOverview(ctx context.Context, caller *models.User, date models.Date) (*DepartmentOverview, error) {
	students, records, err := s.visibleDay(ctx, caller, date)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(students))
	for i, st := range students {
		ids[i] = st.ID
	}
	stats, err := s.StatsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]StudentStatsRow, 0, len(students))
	for _, st := range students {
		advisorName := "Unknown"
		if st.AdvisorID != nil {
			advisorName = s.repo.Users().AdvisorName(ctx, *st.AdvisorID)
		}
		rows = append(rows, StudentStatsRow{
			Student:     st,
			Stats:       stats[st.ID],
			Percentage:  stats[st.ID].Percentage(),
			AdvisorName: advisorName,
		})
	}

	return &DepartmentOverview{
		Day:      summarize(date, students, records),
		Students: rows,
	}, nil
}

func (s *dashboardService) AdvisorOverview(ctx context.Context, caller *models.User, date models.Date) (*AdvisorOverview, error) {
	students, records, err := s.visibleDay(ctx, caller, date)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(students))
	for i, st := range students {
		ids[i] = st.ID
	}
	stats, err := s.StatsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[string]models.AttendanceRecord, len(records))
	for _, rec := range records {
		byStudent[rec.StudentID] = rec
	}

	rows := make([]AdvisorStudentRow, 0, len(students))
	for _, st := range students {
		row := AdvisorStudentRow{
			Student:    st,
			Stats:      stats[st.ID],
			Percentage: stats[st.ID].Percentage(),
		}
		if rec, ok := byStudent[st.ID]; ok {
			record := rec
			row.Today = &record
		}
		rows = append(rows, row)
	}

	return &AdvisorOverview{
		Day:      summarize(date, students, records),
		Students: rows,
	}, nil
}
