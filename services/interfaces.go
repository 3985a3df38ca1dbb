package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/collegeops/attendance-service/models"
	"github.com/collegeops/attendance-service/validator"
)

// ===== REQUEST DTOs =====

// Use the validator's request types so tags and services stay in sync.
type LoginRequest = validator.LoginRequest
type CreateStudentRequest = validator.CreateStudentRequest
type UpdateStudentRequest = validator.UpdateStudentRequest
type CreateSectionRequest = validator.CreateSectionRequest
type UpdateSectionRequest = validator.UpdateSectionRequest
type CreateAdvisorRequest = validator.CreateAdvisorRequest
type UpdateAdvisorRequest = validator.UpdateAdvisorRequest
type MarkAttendanceRequest = validator.MarkAttendanceRequest

// ===== AGGREGATION DTOs =====

// AttendanceStats counts one student's records by status across all
// dates.
type AttendanceStats struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Total   int `json:"total"`
}

// Percentage renders the present share to one decimal place; a student
// with no records reports "0", never NaN.
func (s AttendanceStats) Percentage() string {
	if s.Total == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", float64(s.Present)/float64(s.Total)*100)
}

// DaySummary is the present/absent/late breakdown of one date for the
// caller's visible student set.
type DaySummary struct {
	Date     models.Date `json:"date"`
	Students int         `json:"students"`
	Present  int         `json:"present"`
	Absent   int         `json:"absent"`
	Late     int         `json:"late"`
}

type DepartmentRollup struct {
	Name       string `json:"name"`
	Total      int    `json:"total"`
	Present    int    `json:"present"`
	Percentage string `json:"percentage"`
}

type PrincipalOverview struct {
	TotalStudents int                `json:"total_students"`
	Day           DaySummary         `json:"day"`
	Departments   []DepartmentRollup `json:"departments"`
}

type StudentStatsRow struct {
	Student     models.Student  `json:"student"`
	Stats       AttendanceStats `json:"stats"`
	Percentage  string          `json:"percentage"`
	AdvisorName string          `json:"advisor_name"`
}

type DepartmentOverview struct {
	Day      DaySummary        `json:"day"`
	Students []StudentStatsRow `json:"students"`
}

type AdvisorStudentRow struct {
	Student    models.Student           `json:"student"`
	Stats      AttendanceStats          `json:"stats"`
	Percentage string                   `json:"percentage"`
	Today      *models.AttendanceRecord `json:"today,omitempty"`
}

type AdvisorOverview struct {
	Day      DaySummary          `json:"day"`
	Students []AdvisorStudentRow `json:"students"`
}

// ===== SERVICE INTERFACES =====

type IdentityService interface {
	// Authenticate checks credentials, strips the password and
	// establishes the returned user as the current session.
	Authenticate(ctx context.Context, req LoginRequest) (*models.User, error)
	CurrentSession(ctx context.Context) (*models.User, error)
	ClearSession(ctx context.Context) error
}

type StudentService interface {
	List(ctx context.Context, caller *models.User) ([]models.Student, error)
	Create(ctx context.Context, caller *models.User, req CreateStudentRequest) (*models.Student, error)
	Update(ctx context.Context, caller *models.User, id string, req UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, caller *models.User, id string) error
}

type SectionService interface {
	List(ctx context.Context, caller *models.User) ([]models.Section, error)
	Create(ctx context.Context, caller *models.User, req CreateSectionRequest) (*models.Section, error)
	Update(ctx context.Context, caller *models.User, id string, req UpdateSectionRequest) (*models.Section, error)
	Delete(ctx context.Context, caller *models.User, id string) error
}

type AdvisorService interface {
	// List returns advisors visible to the caller, passwords stripped.
	List(ctx context.Context, caller *models.User) ([]models.User, error)
	Create(ctx context.Context, caller *models.User, req CreateAdvisorRequest) (*models.User, error)
	Update(ctx context.Context, caller *models.User, id string, req UpdateAdvisorRequest) (*models.User, error)
	Delete(ctx context.Context, caller *models.User, id string) error
	AdvisorName(ctx context.Context, id string) string
}

type AttendanceService interface {
	// Mark upserts the (student, date) record; the caller becomes
	// MarkedBy.
	Mark(ctx context.Context, caller *models.User, req MarkAttendanceRequest) (*models.AttendanceRecord, error)

	// List returns records visible to the caller, optionally for one
	// date only.
	List(ctx context.Context, caller *models.User, date *models.Date) ([]models.AttendanceRecord, error)
}

type DashboardService interface {
	StatsFor(ctx context.Context, studentIDs []string) (map[string]AttendanceStats, error)
	DaySummary(ctx context.Context, caller *models.User, date models.Date) (*DaySummary, error)
	PrincipalOverview(ctx context.Context, caller *models.User, date models.Date) (*PrincipalOverview, error)
	DepartmentOverview(ctx context.Context, caller *models.User, date models.Date) (*DepartmentOverview, error)
	AdvisorOverview(ctx context.Context, caller *models.User, date models.Date) (*AdvisorOverview, error)
}

type ExportService interface {
	// AttendanceReport builds an xlsx workbook with one row per
	// visible student for the given date.
	AttendanceReport(ctx context.Context, caller *models.User, date models.Date) (*excelize.File, error)
}
