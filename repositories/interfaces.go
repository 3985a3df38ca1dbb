package repositories

import (
	"context"

	"github.com/collegeops/attendance-service/models"
)

// ===== CREATE / UPDATE INPUTS =====

// Update inputs use pointer fields: nil means "leave unchanged", so a
// partial merge never clobbers fields the caller did not send.

type NewStudent struct {
	RollNumber string  `json:"roll_number"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Year       int     `json:"year"`
	AdvisorID  *string `json:"advisor_id"`
	SectionID  *string `json:"section_id"`
}

type StudentUpdate struct {
	RollNumber *string `json:"roll_number"`
	Name       *string `json:"name"`
	Department *string `json:"department"`
	Year       *int    `json:"year"`
	AdvisorID  *string `json:"advisor_id"`
	SectionID  *string `json:"section_id"`
}

type NewSection struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Year       int    `json:"year"`
	AdvisorID  string `json:"advisor_id"`
}

type SectionUpdate struct {
	Name      *string `json:"name"`
	Year      *int    `json:"year"`
	AdvisorID *string `json:"advisor_id"`
}

type NewAdvisor struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
}

type AdvisorUpdate struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Password *string `json:"password"`
}

type UpsertAttendance struct {
	StudentID string                  `json:"student_id"`
	Date      models.Date             `json:"date"`
	Status    models.AttendanceStatus `json:"status"`
	MarkedBy  string                  `json:"marked_by"`
	Remarks   *string                 `json:"remarks"`
}

// ===== COLLECTION REPOSITORIES =====

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// ListAdvisors returns users with the advisor role, optionally
	// restricted to one department.
	ListAdvisors(ctx context.Context, department *string) ([]models.User, error)
	CreateAdvisor(ctx context.Context, in NewAdvisor) (*models.User, error)
	UpdateAdvisor(ctx context.Context, id string, in AdvisorUpdate) (*models.User, error)

	// DeleteAdvisor removes the advisor, deletes the sections it owns
	// and clears AdvisorID on students that referenced it.
	DeleteAdvisor(ctx context.Context, id string) error

	// AdvisorName tolerates dangling references left by cascading
	// deletes and falls back to "Unknown".
	AdvisorName(ctx context.Context, id string) string
}

type StudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, in NewStudent) (*models.Student, error)
	Update(ctx context.Context, id string, in StudentUpdate) (*models.Student, error)

	// Delete removes the student along with all of its attendance
	// records.
	Delete(ctx context.Context, id string) error
}

type SectionRepository interface {
	List(ctx context.Context) ([]models.Section, error)
	GetByID(ctx context.Context, id string) (*models.Section, error)
	Create(ctx context.Context, in NewSection) (*models.Section, error)
	Update(ctx context.Context, id string, in SectionUpdate) (*models.Section, error)

	// Delete removes the section and clears SectionID on students that
	// referenced it; the students themselves survive.
	Delete(ctx context.Context, id string) error
}

type AttendanceRepository interface {
	// List returns all records, or only those for the given date.
	List(ctx context.Context, date *models.Date) ([]models.AttendanceRecord, error)

	// Upsert locates an existing record by (StudentID, Date) with a
	// linear scan; if found it is replaced in place keeping its id,
	// otherwise a new record is appended. O(n) per call, acceptable at
	// the expected scale of a few thousand records.
	Upsert(ctx context.Context, in UpsertAttendance) (*models.AttendanceRecord, error)
}
