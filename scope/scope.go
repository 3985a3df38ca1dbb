// Package scope implements the visibility rules applied to every read.
// A Scope is a closed variant over the caller's role: principal, HOD,
// advisor, or none. The filters are advisory, not a security boundary;
// they decide what a dashboard shows, nothing more.
package scope

import (
	"github.com/collegeops/attendance-service/models"
)

// Scope filters entity collections down to what one caller may see.
// The interface is sealed; the four implementations in this package are
// the only roles the system knows.
type Scope interface {
	Students(in []models.Student) []models.Student
	Sections(in []models.Section) []models.Section
	Advisors(in []models.User) []models.User

	// Attendance joins through the visible student set: a record is
	// visible exactly when its student is. The same rule applies for
	// every role, so scoping attendance and scoping students can never
	// disagree.
	Attendance(records []models.AttendanceRecord, students []models.Student) []models.AttendanceRecord

	sealed()
}

// ForUser derives the caller's scope from its identity. An unknown role,
// or an HOD or advisor without the fields its role requires, collapses
// to the empty scope.
func ForUser(u *models.User) Scope {
	if u == nil {
		return None{}
	}
	switch u.Role {
	case models.RolePrincipal:
		return Principal{}
	case models.RoleHOD:
		if u.Department == nil || *u.Department == "" {
			return None{}
		}
		return HOD{Department: *u.Department}
	case models.RoleAdvisor:
		if u.ID == "" {
			return None{}
		}
		return Advisor{ID: u.ID}
	}
	return None{}
}

// visibleAttendance is the shared join for every non-trivial scope.
func visibleAttendance(records []models.AttendanceRecord, students []models.Student) []models.AttendanceRecord {
	visible := make(map[string]bool, len(students))
	for _, s := range students {
		visible[s.ID] = true
	}
	var out []models.AttendanceRecord
	for _, rec := range records {
		if visible[rec.StudentID] {
			out = append(out, rec)
		}
	}
	return out
}

// ===== PRINCIPAL =====

// Principal sees everything.
type Principal struct{}

func (Principal) Students(in []models.Student) []models.Student { return in }
func (Principal) Sections(in []models.Section) []models.Section { return in }

func (Principal) Advisors(in []models.User) []models.User {
	var out []models.User
	for _, u := range in {
		if u.Role == models.RoleAdvisor {
			out = append(out, u)
		}
	}
	return out
}

func (Principal) Attendance(records []models.AttendanceRecord, _ []models.Student) []models.AttendanceRecord {
	return records
}

func (Principal) sealed() {}

// ===== HOD =====

// HOD sees entities belonging to its department.
type HOD struct {
	Department string
}

func (h HOD) Students(in []models.Student) []models.Student {
	var out []models.Student
	for _, s := range in {
		if s.Department == h.Department {
			out = append(out, s)
		}
	}
	return out
}

func (h HOD) Sections(in []models.Section) []models.Section {
	var out []models.Section
	for _, s := range in {
		if s.Department == h.Department {
			out = append(out, s)
		}
	}
	return out
}

func (h HOD) Advisors(in []models.User) []models.User {
	var out []models.User
	for _, u := range in {
		if u.Role == models.RoleAdvisor && u.DepartmentName() == h.Department {
			out = append(out, u)
		}
	}
	return out
}

func (h HOD) Attendance(records []models.AttendanceRecord, students []models.Student) []models.AttendanceRecord {
	return visibleAttendance(records, h.Students(students))
}

func (HOD) sealed() {}

// ===== ADVISOR =====

// Advisor sees its own students and what hangs off them.
type Advisor struct {
	ID string
}

func (a Advisor) Students(in []models.Student) []models.Student {
	var out []models.Student
	for _, s := range in {
		if s.AdvisedBy(a.ID) {
			out = append(out, s)
		}
	}
	return out
}

func (a Advisor) Sections(in []models.Section) []models.Section {
	var out []models.Section
	for _, s := range in {
		if s.AdvisorID == a.ID {
			out = append(out, s)
		}
	}
	return out
}

func (a Advisor) Advisors(in []models.User) []models.User {
	var out []models.User
	for _, u := range in {
		if u.ID == a.ID && u.Role == models.RoleAdvisor {
			out = append(out, u)
		}
	}
	return out
}

func (a Advisor) Attendance(records []models.AttendanceRecord, students []models.Student) []models.AttendanceRecord {
	return visibleAttendance(records, a.Students(students))
}

func (Advisor) sealed() {}

// ===== NONE =====

// None is the empty scope: unknown role or an identity missing the
// fields its role requires.
type None struct{}

func (None) Students([]models.Student) []models.Student { return nil }
func (None) Sections([]models.Section) []models.Section { return nil }
func (None) Advisors([]models.User) []models.User       { return nil }

func (None) Attendance([]models.AttendanceRecord, []models.Student) []models.AttendanceRecord {
	return nil
}

func (None) sealed() {}
