package models

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}

// AttendanceRecord is one student's attendance for one calendar day.
// At most one record exists per (StudentID, Date) pair; marking the same
// pair again replaces the record in place, keeping its ID.
type AttendanceRecord struct {
	ID        string           `json:"id"`
	StudentID string           `json:"student_id"`
	Date      Date             `json:"date"`
	Status    AttendanceStatus `json:"status"`
	MarkedBy  string           `json:"marked_by"`
	Remarks   *string          `json:"remarks,omitempty"`
}
