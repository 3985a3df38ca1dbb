package kvstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/collegeops/attendance-service/models"
	"github.com/collegeops/attendance-service/repositories"
)

type attendanceRepository struct {
	r *Repository
}

func (a *attendanceRepository) List(ctx context.Context, date *models.Date) ([]models.AttendanceRecord, error) {
	a.r.mu.Lock()
	defer a.r.mu.Unlock()

	if err := a.r.ensure(ctx, KeyAttendance); err != nil {
		return nil, err
	}

	if date == nil {
		out := make([]models.AttendanceRecord, len(a.r.state.attendance))
		copy(out, a.r.state.attendance)
		return out, nil
	}

	var out []models.AttendanceRecord
	for _, rec := range a.r.state.attendance {
		if rec.Date == *date {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Upsert enforces the one-record-per-(student, date) invariant. No
// secondary index is kept, so the lookup is a linear scan over the
// current records.
func (a *attendanceRepository) Upsert(ctx context.Context, in repositories.UpsertAttendance) (*models.AttendanceRecord, error) {
	a.r.mu.Lock()
	defer a.r.mu.Unlock()

	if err := a.r.ensure(ctx, KeyAttendance); err != nil {
		return nil, err
	}

	record := models.AttendanceRecord{
		StudentID: in.StudentID,
		Date:      in.Date,
		Status:    in.Status,
		MarkedBy:  in.MarkedBy,
		Remarks:   in.Remarks,
	}

	replaced := false
	for i, rec := range a.r.state.attendance {
		if rec.StudentID == in.StudentID && rec.Date == in.Date {
			record.ID = rec.ID
			a.r.state.attendance[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		record.ID = uuid.NewString()
		a.r.state.attendance = append(a.r.state.attendance, record)
	}

	if err := a.r.persist(ctx, KeyAttendance); err != nil {
		return nil, err
	}
	a.r.logger.Info("attendance marked",
		"student_id", record.StudentID,
		"date", record.Date.String(),
		"status", record.Status,
		"replaced", replaced)
	return &record, nil
}
