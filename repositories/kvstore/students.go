package kvstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/collegeops/attendance-service/models"
	"github.com/collegeops/attendance-service/repositories"
)

type studentRepository struct {
	r *Repository
}

func (s *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if err := s.r.ensure(ctx, KeyStudents); err != nil {
		return nil, err
	}
	out := make([]models.Student, len(s.r.state.students))
	copy(out, s.r.state.students)
	return out, nil
}

func (s *studentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if err := s.r.ensure(ctx, KeyStudents); err != nil {
		return nil, err
	}
	for _, st := range s.r.state.students {
		if st.ID == id {
			student := st
			return &student, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *studentRepository) Create(ctx context.Context, in repositories.NewStudent) (*models.Student, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if err := s.r.ensure(ctx, KeyStudents); err != nil {
		return nil, err
	}

	student := models.Student{
		ID:         uuid.NewString(),
		RollNumber: in.RollNumber,
		Name:       in.Name,
		Department: in.Department,
		Year:       in.Year,
		AdvisorID:  in.AdvisorID,
		SectionID:  in.SectionID,
	}
	s.r.state.students = append(s.r.state.students, student)

	if err := s.r.persist(ctx, KeyStudents); err != nil {
		return nil, err
	}
	s.r.logger.Info("student created", "id", student.ID, "roll_number", student.RollNumber)
	return &student, nil
}

func (s *studentRepository) Update(ctx context.Context, id string, in repositories.StudentUpdate) (*models.Student, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if err := s.r.ensure(ctx, KeyStudents); err != nil {
		return nil, err
	}

	for i := range s.r.state.students {
		if s.r.state.students[i].ID != id {
			continue
		}
		st := &s.r.state.students[i]
		if in.RollNumber != nil {
			st.RollNumber = *in.RollNumber
		}
		if in.Name != nil {
			st.Name = *in.Name
		}
		if in.Department != nil {
			st.Department = *in.Department
		}
		if in.Year != nil {
			st.Year = *in.Year
		}
		if in.AdvisorID != nil {
			st.AdvisorID = in.AdvisorID
		}
		if in.SectionID != nil {
			st.SectionID = in.SectionID
		}

		if err := s.r.persist(ctx, KeyStudents); err != nil {
			return nil, err
		}
		student := *st
		return &student, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *studentRepository) Delete(ctx context.Context, id string) error {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if err := s.r.ensure(ctx, KeyStudents, KeyAttendance); err != nil {
		return err
	}

	idx := -1
	for i, st := range s.r.state.students {
		if st.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return repositories.ErrNotFound
	}
	s.r.state.students = append(s.r.state.students[:idx], s.r.state.students[idx+1:]...)

	// Cascade: drop every attendance record belonging to the student.
	kept := s.r.state.attendance[:0]
	for _, rec := range s.r.state.attendance {
		if rec.StudentID != id {
			kept = append(kept, rec)
		}
	}
	s.r.state.attendance = kept

	if err := s.r.persist(ctx, KeyStudents, KeyAttendance); err != nil {
		return err
	}
	s.r.logger.Info("student deleted", "id", id)
	return nil
}
