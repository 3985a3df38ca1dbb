package kvstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/collegeops/attendance-service/models"
	"github.com/collegeops/attendance-service/repositories"
)

type sectionRepository struct {
	r *Repository
}

func (s *sectionRepository) List(ctx context.Context) ([]models.Section, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if err := s.r.ensure(ctx, KeySections); err != nil {
		return nil, err
	}
	out := make([]models.Section, len(s.r.state.sections))
	copy(out, s.r.state.sections)
	return out, nil
}

func (s *sectionRepository) GetByID(ctx context.Context, id string) (*models.Section, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if err := s.r.ensure(ctx, KeySections); err != nil {
		return nil, err
	}
	for _, sec := range s.r.state.sections {
		if sec.ID == id {
			section := sec
			return &section, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *sectionRepository) Create(ctx context.Context, in repositories.NewSection) (*models.Section, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if err := s.r.ensure(ctx, KeySections); err != nil {
		return nil, err
	}

	section := models.Section{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Department: in.Department,
		Year:       in.Year,
		AdvisorID:  in.AdvisorID,
	}
	s.r.state.sections = append(s.r.state.sections, section)

	if err := s.r.persist(ctx, KeySections); err != nil {
		return nil, err
	}
	s.r.logger.Info("section created", "id", section.ID, "name", section.Name)
	return &section, nil
}

func (s *sectionRepository) Update(ctx context.Context, id string, in repositories.SectionUpdate) (*models.Section, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if err := s.r.ensure(ctx, KeySections); err != nil {
		return nil, err
	}

	for i := range s.r.state.sections {
		if s.r.state.sections[i].ID != id {
			continue
		}
		sec := &s.r.state.sections[i]
		if in.Name != nil {
			sec.Name = *in.Name
		}
		if in.Year != nil {
			sec.Year = *in.Year
		}
		if in.AdvisorID != nil {
			sec.AdvisorID = *in.AdvisorID
		}

		if err := s.r.persist(ctx, KeySections); err != nil {
			return nil, err
		}
		section := *sec
		return &section, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *sectionRepository) Delete(ctx context.Context, id string) error {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if err := s.r.ensure(ctx, KeySections, KeyStudents); err != nil {
		return err
	}

	idx := -1
	for i, sec := range s.r.state.sections {
		if sec.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return repositories.ErrNotFound
	}
	s.r.state.sections = append(s.r.state.sections[:idx], s.r.state.sections[idx+1:]...)

	// Cascade: students keep existing but lose the section assignment.
	changed := false
	for i := range s.r.state.students {
		if s.r.state.students[i].InSection(id) {
			s.r.state.students[i].SectionID = nil
			changed = true
		}
	}

	keys := []string{KeySections}
	if changed {
		keys = append(keys, KeyStudents)
	}
	if err := s.r.persist(ctx, keys...); err != nil {
		return err
	}
	s.r.logger.Info("section deleted", "id", id)
	return nil
}
