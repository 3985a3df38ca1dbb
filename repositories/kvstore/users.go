package kvstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/collegeops/attendance-service/models"
	"github.com/collegeops/attendance-service/repositories"
)

type userRepository struct {
	r *Repository
}

func (u *userRepository) List(ctx context.Context) ([]models.User, error) {
	u.r.mu.Lock()
	defer u.r.mu.Unlock()

	if err := u.r.ensure(ctx, KeyUsers); err != nil {
		return nil, err
	}
	out := make([]models.User, len(u.r.state.users))
	copy(out, u.r.state.users)
	return out, nil
}

func (u *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	u.r.mu.Lock()
	defer u.r.mu.Unlock()

	if err := u.r.ensure(ctx, KeyUsers); err != nil {
		return nil, err
	}
	for _, usr := range u.r.state.users {
		if usr.ID == id {
			user := usr
			return &user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (u *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u.r.mu.Lock()
	defer u.r.mu.Unlock()

	if err := u.r.ensure(ctx, KeyUsers); err != nil {
		return nil, err
	}
	for _, usr := range u.r.state.users {
		if usr.Email == email {
			user := usr
			return &user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (u *userRepository) ListAdvisors(ctx context.Context, department *string) ([]models.User, error) {
	u.r.mu.Lock()
	defer u.r.mu.Unlock()

	if err := u.r.ensure(ctx, KeyUsers); err != nil {
		return nil, err
	}
	var out []models.User
	for _, usr := range u.r.state.users {
		if usr.Role != models.RoleAdvisor {
			continue
		}
		if department != nil && usr.DepartmentName() != *department {
			continue
		}
		out = append(out, usr)
	}
	return out, nil
}

func (u *userRepository) CreateAdvisor(ctx context.Context, in repositories.NewAdvisor) (*models.User, error) {
	u.r.mu.Lock()
	defer u.r.mu.Unlock()

	if err := u.r.ensure(ctx, KeyUsers); err != nil {
		return nil, err
	}

	department := in.Department
	advisor := models.User{
		ID:         uuid.NewString(),
		Email:      in.Email,
		Password:   in.Password,
		FullName:   in.FullName,
		Role:       models.RoleAdvisor,
		Department: &department,
	}
	u.r.state.users = append(u.r.state.users, advisor)

	if err := u.r.persist(ctx, KeyUsers); err != nil {
		return nil, err
	}
	u.r.logger.Info("advisor created", "id", advisor.ID, "department", department)
	return &advisor, nil
}

func (u *userRepository) UpdateAdvisor(ctx context.Context, id string, in repositories.AdvisorUpdate) (*models.User, error) {
	u.r.mu.Lock()
	defer u.r.mu.Unlock()

	if err := u.r.ensure(ctx, KeyUsers); err != nil {
		return nil, err
	}

	for i := range u.r.state.users {
		usr := &u.r.state.users[i]
		if usr.ID != id || usr.Role != models.RoleAdvisor {
			continue
		}
		if in.Email != nil {
			usr.Email = *in.Email
		}
		if in.FullName != nil {
			usr.FullName = *in.FullName
		}
		if in.Password != nil {
			usr.Password = *in.Password
		}

		if err := u.r.persist(ctx, KeyUsers); err != nil {
			return nil, err
		}
		advisor := *usr
		return &advisor, nil
	}
	return nil, repositories.ErrNotFound
}

func (u *userRepository) DeleteAdvisor(ctx context.Context, id string) error {
	u.r.mu.Lock()
	defer u.r.mu.Unlock()

	if err := u.r.ensure(ctx, KeyUsers, KeySections, KeyStudents); err != nil {
		return err
	}

	idx := -1
	for i, usr := range u.r.state.users {
		if usr.ID == id && usr.Role == models.RoleAdvisor {
			idx = i
			break
		}
	}
	if idx < 0 {
		return repositories.ErrNotFound
	}
	u.r.state.users = append(u.r.state.users[:idx], u.r.state.users[idx+1:]...)

	// Cascade: sections owned by the advisor go away entirely.
	keptSections := u.r.state.sections[:0]
	sectionsChanged := false
	for _, sec := range u.r.state.sections {
		if sec.AdvisorID == id {
			sectionsChanged = true
			continue
		}
		keptSections = append(keptSections, sec)
	}
	u.r.state.sections = keptSections

	// Cascade: students survive but become unassigned.
	studentsChanged := false
	for i := range u.r.state.students {
		if u.r.state.students[i].AdvisedBy(id) {
			u.r.state.students[i].AdvisorID = nil
			studentsChanged = true
		}
	}

	keys := []string{KeyUsers}
	if sectionsChanged {
		keys = append(keys, KeySections)
	}
	if studentsChanged {
		keys = append(keys, KeyStudents)
	}
	if err := u.r.persist(ctx, keys...); err != nil {
		return err
	}
	u.r.logger.Info("advisor deleted", "id", id)
	return nil
}

// AdvisorName resolves an advisor id to a display name. Dangling ids are
// expected after cascading deletes and map to "Unknown".
func (u *userRepository) AdvisorName(ctx context.Context, id string) string {
	u.r.mu.Lock()
	defer u.r.mu.Unlock()

	if err := u.r.ensure(ctx, KeyUsers); err != nil {
		return "Unknown"
	}
	for _, usr := range u.r.state.users {
		if usr.ID == id {
			return usr.FullName
		}
	}
	return "Unknown"
}
