// Package kvstore implements the entity repository on top of the
// key-value snapshot store. All four collections live in one
// mutex-guarded state; every mutation rewrites the affected collection
// snapshots before returning.
package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/collegeops/attendance-service/models"
	"github.com/collegeops/attendance-service/repositories"
	"github.com/collegeops/attendance-service/store"
)

// Fixed snapshot keys, one per collection.
const (
	KeyUsers      = "users"
	KeyStudents   = "students"
	KeySections   = "sections"
	KeyAttendance = "attendance_records"
)

type state struct {
	users      []models.User
	students   []models.Student
	sections   []models.Section
	attendance []models.AttendanceRecord
}

type loaded struct {
	users      bool
	students   bool
	sections   bool
	attendance bool
}

// Repository is the snapshot-backed repositories.Repository. A single
// instance is constructed at process start and handed to services; the
// mutex keeps the library correct under accidental concurrent use, but
// the design assumes one active session (last write wins).
type Repository struct {
	store  store.Store
	logger *slog.Logger

	mu     sync.Mutex
	state  state
	loaded loaded
}

type Config struct {
	Store  store.Store
	Logger *slog.Logger
}

func New(cfg Config) *Repository {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		store:  cfg.Store,
		logger: logger,
	}
}

func (r *Repository) Users() repositories.UserRepository {
	return &userRepository{r}
}

func (r *Repository) Students() repositories.StudentRepository {
	return &studentRepository{r}
}

func (r *Repository) Sections() repositories.SectionRepository {
	return &sectionRepository{r}
}

func (r *Repository) Attendance() repositories.AttendanceRepository {
	return &attendanceRepository{r}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func (r *Repository) Close() error {
	return r.store.Close()
}

// ===== SNAPSHOT LOADING =====

// loadCollection fills dest from the snapshot under key, falling back to
// the seed when no snapshot exists yet. The seed is not persisted until
// the first mutation touches the collection, so a fresh store stays
// empty until actually used.
func loadCollection[T any](ctx context.Context, r *Repository, key string, seed func() []T, dest *[]T) error {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if err == store.ErrKeyNotFound {
			*dest = seed()
			r.logger.Info("seeded collection", "key", key, "count", len(*dest))
			return nil
		}
		return fmt.Errorf("failed to load snapshot %q: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode snapshot %q: %w", key, err)
	}
	return nil
}

// ensure lazily loads the named collections. Callers hold r.mu.
func (r *Repository) ensure(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		var err error
		switch key {
		case KeyUsers:
			if !r.loaded.users {
				err = loadCollection(ctx, r, KeyUsers, seedUsers, &r.state.users)
				r.loaded.users = err == nil
			}
		case KeyStudents:
			if !r.loaded.students {
				err = loadCollection(ctx, r, KeyStudents, seedStudents, &r.state.students)
				r.loaded.students = err == nil
			}
		case KeySections:
			if !r.loaded.sections {
				err = loadCollection(ctx, r, KeySections, seedSections, &r.state.sections)
				r.loaded.sections = err == nil
			}
		case KeyAttendance:
			if !r.loaded.attendance {
				err = loadCollection(ctx, r, KeyAttendance, seedAttendance, &r.state.attendance)
				r.loaded.attendance = err == nil
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// persist writes the named collections back to the store. A write
// failure is terminal for the operation; the in-memory state may be
// ahead of the snapshot at that point, which is acceptable for a
// single-session design.
func (r *Repository) persist(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		var (
			data []byte
			err  error
		)
		switch key {
		case KeyUsers:
			data, err = json.Marshal(r.state.users)
		case KeyStudents:
			data, err = json.Marshal(r.state.students)
		case KeySections:
			data, err = json.Marshal(r.state.sections)
		case KeyAttendance:
			data, err = json.Marshal(r.state.attendance)
		}
		if err != nil {
			return fmt.Errorf("failed to encode snapshot %q: %w", key, err)
		}
		if err := r.store.Set(ctx, key, data); err != nil {
			return fmt.Errorf("failed to persist snapshot %q: %w", key, err)
		}
	}
	return nil
}
