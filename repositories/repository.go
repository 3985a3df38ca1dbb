// Package repositories defines the persistence contracts for the four
// entity collections. Implementations persist every collection as a
// whole snapshot after each mutation.
package repositories

import (
	"context"
	"errors"
)

// ErrNotFound is returned by update and delete operations that target a
// nonexistent id. Callers are expected to check for it; it is never a
// panic-worthy condition.
var ErrNotFound = errors.New("entity not found")

// Repository aggregates the per-collection repositories over one shared
// snapshot store.
type Repository interface {
	Users() UserRepository
	Students() StudentRepository
	Sections() SectionRepository
	Attendance() AttendanceRepository

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases the backing store.
	Close() error
}
