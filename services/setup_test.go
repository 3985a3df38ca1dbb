package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/collegeops/attendance-service/events"
	"github.com/collegeops/attendance-service/models"
	"github.com/collegeops/attendance-service/repositories/kvstore"
	"github.com/collegeops/attendance-service/store"
	"github.com/collegeops/attendance-service/validator"
)

// setup builds a manager over a seeded in-memory repository plus a mock
// publisher for event assertions.
func setup(t *testing.T) (ServiceManager, *events.MockPublisher) {
	t.Helper()

	st := store.NewMemoryStore()
	repo := kvstore.New(kvstore.Config{Store: st, Logger: slog.Default()})
	pub := events.NewMockPublisher()
	mgr := NewServiceManager(repo, store.NewMemoryStore(), slog.Default(), validator.New(), pub)
	require.NoError(t, mgr.Initialize(context.Background()))
	return mgr, pub
}

func strp(s string) *string { return &s }

func principal() *models.User {
	return &models.User{ID: "1", Role: models.RolePrincipal}
}

func hodCS() *models.User {
	return &models.User{ID: "2", Role: models.RoleHOD, Department: strp("Computer Science")}
}

func advisorCS1() *models.User {
	return &models.User{ID: "4", Role: models.RoleAdvisor, Department: strp("Computer Science")}
}
