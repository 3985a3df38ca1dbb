package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegeops/attendance-service/models"
)

func TestAuthenticateEstablishesSession(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	user, err := mgr.Identity().Authenticate(ctx, LoginRequest{
		Email:    "advisor.cs1@college.edu",
		Password: "advisor123",
	})
	require.NoError(t, err)
	assert.Equal(t, "4", user.ID)
	assert.Equal(t, models.RoleAdvisor, user.Role)
	assert.Empty(t, user.Password, "authenticate must strip the password")

	session, err := mgr.Identity().CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4", session.ID)
	assert.Empty(t, session.Password)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	_, wrongPassword := mgr.Identity().Authenticate(ctx, LoginRequest{
		Email:    "advisor.cs1@college.edu",
		Password: "nope",
	})
	_, unknownEmail := mgr.Identity().Authenticate(ctx, LoginRequest{
		Email:    "nobody@college.edu",
		Password: "advisor123",
	})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail,
		"unknown email and wrong password must be the same failure")

	// A failed login leaves no session behind.
	_, err := mgr.Identity().CurrentSession(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClearSession(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	_, err := mgr.Identity().Authenticate(ctx, LoginRequest{
		Email:    "principal@college.edu",
		Password: "principal123",
	})
	require.NoError(t, err)

	require.NoError(t, mgr.Identity().ClearSession(ctx))
	_, err = mgr.Identity().CurrentSession(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	// Clearing twice is harmless.
	assert.NoError(t, mgr.Identity().ClearSession(ctx))
}

func TestAuthenticateSingleSessionSlot(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	_, err := mgr.Identity().Authenticate(ctx, LoginRequest{
		Email:    "principal@college.edu",
		Password: "principal123",
	})
	require.NoError(t, err)

	_, err = mgr.Identity().Authenticate(ctx, LoginRequest{
		Email:    "hod.cs@college.edu",
		Password: "hod123",
	})
	require.NoError(t, err)

	session, err := mgr.Identity().CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", session.ID, "the later login owns the single session slot")
}
