package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegeops/attendance-service/repositories"
)

func TestCreateAdvisorStripsPassword(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	advisor, err := mgr.Advisors().Create(ctx, hodCS(), CreateAdvisorRequest{
		Email:    "advisor.cs3@college.edu",
		Password: "advisor123",
		FullName: "Dr. Kiran Nair",
	})
	require.NoError(t, err)
	assert.Empty(t, advisor.Password)
	assert.Equal(t, "Computer Science", advisor.DepartmentName())
}

func TestCreateAdvisorRejectsShortPassword(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	_, err := mgr.Advisors().Create(ctx, hodCS(), CreateAdvisorRequest{
		Email:    "advisor.cs4@college.edu",
		Password: "short",
		FullName: "Dr. Too Short",
	})
	require.Error(t, err)
}

func TestListAdvisorsScopedAndStripped(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	all, err := mgr.Advisors().List(ctx, principal())
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, a := range all {
		assert.Empty(t, a.Password)
	}

	cs, err := mgr.Advisors().List(ctx, hodCS())
	require.NoError(t, err)
	assert.Len(t, cs, 2)

	self, err := mgr.Advisors().List(ctx, advisorCS1())
	require.NoError(t, err)
	require.Len(t, self, 1)
	assert.Equal(t, "4", self[0].ID)
}

func TestDeleteAdvisorCascades(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	require.NoError(t, mgr.Advisors().Delete(ctx, hodCS(), "4"))

	// The advisor's section is gone; its students stay, unassigned.
	sections, err := mgr.Sections().List(ctx, principal())
	require.NoError(t, err)
	assert.Len(t, sections, 2)
	for _, sec := range sections {
		assert.NotEqual(t, "sec1", sec.ID)
	}

	students, err := mgr.Students().List(ctx, principal())
	require.NoError(t, err)
	assert.Len(t, students, 8)
	for _, s := range students {
		if s.ID == "s1" || s.ID == "s2" || s.ID == "s3" {
			assert.Nil(t, s.AdvisorID)
		}
	}

	assert.Equal(t, "Unknown", mgr.Advisors().AdvisorName(ctx, "4"))
}

func TestDeleteAdvisorRefusesOtherRoles(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	// "1" is the principal; only advisor accounts can be deleted here.
	err := mgr.Advisors().Delete(ctx, principal(), "1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUpdateAdvisorKeepsPasswordWhenOmitted(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	advisor, err := mgr.Advisors().Update(ctx, hodCS(), "4", UpdateAdvisorRequest{
		FullName: strp("Dr. Emily R. Davis"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Emily R. Davis", advisor.FullName)
	assert.Empty(t, advisor.Password, "responses never carry passwords")

	// The stored credential is untouched; the old password still works.
	_, err = mgr.Identity().Authenticate(ctx, LoginRequest{
		Email:    "advisor.cs1@college.edu",
		Password: "advisor123",
	})
	require.NoError(t, err)
}
