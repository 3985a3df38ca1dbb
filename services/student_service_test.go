package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegeops/attendance-service/events"
	"github.com/collegeops/attendance-service/models"
	"github.com/collegeops/attendance-service/repositories"
	"github.com/collegeops/attendance-service/validator"
)

func TestCreateStudentDefaultsFromAdvisorCaller(t *testing.T) {
	ctx := context.Background()
	mgr, pub := setup(t)

	student, err := mgr.Students().Create(ctx, advisorCS1(), CreateStudentRequest{
		RollNumber: "CS2023009",
		Name:       "Nina Rao",
		Year:       1,
	})
	require.NoError(t, err)

	// An advisor adding a student without explicit fields becomes the
	// advisor, and the department follows the caller.
	require.NotNil(t, student.AdvisorID)
	assert.Equal(t, "4", *student.AdvisorID)
	assert.Equal(t, "Computer Science", student.Department)
	assert.Nil(t, student.SectionID)

	published := pub.PublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, "students", published[0].Collection)
	assert.Equal(t, events.ActionCreated, published[0].Action)
	assert.Equal(t, student.ID, published[0].EntityID)
}

func TestCreateStudentExplicitFieldsWin(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	student, err := mgr.Students().Create(ctx, advisorCS1(), CreateStudentRequest{
		RollNumber: "EE2023001",
		Name:       "Dev Mehta",
		Year:       2,
		Department: "Electrical Engineering",
		AdvisorID:  strp("6"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Electrical Engineering", student.Department)
	assert.Equal(t, "6", *student.AdvisorID)
}

func TestCreateStudentNormalizesDepartment(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	student, err := mgr.Students().Create(ctx, principal(), CreateStudentRequest{
		RollNumber: "CS2023010",
		Name:       "Ira Bose",
		Year:       1,
		Department: "  Computer   Science ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", student.Department)
}

func TestCreateStudentRejectsInvalidYear(t *testing.T) {
	ctx := context.Background()
	mgr, pub := setup(t)

	_, err := mgr.Students().Create(ctx, principal(), CreateStudentRequest{
		RollNumber: "CS2023011",
		Name:       "Out Of Range",
		Year:       7,
	})
	require.Error(t, err)
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Empty(t, pub.PublishedEvents())
}

func TestUpdateStudentMergesAndPublishes(t *testing.T) {
	ctx := context.Background()
	mgr, pub := setup(t)

	student, err := mgr.Students().Update(ctx, hodCS(), "s1", UpdateStudentRequest{
		Name: strp("Alex K. Kumar"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex K. Kumar", student.Name)
	assert.Equal(t, "CS2021001", student.RollNumber, "unset fields stay untouched")

	published := pub.PublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.ActionUpdated, published[0].Action)
}

func TestStudentNotFoundPassesThrough(t *testing.T) {
	ctx := context.Background()
	mgr, pub := setup(t)

	_, err := mgr.Students().Update(ctx, principal(), "nope", UpdateStudentRequest{Name: strp("x")})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = mgr.Students().Delete(ctx, principal(), "nope")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.Empty(t, pub.PublishedEvents())
}

func TestDeleteStudentRemovesAttendance(t *testing.T) {
	ctx := context.Background()
	mgr, pub := setup(t)

	require.NoError(t, mgr.Students().Delete(ctx, advisorCS1(), "s1"))

	records, err := mgr.Attendance().List(ctx, principal(), nil)
	require.NoError(t, err)
	assert.Len(t, records, 11, "s1's two records go with the student")
	for _, rec := range records {
		assert.NotEqual(t, "s1", rec.StudentID)
	}

	published := pub.PublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.ActionDeleted, published[0].Action)
	assert.Equal(t, "s1", published[0].EntityID)
}

func TestListStudentsScopedPerRole(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	all, err := mgr.Students().List(ctx, principal())
	require.NoError(t, err)
	assert.Len(t, all, 8)

	cs, err := mgr.Students().List(ctx, hodCS())
	require.NoError(t, err)
	assert.Len(t, cs, 5)

	mine, err := mgr.Students().List(ctx, advisorCS1())
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	none, err := mgr.Students().List(ctx, &models.User{ID: "2", Role: models.RoleHOD})
	require.NoError(t, err)
	assert.Empty(t, none, "an HOD without a department sees nothing")
}
