package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegeops/attendance-service/models"
)

func TestStatsForSeededStudent(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	// s3 has one absent record today and one present record yesterday.
	stats, err := mgr.Dashboard().StatsFor(ctx, []string{"s3"})
	require.NoError(t, err)

	got := stats["s3"]
	assert.Equal(t, AttendanceStats{Present: 1, Absent: 1, Late: 0, Total: 2}, got)
	assert.Equal(t, "50.0", got.Percentage())
}

func TestStatsForStudentWithoutRecords(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	created, err := mgr.Students().Create(ctx, advisorCS1(), CreateStudentRequest{
		RollNumber: "CS2025001",
		Name:       "Fresh Student",
		Year:       1,
	})
	require.NoError(t, err)

	stats, err := mgr.Dashboard().StatsFor(ctx, []string{created.ID})
	require.NoError(t, err)

	got := stats[created.ID]
	assert.Equal(t, AttendanceStats{}, got)
	assert.Equal(t, "0", got.Percentage(), "zero records must not divide by zero")
}

func TestPercentageFormatting(t *testing.T) {
	tests := []struct {
		stats AttendanceStats
		want  string
	}{
		{AttendanceStats{}, "0"},
		{AttendanceStats{Present: 3, Absent: 1, Total: 4}, "75.0"},
		{AttendanceStats{Present: 1, Absent: 1, Total: 2}, "50.0"},
		{AttendanceStats{Present: 2, Late: 1, Total: 3}, "66.7"},
		{AttendanceStats{Present: 4, Total: 4}, "100.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.stats.Percentage())
	}
}

func TestStatsAfterMarkingFourRecords(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	created, err := mgr.Students().Create(ctx, advisorCS1(), CreateStudentRequest{
		RollNumber: "CS2025002",
		Name:       "Tracked Student",
		Year:       2,
	})
	require.NoError(t, err)

	day := models.Today()
	statuses := []string{"present", "present", "present", "absent"}
	for i, status := range statuses {
		_, err := mgr.Attendance().Mark(ctx, advisorCS1(), MarkAttendanceRequest{
			StudentID: created.ID,
			Date:      day.AddDays(-i).String(),
			Status:    status,
		})
		require.NoError(t, err)
	}

	stats, err := mgr.Dashboard().StatsFor(ctx, []string{created.ID})
	require.NoError(t, err)
	assert.Equal(t, AttendanceStats{Present: 3, Absent: 1, Total: 4}, stats[created.ID])
	assert.Equal(t, "75.0", stats[created.ID].Percentage())
}

func TestDaySummaryPerRole(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)
	today := models.Today()

	// Seeded today: 5 present, 2 absent, 1 late across both departments.
	got, err := mgr.Dashboard().DaySummary(ctx, principal(), today)
	require.NoError(t, err)
	assert.Equal(t, &DaySummary{Date: today, Students: 8, Present: 5, Absent: 2, Late: 1}, got)

	// Computer Science today: s1..s5 -> 3 present, 1 absent, 1 late.
	got, err = mgr.Dashboard().DaySummary(ctx, hodCS(), today)
	require.NoError(t, err)
	assert.Equal(t, &DaySummary{Date: today, Students: 5, Present: 3, Absent: 1, Late: 1}, got)

	// Advisor 4 advises s1, s2, s3 -> 2 present, 1 absent.
	got, err = mgr.Dashboard().DaySummary(ctx, advisorCS1(), today)
	require.NoError(t, err)
	assert.Equal(t, &DaySummary{Date: today, Students: 3, Present: 2, Absent: 1}, got)
}

func TestPrincipalOverview(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	got, err := mgr.Dashboard().PrincipalOverview(ctx, principal(), models.Today())
	require.NoError(t, err)

	assert.Equal(t, 8, got.TotalStudents)
	require.Len(t, got.Departments, 2)

	cs := got.Departments[0]
	assert.Equal(t, "Computer Science", cs.Name)
	assert.Equal(t, 5, cs.Total)
	assert.Equal(t, 3, cs.Present)
	assert.Equal(t, "60.0", cs.Percentage)

	ee := got.Departments[1]
	assert.Equal(t, "Electrical Engineering", ee.Name)
	assert.Equal(t, 3, ee.Total)
	assert.Equal(t, 2, ee.Present)
	assert.Equal(t, "66.7", ee.Percentage)
}

func TestDepartmentOverviewResolvesAdvisorNames(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	got, err := mgr.Dashboard().DepartmentOverview(ctx, hodCS(), models.Today())
	require.NoError(t, err)
	require.Len(t, got.Students, 5)

	byID := map[string]StudentStatsRow{}
	for _, row := range got.Students {
		byID[row.Student.ID] = row
	}
	assert.Equal(t, "Dr. Emily Davis", byID["s1"].AdvisorName)
	assert.Equal(t, "Dr. James Wilson", byID["s4"].AdvisorName)
	assert.Equal(t, "50.0", byID["s3"].Percentage)

	// A dangling advisor reference degrades to Unknown, not an error.
	require.NoError(t, mgr.Advisors().Delete(ctx, hodCS(), "4"))
	got, err = mgr.Dashboard().DepartmentOverview(ctx, hodCS(), models.Today())
	require.NoError(t, err)
	for _, row := range got.Students {
		if row.Student.AdvisorID == nil {
			continue
		}
		assert.NotEqual(t, "4", *row.Student.AdvisorID)
	}
}

func TestAdvisorOverviewIncludesTodayRecord(t *testing.T) {
	ctx := context.Background()
	mgr, _ := setup(t)

	got, err := mgr.Dashboard().AdvisorOverview(ctx, advisorCS1(), models.Today())
	require.NoError(t, err)
	require.Len(t, got.Students, 3)

	for _, row := range got.Students {
		require.NotNil(t, row.Today, "every advised student has a seeded record today")
		assert.Equal(t, row.Student.ID, row.Today.StudentID)
	}

	// A brand-new student has stats but no record for the day.
	created, err := mgr.Students().Create(ctx, advisorCS1(), CreateStudentRequest{
		RollNumber: "CS2025003",
		Name:       "Unmarked Student",
		Year:       3,
	})
	require.NoError(t, err)

	got, err = mgr.Dashboard().AdvisorOverview(ctx, advisorCS1(), models.Today())
	require.NoError(t, err)
	require.Len(t, got.Students, 4)
	for _, row := range got.Students {
		if row.Student.ID == created.ID {
			assert.Nil(t, row.Today)
			assert.Equal(t, "0", row.Percentage)
		}
	}
}
