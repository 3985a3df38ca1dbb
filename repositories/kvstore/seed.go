package kvstore

import "github.com/collegeops/attendance-service/models"

// Reference dataset used when a collection has no prior snapshot:
// one principal, two HODs, three advisors, three sections, eight
// students and thirteen attendance records across today and yesterday.

const (
	deptCS = "Computer Science"
	deptEE = "Electrical Engineering"
)

func strPtr(s string) *string { return &s }

func seedUsers() []models.User {
	return []models.User{
		{ID: "1", Email: "principal@college.edu", Password: "principal123", FullName: "Dr. Robert Johnson", Role: models.RolePrincipal},
		{ID: "2", Email: "hod.cs@college.edu", Password: "hod123", FullName: "Prof. Sarah Williams", Role: models.RoleHOD, Department: strPtr(deptCS)},
		{ID: "3", Email: "hod.ee@college.edu", Password: "hod123", FullName: "Prof. Michael Brown", Role: models.RoleHOD, Department: strPtr(deptEE)},
		{ID: "4", Email: "advisor.cs1@college.edu", Password: "advisor123", FullName: "Dr. Emily Davis", Role: models.RoleAdvisor, Department: strPtr(deptCS)},
		{ID: "5", Email: "advisor.cs2@college.edu", Password: "advisor123", FullName: "Dr. James Wilson", Role: models.RoleAdvisor, Department: strPtr(deptCS)},
		{ID: "6", Email: "advisor.ee1@college.edu", Password: "advisor123", FullName: "Dr. Lisa Anderson", Role: models.RoleAdvisor, Department: strPtr(deptEE)},
	}
}

func seedSections() []models.Section {
	return []models.Section{
		{ID: "sec1", Name: "Section A", Department: deptCS, Year: 3, AdvisorID: "4"},
		{ID: "sec2", Name: "Section B", Department: deptCS, Year: 2, AdvisorID: "5"},
		{ID: "sec3", Name: "Section A", Department: deptEE, Year: 3, AdvisorID: "6"},
	}
}

func seedStudents() []models.Student {
	return []models.Student{
		{ID: "s1", RollNumber: "CS2021001", Name: "Alex Kumar", Department: deptCS, Year: 3, AdvisorID: strPtr("4"), SectionID: strPtr("sec1")},
		{ID: "s2", RollNumber: "CS2021002", Name: "Maya Patel", Department: deptCS, Year: 3, AdvisorID: strPtr("4"), SectionID: strPtr("sec1")},
		{ID: "s3", RollNumber: "CS2021003", Name: "Rahul Sharma", Department: deptCS, Year: 3, AdvisorID: strPtr("4"), SectionID: strPtr("sec1")},
		{ID: "s4", RollNumber: "CS2022001", Name: "Priya Singh", Department: deptCS, Year: 2, AdvisorID: strPtr("5"), SectionID: strPtr("sec2")},
		{ID: "s5", RollNumber: "CS2022002", Name: "Arjun Reddy", Department: deptCS, Year: 2, AdvisorID: strPtr("5"), SectionID: strPtr("sec2")},
		{ID: "s6", RollNumber: "EE2021001", Name: "Sneha Gupta", Department: deptEE, Year: 3, AdvisorID: strPtr("6"), SectionID: strPtr("sec3")},
		{ID: "s7", RollNumber: "EE2021002", Name: "Vikram Joshi", Department: deptEE, Year: 3, AdvisorID: strPtr("6"), SectionID: strPtr("sec3")},
		{ID: "s8", RollNumber: "EE2022001", Name: "Anjali Verma", Department: deptEE, Year: 2, AdvisorID: strPtr("6"), SectionID: strPtr("sec3")},
	}
}

func seedAttendance() []models.AttendanceRecord {
	today := models.Today()
	yesterday := today.AddDays(-1)

	return []models.AttendanceRecord{
		{ID: "a1", StudentID: "s1", Date: today, Status: models.StatusPresent, MarkedBy: "4"},
		{ID: "a2", StudentID: "s2", Date: today, Status: models.StatusPresent, MarkedBy: "4"},
		{ID: "a3", StudentID: "s3", Date: today, Status: models.StatusAbsent, MarkedBy: "4", Remarks: strPtr("Medical leave")},
		{ID: "a4", StudentID: "s4", Date: today, Status: models.StatusPresent, MarkedBy: "5"},
		{ID: "a5", StudentID: "s5", Date: today, Status: models.StatusLate, MarkedBy: "5", Remarks: strPtr("Arrived 15 mins late")},
		{ID: "a6", StudentID: "s6", Date: today, Status: models.StatusPresent, MarkedBy: "6"},
		{ID: "a7", StudentID: "s7", Date: today, Status: models.StatusPresent, MarkedBy: "6"},
		{ID: "a8", StudentID: "s8", Date: today, Status: models.StatusAbsent, MarkedBy: "6"},

		{ID: "a9", StudentID: "s1", Date: yesterday, Status: models.StatusPresent, MarkedBy: "4"},
		{ID: "a10", StudentID: "s2", Date: yesterday, Status: models.StatusPresent, MarkedBy: "4"},
		{ID: "a11", StudentID: "s3", Date: yesterday, Status: models.StatusPresent, MarkedBy: "4"},
		{ID: "a12", StudentID: "s4", Date: yesterday, Status: models.StatusAbsent, MarkedBy: "5"},
		{ID: "a13", StudentID: "s5", Date: yesterday, Status: models.StatusPresent, MarkedBy: "5"},
	}
}
