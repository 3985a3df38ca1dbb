package models

type Student struct {
	ID         string `json:"id"`
	RollNumber string `json:"roll_number"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Year       int    `json:"year"`

	// AdvisorID and SectionID are nil when unassigned; deleting an
	// advisor or section clears them rather than deleting the student.
	AdvisorID *string `json:"advisor_id,omitempty"`
	SectionID *string `json:"section_id,omitempty"`
}

func (s Student) AdvisedBy(advisorID string) bool {
	return s.AdvisorID != nil && *s.AdvisorID == advisorID
}

func (s Student) InSection(sectionID string) bool {
	return s.SectionID != nil && *s.SectionID == sectionID
}
