package validator

// Request DTOs validated before any repository call. Pointer fields on
// update requests mean "leave unchanged".

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateStudentRequest struct {
	RollNumber string `json:"roll_number" validate:"required,max=20"`
	Name       string `json:"name" validate:"required,max=100"`
	Year       int    `json:"year" validate:"required,min=1,max=4"`

	// Department and AdvisorID may be left empty by advisor callers;
	// the service fills them in from the caller's own identity.
	Department string  `json:"department" validate:"omitempty,max=100"`
	AdvisorID  *string `json:"advisor_id"`
	SectionID  *string `json:"section_id"`
}

type UpdateStudentRequest struct {
	RollNumber *string `json:"roll_number" validate:"omitempty,max=20"`
	Name       *string `json:"name" validate:"omitempty,max=100"`
	Year       *int    `json:"year" validate:"omitempty,min=1,max=4"`
	SectionID  *string `json:"section_id"`
}

type CreateSectionRequest struct {
	Name       string `json:"name" validate:"required,max=50"`
	Year       int    `json:"year" validate:"required,min=1,max=4"`
	AdvisorID  string `json:"advisor_id" validate:"required"`
	Department string `json:"department" validate:"omitempty,max=100"`
}

type UpdateSectionRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=50"`
	Year      *int    `json:"year" validate:"omitempty,min=1,max=4"`
	AdvisorID *string `json:"advisor_id" validate:"omitempty"`
}

type CreateAdvisorRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	FullName   string `json:"full_name" validate:"required,max=100"`
	Department string `json:"department" validate:"omitempty,max=100"`
}

type UpdateAdvisorRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

type MarkAttendanceRequest struct {
	StudentID string  `json:"student_id" validate:"required"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string  `json:"status" validate:"required,oneof=present absent late"`
	Remarks   *string `json:"remarks" validate:"omitempty,max=500"`
}
