package models

type UserRole string

const (
	RolePrincipal UserRole = "principal"
	RoleHOD       UserRole = "hod"
	RoleAdvisor   UserRole = "advisor"
)

type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Password string   `json:"password,omitempty"`
	FullName string   `json:"full_name"`
	Role     UserRole `json:"role"`

	// Department is set for HODs and advisors, nil for the principal.
	Department *string `json:"department,omitempty"`
}

// WithoutPassword returns a copy safe to hand to callers and to persist
// as the session identity.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

func (u User) DepartmentName() string {
	if u.Department == nil {
		return ""
	}
	return *u.Department
}
