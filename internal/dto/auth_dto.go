package dto

const (
	RoleCompany   = "company"
	RoleApplicant = "applicant"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=company applicant"`
	// Employee ID is mandatory for company/HR accounts only.
	EmployeeID string `json:"employee_id,omitempty" validate:"required_if=Role company"`
}

// TokenResponse is the backend's answer to the form-encoded credential exchange.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Identity is the authenticated user record from /auth/me.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func (i Identity) IsCompany() bool   { return i.Role == RoleCompany }
func (i Identity) IsApplicant() bool { return i.Role == RoleApplicant }

// SessionView is what the console shell renders after login/restore.
type SessionView struct {
	Identity      Identity `json:"identity"`
	ActiveSection string   `json:"active_section"`
}
