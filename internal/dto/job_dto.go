package dto

import "time"

type Job struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	Salary      *float64  `json:"salary,omitempty"`
	Location    *string   `json:"location,omitempty"`
	CompanyID   int       `json:"company_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// SaveJobRequest covers both create and update. Skills arrive as the raw
// comma-separated form value and are split by the service.
type SaveJobRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Skills      string   `json:"skills" validate:"required"`
	Salary      *float64 `json:"salary,omitempty"`
	Location    *string  `json:"location,omitempty"`
}

// JobPayload is the wire shape sent to the backend.
type JobPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Salary      *float64 `json:"salary"`
	Location    *string  `json:"location"`
}

// JobCard is a single rendered job entry. HasApplied is only meaningful
// for applicant users; CanEdit only for company users.
type JobCard struct {
	Job        Job  `json:"job"`
	CanEdit    bool `json:"can_edit"`
	CanApply   bool `json:"can_apply"`
	HasApplied bool `json:"has_applied"`
}

type JobsView struct {
	Jobs []JobCard `json:"jobs"`
}
