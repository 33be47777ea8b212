package dto

import "time"

// Applicant mirrors the backend profile record. Most fields are extracted
// server-side from the uploaded resume and may be absent.
type Applicant struct {
	ID              int        `json:"id"`
	UserID          int        `json:"user_id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	ResumeText      *string    `json:"resume_text,omitempty"`
	Skills          []string   `json:"skills,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	Education       []string   `json:"education,omitempty"`
	Experience      []string   `json:"experience,omitempty"`
	CompanyNames    []string   `json:"company_names,omitempty"`
	Designations    []string   `json:"designations,omitempty"`
	Degrees         []string   `json:"degrees,omitempty"`
	CollegeNames    []string   `json:"college_names,omitempty"`
	TotalExperience *float64   `json:"total_experience,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

// CreateApplicantRequest is assembled from the multipart profile form.
// The resume bytes are forwarded untouched; parsing happens server-side.
type CreateApplicantRequest struct {
	Name           string `validate:"required"`
	Email          string `validate:"required,email"`
	ResumeFilename string `validate:"required"`
	Resume         []byte `validate:"required"`
}

type ApplicantsView struct {
	// Title differs per role: company sees the full pool, an applicant
	// only their own profiles.
	Title      string      `json:"title"`
	Applicants []Applicant `json:"applicants"`
	CanDelete  bool        `json:"can_delete"`
}
