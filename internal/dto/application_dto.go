package dto

import "time"

const (
	ApplicationPending     = "PENDING"
	ApplicationReviewed    = "REVIEWED"
	ApplicationShortlisted = "SHORTLISTED"
	ApplicationRejected    = "REJECTED"
)

type Application struct {
	ID          int       `json:"id"`
	ApplicantID int       `json:"applicant_id"`
	JobID       int       `json:"job_id"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
}

// ApplicationWithDetails is the company-side listing shape from
// /applications/all, pre-joined by the backend.
type ApplicationWithDetails struct {
	Application
	ApplicantName  string `json:"applicant_name"`
	ApplicantEmail string `json:"applicant_email"`
	JobTitle       string `json:"job_title"`
}

type ApplyRequest struct {
	JobID       int `json:"job_id" validate:"required"`
	ApplicantID int `json:"applicant_id"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING REVIEWED SHORTLISTED REJECTED"`
}

type ApplicationCheckResponse struct {
	HasApplied bool `json:"has_applied"`
}

// MyApplicationCard is an applicant's own application enriched with the
// job it targets. Job is nil when the detail fetch failed.
type MyApplicationCard struct {
	Application Application `json:"application"`
	Job         *Job        `json:"job,omitempty"`
}

type ApplicationsView struct {
	Title string `json:"title"`
	// Exactly one of the two lists is populated, depending on role.
	All  []ApplicationWithDetails `json:"all,omitempty"`
	Mine []MyApplicationCard      `json:"mine,omitempty"`
}

// ApplyOutcome reports how an apply attempt resolved: submitted directly,
// or waiting on a profile choice when the user owns several.
type ApplyOutcome struct {
	Submitted bool        `json:"submitted"`
	Profiles  []Applicant `json:"profiles,omitempty"`
}
