package dto

import "time"

const (
	InterviewScheduled   = "scheduled"
	InterviewCompleted   = "completed"
	InterviewCancelled   = "cancelled"
	InterviewRescheduled = "rescheduled"
)

type Interview struct {
	ID          int       `json:"id"`
	ApplicantID int       `json:"applicant_id"`
	PositionID  int       `json:"position_id"`
	DateTime    time.Time `json:"date_time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ScheduleInterviewRequest struct {
	ApplicantID int       `json:"applicant_id" validate:"required"`
	PositionID  int       `json:"position_id" validate:"required"`
	DateTime    time.Time `json:"date_time" validate:"required"`
}

type UpdateInterviewStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled rescheduled"`
}

// InterviewCard is an interview enriched with the counterpart names.
// Unknown values mean the detail fetch failed; the card is shown anyway.
type InterviewCard struct {
	Interview     Interview `json:"interview"`
	ApplicantName string    `json:"applicant_name"`
	JobTitle      string    `json:"job_title"`
}

type InterviewsView struct {
	Interviews []InterviewCard `json:"interviews"`
	CanManage  bool            `json:"can_manage"`
}
