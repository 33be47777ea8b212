package dto

import "time"

type Offer struct {
	ID          int       `json:"id"`
	ApplicantID int       `json:"applicant_id"`
	PositionID  int       `json:"position_id"`
	PDFPath     string    `json:"pdf_path"`
	Salary      *float64  `json:"salary,omitempty"`
	StartDate   *string   `json:"start_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type GenerateOfferRequest struct {
	ApplicantID int     `json:"applicant_id" validate:"required"`
	PositionID  int     `json:"position_id" validate:"required"`
	Salary      float64 `json:"salary" validate:"required,gt=0"`
	StartDate   string  `json:"start_date" validate:"required"`
}

// OfferDocument is the downloaded letter. Filename comes from the
// backend's Content-Disposition hint when present.
type OfferDocument struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

type OfferCard struct {
	Offer         Offer  `json:"offer"`
	ApplicantName string `json:"applicant_name"`
	JobTitle      string `json:"job_title"`
}

type OffersView struct {
	Offers    []OfferCard `json:"offers"`
	CanManage bool        `json:"can_manage"`
}
