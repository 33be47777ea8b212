package api

import (
	"context"
	"fmt"
	"net/http"

	"recruit-console/internal/dto"
)

func (c *Client) ListApplicants(ctx context.Context) ([]dto.Applicant, error) {
	var applicants []dto.Applicant
	if err := c.doJSON(ctx, http.MethodGet, "/applicants/", nil, nil, &applicants); err != nil {
		return nil, err
	}
	return applicants, nil
}

func (c *Client) GetApplicant(ctx context.Context, id int) (*dto.Applicant, error) {
	var applicant dto.Applicant
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/applicants/%d", id), nil, nil, &applicant); err != nil {
		return nil, err
	}
	return &applicant, nil
}

// CreateApplicant uploads the profile form plus the raw resume; skill and
// experience extraction happens server-side.
func (c *Client) CreateApplicant(ctx context.Context, req *dto.CreateApplicantRequest) (*dto.Applicant, error) {
	fields := map[string]string{
		"name":  req.Name,
		"email": req.Email,
	}
	var applicant dto.Applicant
	if err := c.postMultipart(ctx, "/applicants/", fields, "resume", req.ResumeFilename, req.Resume, &applicant); err != nil {
		return nil, err
	}
	return &applicant, nil
}

func (c *Client) DeleteApplicant(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/applicants/%d", id), nil, nil, nil)
}
