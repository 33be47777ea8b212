package api

import (
	"context"
	"fmt"
	"net/http"

	"recruit-console/internal/dto"
)

func (c *Client) CreateApplication(ctx context.Context, jobID, applicantID int) (*dto.Application, error) {
	payload := dto.ApplyRequest{JobID: jobID, ApplicantID: applicantID}
	var application dto.Application
	if err := c.doJSON(ctx, http.MethodPost, "/applications/", nil, payload, &application); err != nil {
		return nil, err
	}
	return &application, nil
}

func (c *Client) CheckApplication(ctx context.Context, jobID int) (bool, error) {
	var check dto.ApplicationCheckResponse
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/applications/check/%d", jobID), nil, nil, &check); err != nil {
		return false, err
	}
	return check.HasApplied, nil
}

func (c *Client) MyApplications(ctx context.Context) ([]dto.Application, error) {
	var applications []dto.Application
	if err := c.doJSON(ctx, http.MethodGet, "/applications/my-applications", nil, nil, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

func (c *Client) AllApplications(ctx context.Context) ([]dto.ApplicationWithDetails, error) {
	var applications []dto.ApplicationWithDetails
	if err := c.doJSON(ctx, http.MethodGet, "/applications/all", nil, nil, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, id int, status string) error {
	payload := dto.UpdateApplicationStatusRequest{Status: status}
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/applications/%d/status", id), nil, payload, nil)
}
