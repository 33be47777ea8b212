package api

import (
	"context"
	"fmt"
	"net/http"

	"recruit-console/internal/dto"
)

func (c *Client) ListJobs(ctx context.Context) ([]dto.Job, error) {
	var jobs []dto.Job
	if err := c.doJSON(ctx, http.MethodGet, "/jobs/", nil, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) GetJob(ctx context.Context, id int) (*dto.Job, error) {
	var job dto.Job
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/jobs/%d", id), nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) CreateJob(ctx context.Context, payload *dto.JobPayload) (*dto.Job, error) {
	var job dto.Job
	if err := c.doJSON(ctx, http.MethodPost, "/jobs/", nil, payload, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) UpdateJob(ctx context.Context, id int, payload *dto.JobPayload) (*dto.Job, error) {
	var job dto.Job
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/jobs/%d", id), nil, payload, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) DeleteJob(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/jobs/%d", id), nil, nil, nil)
}
