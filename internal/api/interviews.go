package api

import (
	"context"
	"fmt"
	"net/http"

	"recruit-console/internal/dto"
)

func (c *Client) ListInterviews(ctx context.Context) ([]dto.Interview, error) {
	var interviews []dto.Interview
	if err := c.doJSON(ctx, http.MethodGet, "/interviews/", nil, nil, &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

func (c *Client) CreateInterview(ctx context.Context, req *dto.ScheduleInterviewRequest) (*dto.Interview, error) {
	var interview dto.Interview
	if err := c.doJSON(ctx, http.MethodPost, "/interviews/", nil, req, &interview); err != nil {
		return nil, err
	}
	return &interview, nil
}

func (c *Client) UpdateInterviewStatus(ctx context.Context, id int, status string) error {
	payload := dto.UpdateInterviewStatusRequest{Status: status}
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/interviews/%d", id), nil, payload, nil)
}

func (c *Client) DeleteInterview(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/interviews/%d", id), nil, nil, nil)
}
