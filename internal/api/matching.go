package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"recruit-console/internal/dto"
)

// CandidatesForJob asks the backend for applicants matching one job at or
// above the threshold. The threshold passes through unclamped; range
// enforcement is the backend's call.
func (c *Client) CandidatesForJob(ctx context.Context, jobID int, minMatchPercentage float64) (*dto.JobCandidatesResponse, error) {
	query := url.Values{}
	query.Set("min_match_percentage", strconv.FormatFloat(minMatchPercentage, 'f', -1, 64))

	var matches dto.JobCandidatesResponse
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/matching/jobs/%d/candidates", jobID), query, nil, &matches); err != nil {
		return nil, err
	}
	return &matches, nil
}

func (c *Client) MatchesForApplicant(ctx context.Context, applicantID int, minMatchPercentage float64) (*dto.ApplicantMatchesResponse, error) {
	query := url.Values{}
	query.Set("min_match_percentage", strconv.FormatFloat(minMatchPercentage, 'f', -1, 64))

	var matches dto.ApplicantMatchesResponse
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/matching/applicants/%d/matches", applicantID), query, nil, &matches); err != nil {
		return nil, err
	}
	return &matches, nil
}
