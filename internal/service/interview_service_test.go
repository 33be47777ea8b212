package service

import (
	"context"
	"errors"
	"testing"

	"recruit-console/internal/dto"
)

type fakeInterviewsAPI struct {
	interviews []dto.Interview
	applicants map[int]dto.Applicant
	jobs       map[int]dto.Job
}

func (f *fakeInterviewsAPI) ListInterviews(ctx context.Context) ([]dto.Interview, error) {
	return f.interviews, nil
}

func (f *fakeInterviewsAPI) CreateInterview(ctx context.Context, req *dto.ScheduleInterviewRequest) (*dto.Interview, error) {
	return &dto.Interview{ID: 1, ApplicantID: req.ApplicantID, PositionID: req.PositionID, Status: dto.InterviewScheduled}, nil
}

func (f *fakeInterviewsAPI) UpdateInterviewStatus(ctx context.Context, id int, status string) error {
	return nil
}

func (f *fakeInterviewsAPI) DeleteInterview(ctx context.Context, id int) error { return nil }

func (f *fakeInterviewsAPI) GetApplicant(ctx context.Context, id int) (*dto.Applicant, error) {
	a, ok := f.applicants[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &a, nil
}

func (f *fakeInterviewsAPI) GetJob(ctx context.Context, id int) (*dto.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &j, nil
}

func TestListInterviewsEnrichment(t *testing.T) {
	backend := &fakeInterviewsAPI{
		interviews: []dto.Interview{
			{ID: 1, ApplicantID: 10, PositionID: 20, Status: dto.InterviewScheduled},
			{ID: 2, ApplicantID: 77, PositionID: 20, Status: dto.InterviewCompleted},
		},
		applicants: map[int]dto.Applicant{10: {ID: 10, Name: "Ana"}},
		jobs:       map[int]dto.Job{20: {ID: 20, Title: "SRE"}},
	}
	svc := NewInterviewService(backend, 4, nopLogger{})

	view, err := svc.ListInterviews(context.Background(), dto.Identity{ID: 1, Role: dto.RoleCompany})
	if err != nil {
		t.Fatal(err)
	}
	if !view.CanManage {
		t.Fatal("company user should manage interviews")
	}
	if len(view.Interviews) != 2 {
		t.Fatalf("rows = %d", len(view.Interviews))
	}

	first := view.Interviews[0]
	if first.ApplicantName != "Ana" || first.JobTitle != "SRE" {
		t.Fatalf("enriched card = %+v", first)
	}

	// The row with a missing applicant still renders, degraded.
	second := view.Interviews[1]
	if second.ApplicantName != unknownLabel {
		t.Fatalf("missing applicant rendered as %q", second.ApplicantName)
	}
	if second.JobTitle != "SRE" {
		t.Fatalf("job enrichment lost on partial failure: %+v", second)
	}
}
