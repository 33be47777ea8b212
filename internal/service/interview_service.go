package service

import (
	"context"
	"sync"

	"recruit-console/internal/dto"
	"recruit-console/internal/pkg/logger"
)

// unknownLabel stands in when a counterpart record cannot be resolved;
// the row still renders.
const unknownLabel = "Unknown"

type IInterviewService interface {
	ListInterviews(ctx context.Context, identity dto.Identity) (*dto.InterviewsView, error)
	Schedule(ctx context.Context, req *dto.ScheduleInterviewRequest) (*dto.Interview, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
}

type InterviewsAPI interface {
	ListInterviews(ctx context.Context) ([]dto.Interview, error)
	CreateInterview(ctx context.Context, req *dto.ScheduleInterviewRequest) (*dto.Interview, error)
	UpdateInterviewStatus(ctx context.Context, id int, status string) error
	DeleteInterview(ctx context.Context, id int) error
	GetApplicant(ctx context.Context, id int) (*dto.Applicant, error)
	GetJob(ctx context.Context, id int) (*dto.Job, error)
}

type interviewService struct {
	backend   InterviewsAPI
	logger    logger.ILogger
	maxFanout int
}

func NewInterviewService(backend InterviewsAPI, maxFanout int, log logger.ILogger) IInterviewService {
	if maxFanout < 1 {
		maxFanout = 1
	}
	return &interviewService{
		backend:   backend,
		logger:    log,
		maxFanout: maxFanout,
	}
}

// ListInterviews enriches every row with the applicant name and the job
// title, resolved concurrently. A failed lookup degrades that one field
// to Unknown instead of dropping the row.
func (s *interviewService) ListInterviews(ctx context.Context, identity dto.Identity) (*dto.InterviewsView, error) {
	interviews, err := s.backend.ListInterviews(ctx)
	if err != nil {
		return nil, err
	}

	cards := make([]dto.InterviewCard, len(interviews))
	sem := make(chan struct{}, s.maxFanout)
	var wg sync.WaitGroup

	for i, iv := range interviews {
		cards[i] = dto.InterviewCard{
			Interview:     iv,
			ApplicantName: unknownLabel,
			JobTitle:      unknownLabel,
		}
		wg.Add(1)
		go func(card *dto.InterviewCard) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if applicant, err := s.backend.GetApplicant(ctx, card.Interview.ApplicantID); err == nil {
				card.ApplicantName = applicant.Name
			} else {
				s.logger.Warn("Interviews", "Applicant lookup failed", map[string]interface{}{
					"applicant_id": card.Interview.ApplicantID,
					"error":        err.Error(),
				})
			}
			if job, err := s.backend.GetJob(ctx, card.Interview.PositionID); err == nil {
				card.JobTitle = job.Title
			} else {
				s.logger.Warn("Interviews", "Job lookup failed", map[string]interface{}{
					"job_id": card.Interview.PositionID,
					"error":  err.Error(),
				})
			}
		}(&cards[i])
	}
	wg.Wait()

	return &dto.InterviewsView{
		Interviews: cards,
		CanManage:  identity.IsCompany(),
	}, nil
}

func (s *interviewService) Schedule(ctx context.Context, req *dto.ScheduleInterviewRequest) (*dto.Interview, error) {
	return s.backend.CreateInterview(ctx, req)
}

func (s *interviewService) UpdateStatus(ctx context.Context, id int, status string) error {
	return s.backend.UpdateInterviewStatus(ctx, id, status)
}

func (s *interviewService) Delete(ctx context.Context, id int) error {
	return s.backend.DeleteInterview(ctx, id)
}
