package service

import (
	"context"
	"errors"
	"sync"

	"recruit-console/internal/dto"
	"recruit-console/internal/pkg/logger"
)

var (
	// ErrAlreadyApplied guards against a duplicate submission racing past
	// the disabled control.
	ErrAlreadyApplied = errors.New("application already submitted for this job")

	// ErrNoProfile means the user has no applicant profile to apply with.
	ErrNoProfile = errors.New("create an applicant profile before applying")
)

type IApplicationService interface {
	ListApplications(ctx context.Context, identity dto.Identity) (*dto.ApplicationsView, error)
	ApplyForJob(ctx context.Context, identity dto.Identity, jobID int) (*dto.ApplyOutcome, error)
	SubmitApplication(ctx context.Context, jobID, applicantID int) (*dto.Application, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type ApplicationsAPI interface {
	CreateApplication(ctx context.Context, jobID, applicantID int) (*dto.Application, error)
	CheckApplication(ctx context.Context, jobID int) (bool, error)
	MyApplications(ctx context.Context) ([]dto.Application, error)
	AllApplications(ctx context.Context) ([]dto.ApplicationWithDetails, error)
	UpdateApplicationStatus(ctx context.Context, id int, status string) error
	ListApplicants(ctx context.Context) ([]dto.Applicant, error)
	GetJob(ctx context.Context, id int) (*dto.Job, error)
}

type applicationService struct {
	backend   ApplicationsAPI
	logger    logger.ILogger
	maxFanout int
}

func NewApplicationService(backend ApplicationsAPI, maxFanout int, log logger.ILogger) IApplicationService {
	if maxFanout < 1 {
		maxFanout = 1
	}
	return &applicationService{
		backend:   backend,
		logger:    log,
		maxFanout: maxFanout,
	}
}

// ListApplications branches on role: company users get the pre-joined
// pipeline view, applicants get their own submissions enriched with the
// job each one targets. A failed job lookup leaves the card without its
// job detail.
func (s *applicationService) ListApplications(ctx context.Context, identity dto.Identity) (*dto.ApplicationsView, error) {
	if identity.IsCompany() {
		all, err := s.backend.AllApplications(ctx)
		if err != nil {
			return nil, err
		}
		return &dto.ApplicationsView{Title: "All Applications", All: all}, nil
	}

	mine, err := s.backend.MyApplications(ctx)
	if err != nil {
		return nil, err
	}

	cards := make([]dto.MyApplicationCard, len(mine))
	sem := make(chan struct{}, s.maxFanout)
	var wg sync.WaitGroup

	for i, app := range mine {
		cards[i] = dto.MyApplicationCard{Application: app}
		wg.Add(1)
		go func(card *dto.MyApplicationCard) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			job, err := s.backend.GetJob(ctx, card.Application.JobID)
			if err != nil {
				s.logger.Warn("Applications", "Job lookup failed", map[string]interface{}{
					"job_id": card.Application.JobID,
					"error":  err.Error(),
				})
				return
			}
			card.Job = job
		}(&cards[i])
	}
	wg.Wait()

	return &dto.ApplicationsView{Title: "My Applications", Mine: cards}, nil
}

// ApplyForJob resolves which profile to apply with. One profile submits
// immediately; several hand the choice back to the user; none is an
// error.
func (s *applicationService) ApplyForJob(ctx context.Context, identity dto.Identity, jobID int) (*dto.ApplyOutcome, error) {
	applicants, err := s.backend.ListApplicants(ctx)
	if err != nil {
		return nil, err
	}

	own := make([]dto.Applicant, 0, len(applicants))
	for _, a := range applicants {
		if a.UserID == identity.ID {
			own = append(own, a)
		}
	}

	switch len(own) {
	case 0:
		return nil, ErrNoProfile
	case 1:
		if _, err := s.SubmitApplication(ctx, jobID, own[0].ID); err != nil {
			return nil, err
		}
		return &dto.ApplyOutcome{Submitted: true}, nil
	default:
		return &dto.ApplyOutcome{Profiles: own}, nil
	}
}

// SubmitApplication re-checks the duplicate guard before posting; the
// backend enforces it too, this just keeps the error local and friendly.
func (s *applicationService) SubmitApplication(ctx context.Context, jobID, applicantID int) (*dto.Application, error) {
	applied, err := s.backend.CheckApplication(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, ErrAlreadyApplied
	}

	app, err := s.backend.CreateApplication(ctx, jobID, applicantID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Applications", "Application submitted", map[string]interface{}{
		"job_id":       jobID,
		"applicant_id": applicantID,
	})
	return app, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, id int, status string) error {
	return s.backend.UpdateApplicationStatus(ctx, id, status)
}
