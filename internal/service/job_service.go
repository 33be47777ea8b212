package service

import (
	"context"
	"strings"
	"sync"

	"recruit-console/internal/dto"
	"recruit-console/internal/pkg/logger"
)

type IJobService interface {
	ListJobs(ctx context.Context, identity dto.Identity) (*dto.JobsView, error)
	GetJob(ctx context.Context, id int) (*dto.Job, error)
	SaveJob(ctx context.Context, id int, req *dto.SaveJobRequest) (*dto.Job, error)
	DeleteJob(ctx context.Context, id int) error
}

type JobsAPI interface {
	ListJobs(ctx context.Context) ([]dto.Job, error)
	GetJob(ctx context.Context, id int) (*dto.Job, error)
	CreateJob(ctx context.Context, payload *dto.JobPayload) (*dto.Job, error)
	UpdateJob(ctx context.Context, id int, payload *dto.JobPayload) (*dto.Job, error)
	DeleteJob(ctx context.Context, id int) error
	CheckApplication(ctx context.Context, jobID int) (bool, error)
}

type jobService struct {
	backend   JobsAPI
	logger    logger.ILogger
	maxFanout int
}

func NewJobService(backend JobsAPI, maxFanout int, log logger.ILogger) IJobService {
	if maxFanout < 1 {
		maxFanout = 1
	}
	return &jobService{
		backend:   backend,
		logger:    log,
		maxFanout: maxFanout,
	}
}

// ListJobs renders the job board for the given role. For applicants each
// card carries whether they already applied, so the apply control can be
// disabled up front instead of bouncing off the backend's duplicate
// check. A failed lookup leaves the control enabled.
func (s *jobService) ListJobs(ctx context.Context, identity dto.Identity) (*dto.JobsView, error) {
	jobs, err := s.backend.ListJobs(ctx)
	if err != nil {
		return nil, err
	}

	cards := make([]dto.JobCard, len(jobs))
	for i, job := range jobs {
		cards[i] = dto.JobCard{
			Job:      job,
			CanEdit:  identity.IsCompany(),
			CanApply: identity.IsApplicant(),
		}
	}

	if identity.IsApplicant() {
		sem := make(chan struct{}, s.maxFanout)
		var wg sync.WaitGroup
		for i := range cards {
			wg.Add(1)
			go func(card *dto.JobCard) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()

				applied, err := s.backend.CheckApplication(ctx, card.Job.ID)
				if err != nil {
					s.logger.Warn("Jobs", "Application check failed", map[string]interface{}{
						"job_id": card.Job.ID,
						"error":  err.Error(),
					})
					return
				}
				card.HasApplied = applied
			}(&cards[i])
		}
		wg.Wait()
	}

	return &dto.JobsView{Jobs: cards}, nil
}

// GetJob fetches one posting fresh, backing the edit form.
func (s *jobService) GetJob(ctx context.Context, id int) (*dto.Job, error) {
	return s.backend.GetJob(ctx, id)
}

// SaveJob covers both create (id 0) and update. Skills arrive as the
// raw comma-separated form value and are split here.
func (s *jobService) SaveJob(ctx context.Context, id int, req *dto.SaveJobRequest) (*dto.Job, error) {
	payload := &dto.JobPayload{
		Title:       req.Title,
		Description: req.Description,
		Skills:      splitSkills(req.Skills),
		Salary:      req.Salary,
		Location:    req.Location,
	}

	if id == 0 {
		return s.backend.CreateJob(ctx, payload)
	}
	return s.backend.UpdateJob(ctx, id, payload)
}

func (s *jobService) DeleteJob(ctx context.Context, id int) error {
	return s.backend.DeleteJob(ctx, id)
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
