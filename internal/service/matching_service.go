package service

import (
	"context"
	"sort"
	"sync"

	"recruit-console/internal/dto"
	"recruit-console/internal/pkg/logger"
)

type IMatchingService interface {
	InitialView(ctx context.Context, identity dto.Identity) (*dto.MatchingView, error)
	FindCandidatesForAllJobs(ctx context.Context, minMatchPercentage float64) (*dto.JobCandidateMatchesView, error)
	FindJobsForCandidate(ctx context.Context, applicantID int, minMatchPercentage float64) (*dto.CandidateJobMatchesView, error)
}

// MatchingAPI is the slice of the backend client the aggregation needs.
type MatchingAPI interface {
	ListJobs(ctx context.Context) ([]dto.Job, error)
	ListApplicants(ctx context.Context) ([]dto.Applicant, error)
	CandidatesForJob(ctx context.Context, jobID int, minMatchPercentage float64) (*dto.JobCandidatesResponse, error)
	MatchesForApplicant(ctx context.Context, applicantID int, minMatchPercentage float64) (*dto.ApplicantMatchesResponse, error)
}

type matchingService struct {
	backend   MatchingAPI
	logger    logger.ILogger
	maxFanout int
}

func NewMatchingService(backend MatchingAPI, maxFanout int, log logger.ILogger) IMatchingService {
	if maxFanout < 1 {
		maxFanout = 1
	}
	return &matchingService{
		backend:   backend,
		logger:    log,
		maxFanout: maxFanout,
	}
}

// InitialView prepares the matching section: the candidate dropdown plus
// which of the two directions the role unlocks.
func (s *matchingService) InitialView(ctx context.Context, identity dto.Identity) (*dto.MatchingView, error) {
	applicants, err := s.backend.ListApplicants(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.MatchingView{
		Candidates:       applicants,
		JobsToCandidates: identity.IsCompany(),
		CandidatesToJobs: true,
	}, nil
}

// FindCandidatesForAllJobs fans out one candidate query per job, merges
// the rows, and orders the whole set by match percentage descending.
// A job whose query fails contributes nothing; the merge proceeds with
// whatever answered. Queries run concurrently but results keep the job
// list's order before sorting, so ties resolve deterministically.
func (s *matchingService) FindCandidatesForAllJobs(ctx context.Context, minMatchPercentage float64) (*dto.JobCandidateMatchesView, error) {
	jobs, err := s.backend.ListJobs(ctx)
	if err != nil {
		return nil, err
	}

	perJob := make([][]dto.MatchResult, len(jobs))
	sem := make(chan struct{}, s.maxFanout)
	var wg sync.WaitGroup

	for i, job := range jobs {
		wg.Add(1)
		go func(slot int, job dto.Job) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			resp, err := s.backend.CandidatesForJob(ctx, job.ID, minMatchPercentage)
			if err != nil {
				s.logger.Warn("Matching", "Skipping job after candidate query failure", map[string]interface{}{
					"job_id": job.ID,
					"error":  err.Error(),
				})
				return
			}

			rows := make([]dto.MatchResult, 0, len(resp.Candidates))
			for _, c := range resp.Candidates {
				rows = append(rows, dto.MatchResult{
					JobID:           resp.JobID,
					JobTitle:        resp.JobTitle,
					ApplicantID:     c.ApplicantID,
					ApplicantName:   c.Name,
					ApplicantEmail:  c.Email,
					MatchPercentage: c.MatchPercentage,
					MatchedSkills:   c.MatchedSkills,
				})
			}
			perJob[slot] = rows
		}(i, job)
	}
	wg.Wait()

	merged := make([]dto.MatchResult, 0)
	for _, rows := range perJob {
		merged = append(merged, rows...)
	}
	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].MatchPercentage > merged[b].MatchPercentage
	})

	return &dto.JobCandidateMatchesView{
		Total:   len(merged),
		Matches: merged,
	}, nil
}

// FindJobsForCandidate is a single backend query; unlike the job fan-out
// its failure surfaces whole, there is no partial result to salvage.
func (s *matchingService) FindJobsForCandidate(ctx context.Context, applicantID int, minMatchPercentage float64) (*dto.CandidateJobMatchesView, error) {
	resp, err := s.backend.MatchesForApplicant(ctx, applicantID, minMatchPercentage)
	if err != nil {
		return nil, err
	}

	matches := resp.JobMatches
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].MatchPercentage > matches[b].MatchPercentage
	})

	return &dto.CandidateJobMatchesView{
		CandidateName: resp.ApplicantName,
		Total:         resp.TotalMatches,
		Matches:       matches,
	}, nil
}
