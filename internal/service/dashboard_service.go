package service

import (
	"context"
	"sync"

	"recruit-console/internal/dto"
	"recruit-console/internal/pkg/logger"
)

type IDashboardService interface {
	Stats(ctx context.Context, identity dto.Identity) (*dto.DashboardView, error)
}

type DashboardAPI interface {
	ListJobs(ctx context.Context) ([]dto.Job, error)
	ListApplicants(ctx context.Context) ([]dto.Applicant, error)
	ListInterviews(ctx context.Context) ([]dto.Interview, error)
	ListOffers(ctx context.Context) ([]dto.Offer, error)
}

type dashboardService struct {
	backend DashboardAPI
	logger  logger.ILogger
}

func NewDashboardService(backend DashboardAPI, log logger.ILogger) IDashboardService {
	return &dashboardService{backend: backend, logger: log}
}

// Stats fetches the per-role counters in parallel. Company users see all
// four; applicants only interviews and offers. A counter whose fetch
// failed keeps its empty value rather than sinking the whole dashboard.
func (s *dashboardService) Stats(ctx context.Context, identity dto.Identity) (*dto.DashboardView, error) {
	view := &dto.DashboardView{}
	var mu sync.Mutex
	var wg sync.WaitGroup

	count := func(name string, fetch func() (int, error), assign func(int)) {
		defer wg.Done()
		n, err := fetch()
		if err != nil {
			s.logger.Warn("Dashboard", "Stat fetch failed", map[string]interface{}{
				"stat":  name,
				"error": err.Error(),
			})
			return
		}
		mu.Lock()
		assign(n)
		mu.Unlock()
	}

	wg.Add(2)
	go count("interviews", func() (int, error) {
		items, err := s.backend.ListInterviews(ctx)
		return len(items), err
	}, func(n int) { view.Interviews = n })
	go count("offers", func() (int, error) {
		items, err := s.backend.ListOffers(ctx)
		return len(items), err
	}, func(n int) { view.Offers = n })

	if identity.IsCompany() {
		wg.Add(2)
		go count("jobs", func() (int, error) {
			items, err := s.backend.ListJobs(ctx)
			return len(items), err
		}, func(n int) { view.Jobs = &n })
		go count("applicants", func() (int, error) {
			items, err := s.backend.ListApplicants(ctx)
			return len(items), err
		}, func(n int) { view.Applicants = &n })
	}

	wg.Wait()
	return view, nil
}
