package bootstrap

import (
	"context"

	"recruit-console/internal/dto"
	"recruit-console/internal/service"
	"recruit-console/internal/session"
	"recruit-console/internal/view"
)

// registerLoaders binds each section to its data fetch. Loaders resolve
// the identity at call time, so a view entered right after login sees
// the fresh session.
func registerLoaders(
	views *view.Manager,
	sessions *session.Manager,
	dashboards service.IDashboardService,
	jobs service.IJobService,
	applicants service.IApplicantService,
	interviews service.IInterviewService,
	offers service.IOfferService,
	applications service.IApplicationService,
	matching service.IMatchingService,
) {
	withIdentity := func(load func(ctx context.Context, identity dto.Identity) (interface{}, error)) view.Loader {
		return func(ctx context.Context) (interface{}, error) {
			identity, ok := sessions.Identity()
			if !ok {
				return nil, view.ErrNotAuthenticated
			}
			return load(ctx, identity)
		}
	}

	views.Register(view.SectionDashboard, withIdentity(func(ctx context.Context, identity dto.Identity) (interface{}, error) {
		return dashboards.Stats(ctx, identity)
	}))
	views.Register(view.SectionJobs, withIdentity(func(ctx context.Context, identity dto.Identity) (interface{}, error) {
		return jobs.ListJobs(ctx, identity)
	}))
	views.Register(view.SectionApplicants, withIdentity(func(ctx context.Context, identity dto.Identity) (interface{}, error) {
		return applicants.ListApplicants(ctx, identity)
	}))
	views.Register(view.SectionInterviews, withIdentity(func(ctx context.Context, identity dto.Identity) (interface{}, error) {
		return interviews.ListInterviews(ctx, identity)
	}))
	views.Register(view.SectionOffers, withIdentity(func(ctx context.Context, identity dto.Identity) (interface{}, error) {
		return offers.ListOffers(ctx, identity)
	}))
	views.Register(view.SectionApplications, withIdentity(func(ctx context.Context, identity dto.Identity) (interface{}, error) {
		return applications.ListApplications(ctx, identity)
	}))
	views.Register(view.SectionMatching, withIdentity(func(ctx context.Context, identity dto.Identity) (interface{}, error) {
		return matching.InitialView(ctx, identity)
	}))
}
