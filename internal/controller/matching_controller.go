package controller

import (
	"recruit-console/internal/pkg/serverutils"
	"recruit-console/internal/service"
	"recruit-console/internal/session"

	"github.com/gofiber/fiber/v2"
)

type IMatchingController interface {
	RegisterRoutes(r fiber.Router)
	Candidates(ctx *fiber.Ctx) error
	JobsForCandidate(ctx *fiber.Ctx) error
}

type matchingController struct {
	matchingService service.IMatchingService
	sessions        *session.Manager
}

func NewMatchingController(matchingService service.IMatchingService, sessions *session.Manager) IMatchingController {
	return &matchingController{
		matchingService: matchingService,
		sessions:        sessions,
	}
}

func (c *matchingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/matching")
	h.Get("/candidates", c.Candidates)
	h.Get("/applicants/:id/jobs", c.JobsForCandidate)
}

// Candidates runs the jobs-to-candidates aggregation across every job.
func (c *matchingController) Candidates(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}
	min := queryFloat(ctx, "min_match_percentage", 0)

	res, err := c.matchingService.FindCandidatesForAllJobs(ctx.Context(), min)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Candidate matches", res))
}

func (c *matchingController) JobsForCandidate(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}
	min := queryFloat(ctx, "min_match_percentage", 0)

	res, err := c.matchingService.FindJobsForCandidate(ctx.Context(), id, min)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Job matches", res))
}
