package controller

import (
	"recruit-console/internal/dto"
	"recruit-console/internal/notify"
	"recruit-console/internal/pkg/serverutils"
	"recruit-console/internal/service"
	"recruit-console/internal/session"

	"github.com/gofiber/fiber/v2"
)

type IJobController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Apply(ctx *fiber.Ctx) error
}

type jobController struct {
	jobService         service.IJobService
	applicationService service.IApplicationService
	sessions           *session.Manager
	toasts             *notify.Hub
}

func NewJobController(jobService service.IJobService, applicationService service.IApplicationService, sessions *session.Manager, toasts *notify.Hub) IJobController {
	return &jobController{
		jobService:         jobService,
		applicationService: applicationService,
		sessions:           sessions,
		toasts:             toasts,
	}
}

func (c *jobController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/jobs")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/apply", c.Apply)
}

func (c *jobController) List(ctx *fiber.Ctx) error {
	identity, err := requireIdentity(c.sessions)
	if err != nil {
		return err
	}

	res, err := c.jobService.ListJobs(ctx.Context(), identity)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Jobs", res))
}

// Show fetches one job fresh for the edit form.
func (c *jobController) Show(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.jobService.GetJob(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Job", res))
}

func (c *jobController) Create(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}

	var req dto.SaveJobRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.jobService.SaveJob(ctx.Context(), 0, &req)
	if err != nil {
		return err
	}
	c.toasts.Success("Job posted")
	return ctx.JSON(serverutils.SuccessResponse("Job created", res))
}

func (c *jobController) Update(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.SaveJobRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.jobService.SaveJob(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	c.toasts.Success("Job updated")
	return ctx.JSON(serverutils.SuccessResponse("Job updated", res))
}

func (c *jobController) Delete(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.jobService.DeleteJob(ctx.Context(), id); err != nil {
		return err
	}
	c.toasts.Success("Job deleted")
	return ctx.JSON(serverutils.SuccessResponse[any]("Job deleted", nil))
}

// Apply resolves the caller's profile and submits, or returns the
// profile list when the choice must be made first.
func (c *jobController) Apply(ctx *fiber.Ctx) error {
	identity, err := requireIdentity(c.sessions)
	if err != nil {
		return err
	}
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	outcome, err := c.applicationService.ApplyForJob(ctx.Context(), identity, id)
	if err != nil {
		return err
	}
	if outcome.Submitted {
		c.toasts.Success("Application submitted")
		return ctx.JSON(serverutils.SuccessResponse("Application submitted", outcome))
	}
	return ctx.JSON(serverutils.SuccessResponse("Choose a profile to apply with", outcome))
}
