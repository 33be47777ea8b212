package controller

import (
	"recruit-console/internal/dto"
	"recruit-console/internal/notify"
	"recruit-console/internal/pkg/serverutils"
	"recruit-console/internal/service"
	"recruit-console/internal/session"

	"github.com/gofiber/fiber/v2"
)

type IInterviewController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type interviewController struct {
	interviewService service.IInterviewService
	sessions         *session.Manager
	toasts           *notify.Hub
}

func NewInterviewController(interviewService service.IInterviewService, sessions *session.Manager, toasts *notify.Hub) IInterviewController {
	return &interviewController{
		interviewService: interviewService,
		sessions:         sessions,
		toasts:           toasts,
	}
}

func (c *interviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interviews")
	h.Get("", c.List)
	h.Post("", c.Schedule)
	h.Put(":id/status", c.UpdateStatus)
	h.Delete(":id", c.Delete)
}

func (c *interviewController) List(ctx *fiber.Ctx) error {
	identity, err := requireIdentity(c.sessions)
	if err != nil {
		return err
	}

	res, err := c.interviewService.ListInterviews(ctx.Context(), identity)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Interviews", res))
}

func (c *interviewController) Schedule(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}

	var req dto.ScheduleInterviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interviewService.Schedule(ctx.Context(), &req)
	if err != nil {
		return err
	}
	c.toasts.Success("Interview scheduled")
	return ctx.JSON(serverutils.SuccessResponse("Interview scheduled", res))
}

func (c *interviewController) UpdateStatus(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateInterviewStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.interviewService.UpdateStatus(ctx.Context(), id, req.Status); err != nil {
		return err
	}
	c.toasts.Success("Interview status updated")
	return ctx.JSON(serverutils.SuccessResponse[any]("Interview status updated", nil))
}

func (c *interviewController) Delete(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.interviewService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	c.toasts.Success("Interview deleted")
	return ctx.JSON(serverutils.SuccessResponse[any]("Interview deleted", nil))
}
