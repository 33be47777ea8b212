package controller

import (
	"errors"

	"recruit-console/internal/dto"
	"recruit-console/internal/notify"
	"recruit-console/internal/pkg/serverutils"
	"recruit-console/internal/service"
	"recruit-console/internal/session"

	"github.com/gofiber/fiber/v2"
)

type IApplicationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type applicationController struct {
	applicationService service.IApplicationService
	sessions           *session.Manager
	toasts             *notify.Hub
}

func NewApplicationController(applicationService service.IApplicationService, sessions *session.Manager, toasts *notify.Hub) IApplicationController {
	return &applicationController{
		applicationService: applicationService,
		sessions:           sessions,
		toasts:             toasts,
	}
}

func (c *applicationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/applications")
	h.Get("", c.List)
	h.Post("", c.Submit)
	h.Put(":id/status", c.UpdateStatus)
}

func (c *applicationController) List(ctx *fiber.Ctx) error {
	identity, err := requireIdentity(c.sessions)
	if err != nil {
		return err
	}

	res, err := c.applicationService.ListApplications(ctx.Context(), identity)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Applications", res))
}

// Submit finalizes an apply with an explicitly chosen profile.
func (c *applicationController) Submit(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}

	var req dto.ApplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.applicationService.SubmitApplication(ctx.Context(), req.JobID, req.ApplicantID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyApplied) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return err
	}
	c.toasts.Success("Application submitted")
	return ctx.JSON(serverutils.SuccessResponse("Application submitted", res))
}

func (c *applicationController) UpdateStatus(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.applicationService.UpdateStatus(ctx.Context(), id, req.Status); err != nil {
		return err
	}
	c.toasts.Success("Application status updated")
	return ctx.JSON(serverutils.SuccessResponse[any]("Application status updated", nil))
}
