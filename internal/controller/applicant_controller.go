package controller

import (
	"io"

	"recruit-console/internal/dto"
	"recruit-console/internal/notify"
	"recruit-console/internal/pkg/serverutils"
	"recruit-console/internal/service"
	"recruit-console/internal/session"

	"github.com/gofiber/fiber/v2"
)

type IApplicantController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type applicantController struct {
	applicantService service.IApplicantService
	sessions         *session.Manager
	toasts           *notify.Hub
}

func NewApplicantController(applicantService service.IApplicantService, sessions *session.Manager, toasts *notify.Hub) IApplicantController {
	return &applicantController{
		applicantService: applicantService,
		sessions:         sessions,
		toasts:           toasts,
	}
}

func (c *applicantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/applicants")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Delete(":id", c.Delete)
}

func (c *applicantController) List(ctx *fiber.Ctx) error {
	identity, err := requireIdentity(c.sessions)
	if err != nil {
		return err
	}

	res, err := c.applicantService.ListApplicants(ctx.Context(), identity)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Applicants", res))
}

// Create takes the multipart profile form and forwards the resume bytes
// untouched; parsing and extraction stay server-side.
func (c *applicantController) Create(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Resume file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()
	resume, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	req := dto.CreateApplicantRequest{
		Name:           ctx.FormValue("name"),
		Email:          ctx.FormValue("email"),
		ResumeFilename: fileHeader.Filename,
		Resume:         resume,
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.applicantService.CreateApplicant(ctx.Context(), &req)
	if err != nil {
		return err
	}
	c.toasts.Success("Profile created")
	return ctx.JSON(serverutils.SuccessResponse("Profile created", res))
}

func (c *applicantController) Delete(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.applicantService.DeleteApplicant(ctx.Context(), id); err != nil {
		return err
	}
	c.toasts.Success("Profile deleted")
	return ctx.JSON(serverutils.SuccessResponse[any]("Profile deleted", nil))
}
