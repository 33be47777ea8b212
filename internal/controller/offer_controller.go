package controller

import (
	"recruit-console/internal/dto"
	"recruit-console/internal/notify"
	"recruit-console/internal/pkg/serverutils"
	"recruit-console/internal/service"
	"recruit-console/internal/session"

	"github.com/gofiber/fiber/v2"
)

type IOfferController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type offerController struct {
	offerService service.IOfferService
	sessions     *session.Manager
	toasts       *notify.Hub
}

func NewOfferController(offerService service.IOfferService, sessions *session.Manager, toasts *notify.Hub) IOfferController {
	return &offerController{
		offerService: offerService,
		sessions:     sessions,
		toasts:       toasts,
	}
}

func (c *offerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/offers")
	h.Get("", c.List)
	h.Post("", c.Generate)
	h.Get(":id/download", c.Download)
	h.Delete(":id", c.Delete)
}

func (c *offerController) List(ctx *fiber.Ctx) error {
	identity, err := requireIdentity(c.sessions)
	if err != nil {
		return err
	}

	res, err := c.offerService.ListOffers(ctx.Context(), identity)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Offers", res))
}

func (c *offerController) Generate(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}

	var req dto.GenerateOfferRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.offerService.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}
	c.toasts.Success("Offer letter generated")
	return ctx.JSON(serverutils.SuccessResponse("Offer generated", res))
}

// Download streams the letter through with the backend's filename hint
// preserved.
func (c *offerController) Download(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	doc, err := c.offerService.Download(ctx.Context(), id)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, doc.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return ctx.Send(doc.Data)
}

func (c *offerController) Delete(ctx *fiber.Ctx) error {
	if _, err := requireIdentity(c.sessions); err != nil {
		return err
	}
	id, err := paramInt(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.offerService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	c.toasts.Success("Offer deleted")
	return ctx.JSON(serverutils.SuccessResponse[any]("Offer deleted", nil))
}
