package controller

import (
	"errors"

	"recruit-console/internal/pkg/serverutils"
	"recruit-console/internal/view"

	"github.com/gofiber/fiber/v2"
)

type IViewController interface {
	RegisterRoutes(r fiber.Router)
	Navigate(ctx *fiber.Ctx) error
}

type viewController struct {
	views *view.Manager
}

func NewViewController(views *view.Manager) IViewController {
	return &viewController{views: views}
}

func (c *viewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/view")
	h.Get("/:section", c.Navigate)
}

// Navigate runs the section's loader and returns the fresh view model.
// Unknown sections answer success with no payload, mirroring a click on
// a link that goes nowhere. Stale loads answer 204 so the shell keeps
// whatever the newer navigation rendered.
func (c *viewController) Navigate(ctx *fiber.Ctx) error {
	section := view.Section(ctx.Params("section"))

	model, err := c.views.Navigate(ctx.Context(), section)
	if err != nil {
		if errors.Is(err, view.ErrNotAuthenticated) {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		if errors.Is(err, view.ErrStale) {
			return ctx.SendStatus(fiber.StatusNoContent)
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Section loaded", model))
}
