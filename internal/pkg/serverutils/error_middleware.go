package serverutils

import (
	"errors"

	"recruit-console/internal/api"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors bubbling out of handlers into
// the standard envelope. Backend errors keep their taxonomy: auth
// failures answer 401 so the shell can drop to the login view, rejected
// requests carry the backend's own message, transport and server faults
// collapse to the generic retry message. The console's own validation
// rejections answer 400.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			status := fiber.StatusBadGateway
			switch apiErr.Kind {
			case api.KindAuth:
				status = fiber.StatusUnauthorized
			case api.KindRejected:
				status = apiErr.Status
				if status == 0 {
					status = fiber.StatusBadRequest
				}
			}
			return ctx.Status(status).JSON(ErrorResponse(status, apiErr.Message))
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, validationErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}
