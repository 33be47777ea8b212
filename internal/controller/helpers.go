package controller

import (
	"strconv"

	"recruit-console/internal/dto"
	"recruit-console/internal/session"

	"github.com/gofiber/fiber/v2"
)

// requireIdentity resolves the logged-in identity or fails the request
// with 401 before any backend call is made.
func requireIdentity(sessions *session.Manager) (dto.Identity, error) {
	identity, ok := sessions.Identity()
	if !ok {
		return dto.Identity{}, fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}

func paramInt(ctx *fiber.Ctx, name string) (int, error) {
	id, err := strconv.Atoi(ctx.Params(name))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// queryFloat reads an optional float query value, falling back when the
// parameter is absent or malformed.
func queryFloat(ctx *fiber.Ctx, name string, fallback float64) float64 {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
