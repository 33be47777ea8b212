package controller

import (
	"recruit-console/internal/api"
	"recruit-console/internal/dto"
	"recruit-console/internal/pkg/serverutils"
	"recruit-console/internal/session"
	"recruit-console/internal/view"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
}

type authController struct {
	sessions *session.Manager
	views    *view.Manager
	backend  *api.Client
}

func NewAuthController(sessions *session.Manager, views *view.Manager, backend *api.Client) IAuthController {
	return &authController{
		sessions: sessions,
		views:    views,
		backend:  backend,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Post("/register", c.Register)
	h.Post("/logout", c.Logout)
	h.Get("/session", c.Session)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	sess, err := c.sessions.Login(ctx.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Logged in", dto.SessionView{
		Identity:      sess.Identity,
		ActiveSection: string(c.views.Active()),
	}))
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.backend.Register(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Registration successful, please log in", nil))
}

// Logout always succeeds; a second call finds nothing to do.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	c.sessions.Logout()
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out", nil))
}

// Session reports the restored or current state so the shell knows which
// view to render on startup.
func (c *authController) Session(ctx *fiber.Ctx) error {
	identity, ok := c.sessions.Identity()
	if !ok {
		return ctx.JSON(serverutils.SuccessResponse[any]("No active session", nil))
	}
	return ctx.JSON(serverutils.SuccessResponse("Active session", dto.SessionView{
		Identity:      identity,
		ActiveSection: string(c.views.Active()),
	}))
}
