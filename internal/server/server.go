package server

import (
	"log"

	"recruit-console/internal/bootstrap"
	"recruit-console/internal/config"
	"recruit-console/internal/notify"
	"recruit-console/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // resumes go through as multipart
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:" + cfg.App.Port,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Static shell assets
	app.Static("/", "./web")

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Console is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.ViewController.RegisterRoutes(api)

	c.JobController.RegisterRoutes(api)
	c.ApplicantController.RegisterRoutes(api)
	c.InterviewController.RegisterRoutes(api)
	c.OfferController.RegisterRoutes(api)
	c.ApplicationController.RegisterRoutes(api)
	c.MatchingController.RegisterRoutes(api)

	// Toast channel
	app.Use("/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/toasts", websocket.New(func(conn *websocket.Conn) {
		notify.ServeWs(c.ToastHub, conn)
	}))
}
