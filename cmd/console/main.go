package main

import (
	"log"

	"recruit-console/internal/bootstrap"
	"recruit-console/internal/config"
	"recruit-console/internal/server"

	"github.com/fatih/color"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Restore any cached session before serving
	if sess := container.Sessions.Restore(); sess != nil {
		container.Views.EnterLoggedIn()
		color.Green("Resumed session for %s (%s)", sess.Identity.Username, sess.Identity.Role)
	} else {
		color.Yellow("No cached session, starting at the login view")
	}

	// 4. Start the toast hub
	go container.ToastHub.Run()

	// 5. Initialize and run the server
	srv := server.New(cfg, container)
	color.Cyan("Backend: %s", cfg.Backend.BaseURL)
	log.Fatal(srv.Run())
}
