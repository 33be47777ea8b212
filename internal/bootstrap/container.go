package bootstrap

import (
	"recruit-console/internal/api"
	"recruit-console/internal/config"
	"recruit-console/internal/controller"
	"recruit-console/internal/notify"
	"recruit-console/internal/pkg/logger"
	"recruit-console/internal/service"
	"recruit-console/internal/session"
	"recruit-console/internal/view"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	ViewController        controller.IViewController
	JobController         controller.IJobController
	ApplicantController   controller.IApplicantController
	InterviewController   controller.IInterviewController
	OfferController       controller.IOfferController
	ApplicationController controller.IApplicationController
	MatchingController    controller.IMatchingController

	// Shared state
	Sessions *session.Manager
	Views    *view.Manager
	ToastHub *notify.Hub
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	toastLogger := logger.NewIsolatedLogger(cfg.App.LogFilePath)

	// Session manager doubles as the backend client's token source, so
	// it is built first and the client attached after.
	store := session.NewFileStore(cfg.App.SessionFilePath)
	sessions := session.NewManager(store, sysLogger)

	backend := api.NewClient(cfg.Backend.BaseURL, cfg.Backend.RequestTimeout, sessions, sysLogger)
	sessions.AttachBackend(backend)

	toastHub := notify.NewHub(toastLogger)
	views := view.NewManager(sessions, sysLogger)

	// Services
	fanout := cfg.Backend.MatchFanout
	dashboardService := service.NewDashboardService(backend, sysLogger)
	jobService := service.NewJobService(backend, fanout, sysLogger)
	applicantService := service.NewApplicantService(backend, sysLogger)
	interviewService := service.NewInterviewService(backend, fanout, sysLogger)
	offerService := service.NewOfferService(backend, fanout, sysLogger)
	applicationService := service.NewApplicationService(backend, fanout, sysLogger)
	matchingService := service.NewMatchingService(backend, fanout, sysLogger)

	// Session transitions drive the view state machine and the toasts.
	sessions.SetOnLogin(func(s session.Session) {
		views.EnterLoggedIn()
		toastHub.Success("Welcome back, " + s.Identity.Username)
	})
	sessions.SetOnLogout(func() {
		views.Reset()
		toastHub.Info("Session ended")
	})

	// A 401 from any authenticated call tears the session down exactly
	// once; the logout transition above handles the rest.
	backend.SetAuthFailureHook(sessions.Logout)

	registerLoaders(views, sessions, dashboardService, jobService, applicantService, interviewService, offerService, applicationService, matchingService)

	return &Container{
		AuthController:        controller.NewAuthController(sessions, views, backend),
		ViewController:        controller.NewViewController(views),
		JobController:         controller.NewJobController(jobService, applicationService, sessions, toastHub),
		ApplicantController:   controller.NewApplicantController(applicantService, sessions, toastHub),
		InterviewController:   controller.NewInterviewController(interviewService, sessions, toastHub),
		OfferController:       controller.NewOfferController(offerService, sessions, toastHub),
		ApplicationController: controller.NewApplicationController(applicationService, sessions, toastHub),
		MatchingController:    controller.NewMatchingController(matchingService, sessions),

		Sessions: sessions,
		Views:    views,
		ToastHub: toastHub,
	}
}
