package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recruit-ops/internal/api/http/handlers"
	"github.com/spec-kit/recruit-ops/internal/auth"
	"github.com/spec-kit/recruit-ops/internal/domain"
)

const maxBodyBytes = 10 * 1024 * 1024

// NewApp builds the fiber app. Immutable is required because the in-memory
// stores keep request strings after the handler returns.
func NewApp(name string) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               name,
		BodyLimit:             maxBodyBytes,
		Immutable:             true,
		DisableStartupMessage: true,
	})
}

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Auth            *handlers.AuthHandler
	Dashboard       *handlers.DashboardHandler
	HR              *handlers.HRHandler
	Facilities      *handlers.FacilityHandler
	JobPostings     *handlers.JobPostingHandler
	Bench           *handlers.BenchHandler
	JobApplications *handlers.JobApplicationHandler
	Tools           *handlers.ToolsHandler
	AuthMiddleware  *auth.AuthMiddleware
	// SubmitLimiter guards the public application endpoint. Nil disables it.
	SubmitLimiter fiber.Handler
	Metrics       fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics)
	}

	api := app.Group("/api")
	authn := cfg.AuthMiddleware.Handle
	operator := auth.RequireRole(domain.RoleAdmin, domain.RoleRecruiter)
	admin := auth.RequireRole(domain.RoleAdmin)

	api.Post("/auth/login", cfg.Auth.Login)
	api.Get("/auth/me", authn, auth.RequireAnyRole(), cfg.Auth.Me)
	api.Put("/auth/password", authn, auth.RequireAnyRole(), cfg.Auth.ChangePassword)

	api.Get("/dashboard/stats", cfg.Dashboard.Stats)
	api.Get("/dashboard/activity", cfg.Dashboard.Activity)
	api.Get("/dashboard/overview", cfg.Dashboard.Overview)
	api.Get("/dashboard/rooms", cfg.Facilities.DashboardRooms)
	api.Get("/dashboard/requests", cfg.Facilities.DashboardRequests)
	api.Get("/dashboard/performance", cfg.Facilities.DashboardPerformance)

	api.Get("/candidates", cfg.HR.ListCandidates)
	api.Get("/candidates/:id", cfg.HR.GetCandidate)
	api.Put("/candidates/:id/status", authn, operator, cfg.HR.UpdateCandidateStatus)

	api.Get("/positions", cfg.HR.ListPositions)
	api.Get("/positions/:id", cfg.HR.GetPosition)
	api.Put("/positions/:id/status", authn, operator, cfg.HR.UpdatePositionStatus)

	api.Get("/recruiters", cfg.HR.ListRecruiters)
	api.Get("/recruiters/:id", cfg.HR.GetRecruiter)
	api.Put("/recruiters/:id/status", authn, operator, cfg.HR.UpdateRecruiterStatus)

	api.Get("/applications", cfg.HR.ListApplications)
	api.Get("/applications/:id", cfg.HR.GetApplication)
	api.Post("/applications", cfg.HR.SubmitApplication)
	api.Put("/applications/:id/status", authn, operator, cfg.HR.UpdateApplicationStatus)
	api.Post("/applications/:id/hire", authn, operator, cfg.HR.Hire)

	api.Get("/departments", cfg.HR.ListDepartments)
	api.Put("/departments/:name/head", authn, operator, cfg.HR.UpdateDepartmentHead)
	api.Post("/departments/:name/refresh", authn, operator, cfg.HR.RefreshDepartment)

	api.Get("/onboarding", cfg.HR.ListOnboarding)
	api.Get("/onboarding/:id", cfg.HR.GetOnboarding)
	api.Put("/onboarding/:id/tasks/:taskId", authn, operator, cfg.HR.UpdateOnboardingTask)

	api.Get("/rooms", cfg.Facilities.ListRooms)
	api.Put("/rooms/:id/status", authn, operator, cfg.Facilities.UpdateRoomStatus)

	api.Get("/requests", cfg.Facilities.ListRequests)
	api.Put("/requests/:id/status", authn, operator, cfg.Facilities.UpdateRequestStatus)

	api.Get("/inventory", cfg.Facilities.ListInventory)
	api.Put("/inventory/:id/quantity", authn, operator, cfg.Facilities.UpdateInventoryQuantity)

	api.Post("/operations/daily", authn, admin, cfg.HR.RunDailyOperations)

	api.Get("/public-jobs", cfg.JobPostings.PublicJobs)
	api.Get("/job-postings", cfg.JobPostings.List)
	api.Get("/job-postings/:id", cfg.JobPostings.Get)
	api.Post("/job-postings", authn, operator, cfg.JobPostings.Create)
	api.Put("/job-postings/:id/status", authn, operator, cfg.JobPostings.UpdateStatus)

	api.Get("/bench-list", cfg.Bench.List)
	api.Get("/bench-list/export", cfg.Bench.Export)
	api.Post("/bench-list", authn, operator, cfg.Bench.Create)
	api.Post("/bench-list/upload", authn, operator, cfg.Bench.Upload)

	submit := []fiber.Handler{}
	if cfg.SubmitLimiter != nil {
		submit = append(submit, cfg.SubmitLimiter)
	}
	api.Post("/job-application", append(submit, cfg.JobApplications.Submit)...)
	api.Get("/job-application", authn, operator, cfg.JobApplications.List)
	api.Get("/job-application/:id/resume", authn, operator, cfg.JobApplications.Resume)

	api.Get("/tools", cfg.Tools.List)
	api.Post("/tools/:name", cfg.Tools.Calculate)
}
