package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bereketw/itadmin-api/internal/application/auth"
	"github.com/bereketw/itadmin-api/internal/application/report"
	"github.com/bereketw/itadmin-api/internal/application/usecase"
	"github.com/bereketw/itadmin-api/pkg/logger"
)

// RouterDeps carries the wired use cases for route registration.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	DistrictUC    *usecase.DistrictUseCase
	UserUC        *usecase.UserUseCase
	CategoryUC    *usecase.CategoryUseCase
	SessionUC     *usecase.SessionUseCase
	SessionReport *report.SessionReportUseCase
	TraineeUC     *usecase.TraineeUseCase
	DeviceUC      *usecase.DeviceUseCase
	MaintenanceUC *usecase.MaintenanceUseCase
	DashboardUC   *usecase.DashboardUseCase
	Logger        *logger.Logger
	JWTSecret     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Logger)
	api.Post("/auth/login", authHandler.Login)

	// Protected routes (Bearer token required). Role checks live in the use
	// cases, behind a single policy table.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	districts := protected.Group("/districts")
	districtHandler := NewDistrictHandler(deps.DistrictUC, deps.Logger)
	districts.Get("/zones", districtHandler.ListZones)
	districts.Post("/", districtHandler.Create)
	districts.Get("/", districtHandler.List)
	districts.Get("/:id", districtHandler.GetByID)
	districts.Put("/:id", districtHandler.Update)
	districts.Delete("/:id", districtHandler.Delete)

	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Logger)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Logger)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	sessions := protected.Group("/sessions")
	sessionHandler := NewSessionHandler(deps.SessionUC, deps.SessionReport, deps.Logger)
	traineeHandler := NewTraineeHandler(deps.TraineeUC, deps.Logger)
	sessions.Post("/", sessionHandler.Create)
	sessions.Get("/", sessionHandler.List)
	sessions.Get("/:id", sessionHandler.GetByID)
	sessions.Put("/:id", sessionHandler.Update)
	sessions.Delete("/:id", sessionHandler.Delete)
	sessions.Get("/:id/report", sessionHandler.Report)
	sessions.Get("/:id/trainees", traineeHandler.ListBySession)

	trainees := protected.Group("/trainees")
	trainees.Post("/", traineeHandler.Create)
	trainees.Get("/", traineeHandler.List)
	trainees.Get("/:id", traineeHandler.GetByID)
	trainees.Put("/:id", traineeHandler.Update)
	trainees.Delete("/:id", traineeHandler.Delete)

	devices := protected.Group("/devices")
	deviceHandler := NewDeviceHandler(deps.DeviceUC, deps.Logger)
	devices.Post("/", deviceHandler.Create)
	devices.Get("/", deviceHandler.List)
	devices.Get("/:id", deviceHandler.GetByID)
	devices.Put("/:id", deviceHandler.Update)
	devices.Delete("/:id", deviceHandler.Delete)

	maintenances := protected.Group("/maintenances")
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC, deps.Logger)
	maintenances.Post("/", maintenanceHandler.Create)
	maintenances.Get("/", maintenanceHandler.List)
	maintenances.Get("/:id", maintenanceHandler.GetByID)
	maintenances.Put("/:id", maintenanceHandler.Update)
	maintenances.Delete("/:id", maintenanceHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Logger)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
