package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bereketw/itadmin-api/internal/application/auth"
	"github.com/bereketw/itadmin-api/internal/application/report"
	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/application/usecase"
	infrapdf "github.com/bereketw/itadmin-api/internal/infrastructure/pdf"
	"github.com/bereketw/itadmin-api/internal/infrastructure/postgres"
	httpRouter "github.com/bereketw/itadmin-api/internal/interfaces/http"
	"github.com/bereketw/itadmin-api/pkg/config"
	"github.com/bereketw/itadmin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	districtRepo := postgres.NewDistrictRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	traineeRepo := postgres.NewTraineeRepository(pool)
	deviceRepo := postgres.NewDeviceRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := scope.NewResolver(districtRepo)

	districtUC := usecase.NewDistrictUseCase(districtRepo, txRunner)
	userUC := usecase.NewUserUseCase(userRepo, districtRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	sessionUC := usecase.NewSessionUseCase(sessionRepo, categoryRepo, resolver, txRunner)
	traineeUC := usecase.NewTraineeUseCase(traineeRepo, sessionRepo, resolver)
	deviceUC := usecase.NewDeviceUseCase(deviceRepo, resolver, txRunner)
	maintenanceUC := usecase.NewMaintenanceUseCase(maintenanceRepo, deviceRepo, resolver)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, resolver)

	// PDF: printable session report with the trainee roster
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	sessionReportUC := report.NewSessionReportUseCase(sessionRepo, traineeRepo, resolver, pdfGenerator)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "IT Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		DistrictUC:    districtUC,
		UserUC:        userUC,
		CategoryUC:    categoryUC,
		SessionUC:     sessionUC,
		SessionReport: sessionReportUC,
		TraineeUC:     traineeUC,
		DeviceUC:      deviceUC,
		MaintenanceUC: maintenanceUC,
		DashboardUC:   dashboardUC,
		Logger:        log,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
