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

	appanalytics "github.com/cvargas/propiedades-api/internal/application/analytics"
	"github.com/cvargas/propiedades-api/internal/application/auth"
	"github.com/cvargas/propiedades-api/internal/application/contracts"
	"github.com/cvargas/propiedades-api/internal/application/occupancy"
	"github.com/cvargas/propiedades-api/internal/application/reminders"
	"github.com/cvargas/propiedades-api/internal/application/usecase"
	infracache "github.com/cvargas/propiedades-api/internal/infrastructure/cache"
	infrapdf "github.com/cvargas/propiedades-api/internal/infrastructure/pdf"
	"github.com/cvargas/propiedades-api/internal/infrastructure/postgres"
	infrasms "github.com/cvargas/propiedades-api/internal/infrastructure/sms"
	httpRouter "github.com/cvargas/propiedades-api/internal/interfaces/http"
	"github.com/cvargas/propiedades-api/pkg/config"
	"github.com/cvargas/propiedades-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	tenantRepo := postgres.NewTenantRepository(pool)
	propertyRepo := postgres.NewPropertyRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	leaseRepo := postgres.NewLeaseRepository(pool)
	paymentRepo := postgres.NewRentPaymentRepository(pool)
	maintRepo := postgres.NewMaintenanceRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	propertyUC := usecase.NewPropertyUseCase(propertyRepo, unitRepo)
	occupancyUC := occupancy.NewUseCase(txRunner, tenantRepo, leaseRepo, userRepo, log)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, leaseRepo)
	maintenanceUC := usecase.NewMaintenanceUseCase(maintRepo, unitRepo, tenantRepo)
	notificationUC := usecase.NewNotificationUseCase(notifRepo)

	// Caché en disco para los gráficos del dashboard
	chartCache, err := infracache.NewFileCache(cfg.Cache.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar caché de gráficos")
	}
	cacheTTL := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, chartCache, cacheTTL)
	reportUC := appanalytics.NewReportUseCase(analyticsRepo)

	// SMS: deshabilitado si no hay credenciales de Twilio
	var smsSender reminders.SMSSender
	if sender := infrasms.NewTwilioSender(cfg.SMS); sender != nil {
		smsSender = sender
	} else {
		log.Warn().Msg("TWILIO_ACCOUNT_SID no configurado, SMS deshabilitado")
	}
	remindersUC := reminders.NewUseCase(leaseRepo, paymentRepo, notifRepo, userRepo, smsSender, log)

	// PDF: contrato de arrendamiento en suajili
	contractGenerator := infrapdf.NewMarotoContractGenerator()
	contractsUC := contracts.NewUseCase(leaseRepo, contractGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// El spec se genera con `swag init` y no siempre está presente (imágenes
	// de producción); sin el archivo el middleware haría panic al arrancar.
	const swaggerSpec = "./docs/swagger.json"
	if _, err := os.Stat(swaggerSpec); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpec,
			Path:     "docs",
			Title:    "Propiedades API",
		}))
	} else {
		log.Warn().Str("file", swaggerSpec).Msg("swagger.json no encontrado, UI de docs deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		PropertyUC:     propertyUC,
		OccupancyUC:    occupancyUC,
		PaymentUC:      paymentUC,
		MaintenanceUC:  maintenanceUC,
		NotificationUC: notificationUC,
		DashboardUC:    dashboardUC,
		ReportUC:       reportUC,
		RemindersUC:    remindersUC,
		ContractsUC:    contractsUC,
		JWTSecret:      cfg.JWT.Secret,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
