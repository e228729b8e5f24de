package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cvargas/propiedades-api/internal/application/analytics"
	"github.com/cvargas/propiedades-api/internal/application/auth"
	"github.com/cvargas/propiedades-api/internal/application/contracts"
	"github.com/cvargas/propiedades-api/internal/application/occupancy"
	"github.com/cvargas/propiedades-api/internal/application/reminders"
	"github.com/cvargas/propiedades-api/internal/application/usecase"
	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	PropertyUC     *usecase.PropertyUseCase
	OccupancyUC    *occupancy.UseCase
	PaymentUC      *usecase.PaymentUseCase
	MaintenanceUC  *usecase.MaintenanceUseCase
	NotificationUC *usecase.NotificationUseCase
	DashboardUC    *analytics.DashboardUseCase
	ReportUC       *analytics.ReportUseCase
	RemindersUC    *reminders.UseCase
	ContractsUC    *contracts.UseCase
	JWTSecret      string
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Escrituras de portafolio y back office reservadas a administración
	staffOnly := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Users (protegido; gestión de cuentas solo admin/manager)
	usersGroup := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	usersGroup.Get("/", staffOnly, userHandler.List)
	usersGroup.Post("/", staffOnly, userHandler.Create)
	usersGroup.Delete("/:id", staffOnly, userHandler.Delete)

	// Properties y Units (protegido; escritura solo admin/manager)
	properties := protected.Group("/properties")
	propertyHandler := NewPropertyHandler(deps.PropertyUC, deps.Log)
	properties.Get("/", propertyHandler.List)
	properties.Get("/:id", propertyHandler.GetByID)
	properties.Get("/:id/units", propertyHandler.ListUnits)
	properties.Post("/", staffOnly, propertyHandler.Create)
	properties.Put("/:id", staffOnly, propertyHandler.Update)
	properties.Delete("/:id", staffOnly, propertyHandler.Delete)

	units := protected.Group("/units")
	units.Get("/vacant", propertyHandler.ListVacantUnits)
	units.Post("/", staffOnly, propertyHandler.CreateUnit)
	units.Put("/:id", staffOnly, propertyHandler.UpdateUnit)
	units.Delete("/:id", staffOnly, propertyHandler.DeleteUnit)

	// Tenants y Leases (protegido; escritura solo admin/manager)
	tenantHandler := NewTenantHandler(deps.OccupancyUC, deps.Log)
	tenants := protected.Group("/tenants")
	tenants.Get("/", staffOnly, tenantHandler.ListTenants)
	tenants.Post("/sync", staffOnly, tenantHandler.SyncTenants)
	tenants.Put("/:id", staffOnly, tenantHandler.UpdateTenant)
	tenants.Delete("/:id", staffOnly, tenantHandler.DeleteTenant)

	leases := protected.Group("/leases")
	contractHandler := NewContractHandler(deps.ContractsUC, deps.Log)
	leases.Get("/", staffOnly, tenantHandler.ListLeases)
	leases.Get("/:id/contract", contractHandler.Download)
	leases.Post("/", staffOnly, tenantHandler.CreateLease)
	leases.Put("/:id", staffOnly, tenantHandler.UpdateLease)
	leases.Delete("/:id", staffOnly, tenantHandler.DeleteLease)

	// Payments (protegido; solo admin/manager)
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.Log)
	payments.Get("/", staffOnly, paymentHandler.ListRecent)
	payments.Post("/", staffOnly, paymentHandler.Create)

	// Maintenance (protegido; cualquier rol autenticado abre y lista,
	// solo administración actualiza o elimina)
	maintenance := protected.Group("/maintenance")
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC, deps.Log)
	maintenance.Post("/", maintenanceHandler.Create)
	maintenance.Get("/", maintenanceHandler.List)
	maintenance.Put("/:id", staffOnly, maintenanceHandler.Update)
	maintenance.Delete("/:id", staffOnly, maintenanceHandler.Delete)

	// Dashboard y reportes (protegido; solo admin/manager)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC, deps.Log)
	protected.Get("/dashboard/summary", staffOnly, dashboardHandler.Summary)
	protected.Get("/reports/payments", staffOnly, dashboardHandler.PaymentReport)

	// Notifications y recordatorios de renta (protegido)
	notificationHandler := NewNotificationHandler(deps.NotificationUC, deps.RemindersUC, deps.Log)
	protected.Get("/notifications", notificationHandler.List)
	protected.Post("/reminders/run", staffOnly, notificationHandler.RunReminders)
	protected.Post("/sms/bulk", staffOnly, notificationHandler.SendBulkSMS)
}
