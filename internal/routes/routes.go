package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Wisofer/GlowNic-sub000/internal/audit"
	"github.com/Wisofer/GlowNic-sub000/internal/config"
	"github.com/Wisofer/GlowNic-sub000/internal/events"
	"github.com/Wisofer/GlowNic-sub000/internal/handlers"
	infraRepo "github.com/Wisofer/GlowNic-sub000/internal/infra/repository"
	"github.com/Wisofer/GlowNic-sub000/internal/middleware"
	"github.com/Wisofer/GlowNic-sub000/internal/timezone"
	ucAppointment "github.com/Wisofer/GlowNic-sub000/internal/usecase/appointment"
	ucSchedule "github.com/Wisofer/GlowNic-sub000/internal/usecase/schedule"
	ucTenant "github.com/Wisofer/GlowNic-sub000/internal/usecase/tenant"
)

// Deps reúne as dependências de infraestrutura criadas no main.
type Deps struct {
	DB        *gorm.DB
	Redis     *redis.Client // opcional
	Config    *config.Config
	Audit     *audit.Dispatcher
	Publisher events.Publisher
	Clock     timezone.Clock
	Log       *slog.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewGormRepository(d.DB)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	appointmentUC := handlers.AppointmentUseCases{
		Create:       ucAppointment.NewCreateAppointment(repo, d.Audit, d.Publisher, d.Clock),
		Update:       ucAppointment.NewUpdateAppointment(repo, d.Audit, d.Publisher, d.Clock),
		UpdateStatus: ucAppointment.NewUpdateAppointmentStatus(repo, d.Audit, d.Publisher, d.Clock),
		Delete:       ucAppointment.NewDeleteAppointment(repo, d.Audit, d.Publisher),
		List:         ucAppointment.NewListAppointments(repo),
		Get:          ucAppointment.NewGetAppointment(repo),
		Availability: ucAppointment.NewGetAvailability(repo),
		Check:        ucAppointment.NewCheckAvailability(repo),
	}

	resolveSalonUC := ucTenant.NewResolveSalon(repo)
	deactivateSalonUC := ucTenant.NewDeactivateSalon(repo, d.Audit)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(d.DB, d.Redis)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUC, d.Log)
	publicHandler := handlers.NewPublicHandler(
		d.DB,
		resolveSalonUC,
		appointmentUC.Availability,
		appointmentUC.Create,
		d.Log,
	)
	salonHandler := handlers.NewSalonHandler(d.DB, deactivateSalonUC, d.Log)
	serviceHandler := handlers.NewServiceHandler(d.DB, d.Audit, d.Log)
	workingHoursHandler := handlers.NewWorkingHoursHandler(
		ucSchedule.NewSetWorkingHours(repo, d.Audit),
		ucSchedule.NewListWorkingHours(repo),
		d.Log,
	)
	blockedTimeHandler := handlers.NewBlockedTimeHandler(
		ucSchedule.NewCreateBlockedTime(repo, d.Audit),
		ucSchedule.NewListBlockedTimes(repo),
		ucSchedule.NewDeleteBlockedTime(repo, d.Audit),
		d.Log,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB), d.Log)

	r.GET("/healthz", healthHandler.Healthz)
	r.GET("/readyz", healthHandler.Readyz)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("", salonHandler.GetMe)

			secured.GET("/salon", salonHandler.Get)
			secured.PATCH("/salon", salonHandler.Update)
			secured.POST("/salon/deactivate", salonHandler.Deactivate)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/working-hours", workingHoursHandler.Get)
			secured.PUT("/working-hours", workingHoursHandler.Update)

			secured.GET("/blocked-times", blockedTimeHandler.List)
			secured.POST("/blocked-times", blockedTimeHandler.Create)
			secured.DELETE("/blocked-times/:id", blockedTimeHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/availability", appointmentHandler.Availability)
			secured.GET("/availability/check", appointmentHandler.CheckSlot)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
