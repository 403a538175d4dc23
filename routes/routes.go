package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"roofline/handlers"
	"roofline/middleware"
)

// RegisterScheduleRoutes registers the availability lookups. These back
// the public booking widget so they carry no auth, only the global rate
// limit.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.GET("/month", hb.Schedule.MonthAvailability)
		api.GET("/day", hb.Schedule.DayAvailability)
		api.GET("/hours", hb.Schedule.OperatingHours)
	}
}

// RegisterAppointmentRoutes registers the appointment endpoints used by
// signed-in reps.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.RepAuthMiddleware())
		api.POST("", hb.Appt.CreateAppointment)
		api.GET("", hb.Appt.ListAppointments)
		api.GET("/:id", hb.Appt.GetAppointment)
		api.DELETE("/:id", hb.Appt.DeleteAppointment)
		api.PATCH("/:id/summary", hb.Appt.UpdateSummary)
	}
}

// RegisterAdminRoutes sets up the block-rule management endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/block-rules", hb.BlockRule.ListBlockRules)
		adminGroup.POST("/block-rules", hb.BlockRule.CreateBlockRule)
		adminGroup.DELETE("/block-rules/:id", hb.BlockRule.DeleteBlockRule)
		adminGroup.POST("/block-rules/reconcile", hb.BlockRule.ReconcileBlockRules)
	}
}

// RegisterCallbackRoutes registers the callback-tracker endpoints.
func RegisterCallbackRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/callbacks")
	{
		api.Use(middleware.RepAuthMiddleware())
		api.GET("", hb.Callback.ListCallbacks)
		api.POST("", hb.Callback.CreateCallback)
		api.PATCH("/:id/status", hb.Callback.UpdateCallbackStatus)
		api.DELETE("/:id", hb.Callback.DeleteCallback)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthCheck)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterScheduleRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterCallbackRoutes(r, hb)
	RegisterHealthRoute(r)
}
