package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/jeevan_setu/internal/models"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	requireSession := SessionAuthMiddleware(h.authService, h.logger)

	// Вход, регистрация и выход
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/register", h.register)
		auth.POST("/logout", requireSession, h.logout)
	}
	api.GET("/session/landing", OptionalSessionMiddleware(h.authService, h.logger), h.landing)

	// Публичные маршруты
	api.GET("/catalog", h.getCatalog)
	api.POST("/reports", h.reportLimiter.Middleware(h.logger), h.submitReport)

	patient := api.Group("", requireSession, RequireRole(models.RolePatient))

	// Экстренная консоль пациента
	emergency := patient.Group("/emergency")
	{
		emergency.POST("/console", h.openConsole)
		emergency.GET("/console", h.getConsole)
		emergency.DELETE("/console", h.closeConsole)
		emergency.POST("/trigger", h.trigger)
		emergency.POST("/location/restart", h.restartLocation)
		emergency.GET("/stream", h.streamConsole)
	}

	// Позиция от устройства пациента
	location := patient.Group("/location")
	{
		location.POST("/fixes", h.submitFix)
		location.POST("/errors", h.submitPositionError)
		location.GET("/options", h.watchOptions)
	}

	// Медицинский профиль
	profile := patient.Group("/profile")
	{
		profile.GET("/draft", h.getDraft)
		profile.PUT("/draft", h.saveDraft)
		profile.POST("/draft/hospitals/toggle", h.toggleHospital)
		profile.POST("/steps/:step/validate", h.validateStep)
		profile.POST("", h.submitProfile)
		profile.GET("/summary", h.profileSummary)
	}

	// Дашборды
	api.GET("/driver/jobs", requireSession, RequireRole(models.RoleDriver), h.listDriverJobs)
	api.GET("/hospital/emergencies", requireSession, RequireRole(models.RoleHospital), h.listHospitalEmergencies)

	// Системные маршруты
	api.GET("/system/stats", APIKeyAuthMiddleware(h.cfg, h.logger), h.getStats)
	api.GET("/system/health", h.healthCheck)
}
