package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/jeevan_setu/internal/catalog"
	"github.com/shenikar/jeevan_setu/internal/config"
	"github.com/shenikar/jeevan_setu/internal/service"
	"github.com/shenikar/jeevan_setu/internal/session"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	authService      service.AuthService
	profileService   service.ProfileService
	reportService    service.ReportService
	emergencyService service.EmergencyService
	catalog          *catalog.Catalog
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
	reportLimiter    *IPRateLimiter
}

func NewHandler(
	authService service.AuthService,
	profileService service.ProfileService,
	reportService service.ReportService,
	emergencyService service.EmergencyService,
	cat *catalog.Catalog,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authService:      authService,
		profileService:   profileService,
		reportService:    reportService,
		emergencyService: emergencyService,
		catalog:          cat,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
		reportLimiter:    NewIPRateLimiter(cfg.ReportRateLimitRPS, cfg.ReportRateLimitBurst),
	}
}

// errorResponse сопоставляет ошибку сервиса со статусом и текстом ответа
func errorResponse(err error) (int, string) {
	var stepErr *service.StepError
	switch {
	case errors.As(err, &stepErr):
		if errors.Is(err, service.ErrTooFewHospitals) {
			return http.StatusUnprocessableEntity, service.MsgTooFewHospitals
		}
		return http.StatusUnprocessableEntity, service.MsgStepIncomplete
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid phone number or password"
	case errors.Is(err, service.ErrSessionRevoked), errors.Is(err, session.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid or expired session"
	case errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidPositionReason),
		errors.Is(err, service.ErrUnknownIncidentTag):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrPhoneTaken):
		return http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrConsoleNotFound), errors.Is(err, service.ErrUnknownStep):
		return http.StatusNotFound, err.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}

// respondError пишет ответ с ошибкой. Внутренние ошибки логируются как Error, остальные как Warn.
func respondError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	status, text := errorResponse(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error(msg)
	} else {
		log.WithError(err).Warn(msg)
	}
	c.JSON(status, gin.H{"error": text})
}

// bindAndValidate разбирает тело запроса и проверяет его. При ошибке ответ уже записан.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Get display catalog
// @Description Static display data: incident tags, rejection policies, nearby ambulances, hospitals and vitals
// @Tags Catalog
// @Produce json
// @Success 200 {object} catalog.Catalog
// @Router /catalog [get]
func (h *Handler) getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}

// @Summary Submit a bystander report
// @Description Anonymous incident report from a bystander. Rate limited per client IP.
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body ReportRequest true "Bystander report"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or unknown incident tag"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) submitReport(c *gin.Context) {
	var input ReportRequest
	log := h.logger.WithField("method", "submitReport")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	report, err := h.reportService.SubmitReport(c.Request.Context(), DTOToReportInput(input))
	if err != nil {
		respondError(c, log, err, "Failed to submit bystander report in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToReportResponse(report))
}

// @Summary Get dispatch statistics
// @Description Number of distinct patients who triggered an emergency within the stats window. Requires API key.
// @Tags System
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /system/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.emergencyService.Stats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{PatientCount: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
