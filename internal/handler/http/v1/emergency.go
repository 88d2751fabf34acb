package v1

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/jeevan_setu/internal/geo"
	"github.com/shenikar/jeevan_setu/internal/models"
)

// streamHeartbeat - интервал комментариев keep-alive в потоке консоли
const streamHeartbeat = 15 * time.Second

var (
	hospitalPhases = []models.Phase{models.PhasePrecheck, models.PhaseDispatching, models.PhaseLocked}
	driverPhases   = []models.Phase{models.PhaseDispatching}
)

func (h *Handler) consoleResponse(view *models.ConsoleView) *ConsoleResponse {
	return ModelToConsoleResponse(view, h.emergencyService.WatchOptions())
}

// @Summary Open the emergency console
// @Description Open the patient's emergency console and start location tracking. Returns the open console if there is one.
// @Tags Emergency
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param console body OpenConsoleRequest false "Device capabilities"
// @Success 200 {object} ConsoleResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/console [post]
func (h *Handler) openConsole(c *gin.Context) {
	sess, _ := currentSession(c)
	log := h.logger.WithField("method", "openConsole").WithField("user_id", sess.UserID)

	var input OpenConsoleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}
	gpsSupported := input.GPSSupported == nil || *input.GPSSupported

	view, err := h.emergencyService.OpenConsole(c.Request.Context(), sess.UserID, gpsSupported)
	if err != nil {
		respondError(c, log, err, "Failed to open emergency console in service")
		return
	}
	c.JSON(http.StatusOK, h.consoleResponse(view))
}

// @Summary Get the emergency console
// @Description Current phase, button label, timeline and location state of the patient's console.
// @Tags Emergency
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ConsoleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Console is not open"
// @Router /emergency/console [get]
func (h *Handler) getConsole(c *gin.Context) {
	sess, _ := currentSession(c)
	log := h.logger.WithField("method", "getConsole").WithField("user_id", sess.UserID)

	view, err := h.emergencyService.Console(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, log, err, "Failed to get emergency console from service")
		return
	}
	c.JSON(http.StatusOK, h.consoleResponse(view))
}

// @Summary Close the emergency console
// @Description Cancel an unfinished dispatch and release location tracking.
// @Tags Emergency
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Console is not open"
// @Router /emergency/console [delete]
func (h *Handler) closeConsole(c *gin.Context) {
	sess, _ := currentSession(c)
	log := h.logger.WithField("method", "closeConsole").WithField("user_id", sess.UserID)

	if err := h.emergencyService.CloseConsole(c.Request.Context(), sess.UserID); err != nil {
		respondError(c, log, err, "Failed to close emergency console in service")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Trigger an emergency dispatch
// @Description Ping preferred hospitals and start the dispatch sequence. A console that already dispatched is returned unchanged.
// @Tags Emergency
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ConsoleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Console is not open"
// @Failure 502 {object} map[string]any "Dispatch aborted, body carries the console"
// @Router /emergency/trigger [post]
func (h *Handler) trigger(c *gin.Context) {
	sess, _ := currentSession(c)
	log := h.logger.WithField("method", "trigger").WithField("user_id", sess.UserID)

	view, err := h.emergencyService.Trigger(c.Request.Context(), sess.UserID)
	if err != nil {
		if view != nil {
			log.WithError(err).Error("Emergency dispatch aborted")
			c.JSON(http.StatusBadGateway, gin.H{"error": "dispatch aborted", "console": h.consoleResponse(view)})
			return
		}
		respondError(c, log, err, "Failed to trigger emergency in service")
		return
	}
	c.JSON(http.StatusOK, h.consoleResponse(view))
}

// @Summary Restart location tracking
// @Description Drop the current position subscription and request a fresh one, e.g. after permission was granted.
// @Tags Emergency
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ConsoleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Console is not open"
// @Router /emergency/location/restart [post]
func (h *Handler) restartLocation(c *gin.Context) {
	sess, _ := currentSession(c)
	log := h.logger.WithField("method", "restartLocation").WithField("user_id", sess.UserID)

	view, err := h.emergencyService.RestartLocation(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, log, err, "Failed to restart location tracking in service")
		return
	}
	c.JSON(http.StatusOK, h.consoleResponse(view))
}

// @Summary Stream the emergency console
// @Description Server-sent events with the console state. The first event is the current state.
// @Tags Emergency
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {object} ConsoleResponse "event: console"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Console is not open"
// @Router /emergency/stream [get]
func (h *Handler) streamConsole(c *gin.Context) {
	sess, _ := currentSession(c)
	log := h.logger.WithField("method", "streamConsole").WithField("user_id", sess.UserID)

	updates, unsubscribe, err := h.emergencyService.Subscribe(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, log, err, "Failed to subscribe to emergency console")
		return
	}
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	log.Debug("Console stream opened")
	c.Stream(func(w io.Writer) bool {
		select {
		case view, ok := <-updates:
			if !ok {
				c.SSEvent("closed", gin.H{"reason": "console closed"})
				return false
			}
			c.SSEvent("console", h.consoleResponse(&view))
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", gin.H{"at": time.Now().UTC()})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
	log.Debug("Console stream closed")
}

// @Summary Submit a position fix
// @Description Position fix from the patient's device.
// @Tags Location
// @Accept json
// @Security BearerAuth
// @Param fix body FixRequest true "Position fix"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/fixes [post]
func (h *Handler) submitFix(c *gin.Context) {
	sess, _ := currentSession(c)
	log := h.logger.WithField("method", "submitFix").WithField("user_id", sess.UserID)

	var input FixRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.emergencyService.PublishFix(c.Request.Context(), sess.UserID, DTOToFix(input, time.Now().UTC())); err != nil {
		respondError(c, log, err, "Failed to publish position fix in service")
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Submit a positioning error
// @Description Positioning failure from the patient's device: "denied" or "unavailable".
// @Tags Location
// @Accept json
// @Security BearerAuth
// @Param error body PositionErrorRequest true "Positioning error"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/errors [post]
func (h *Handler) submitPositionError(c *gin.Context) {
	sess, _ := currentSession(c)
	log := h.logger.WithField("method", "submitPositionError").WithField("user_id", sess.UserID)

	var input PositionErrorRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	err := h.emergencyService.PublishPositionError(c.Request.Context(), sess.UserID, geo.ErrorReason(input.Reason))
	if err != nil {
		respondError(c, log, err, "Failed to publish position error in service")
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Get location watch options
// @Description Options the device should watch its position with.
// @Tags Location
// @Produce json
// @Security BearerAuth
// @Success 200 {object} WatchOptionsResponse
// @Router /location/options [get]
func (h *Handler) watchOptions(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToWatchOptionsResponse(h.emergencyService.WatchOptions()))
}

// @Summary List driver job requests
// @Description Dispatches waiting for an ambulance. Requires a driver session.
// @Tags Dashboards
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} DispatchResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /driver/jobs [get]
func (h *Handler) listDriverJobs(c *gin.Context) {
	h.listDispatches(c, "listDriverJobs", driverPhases)
}

// @Summary List live emergencies
// @Description Active dispatches for the hospital dashboard. Requires a hospital session.
// @Tags Dashboards
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} DispatchResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hospital/emergencies [get]
func (h *Handler) listHospitalEmergencies(c *gin.Context) {
	h.listDispatches(c, "listHospitalEmergencies", hospitalPhases)
}

func (h *Handler) listDispatches(c *gin.Context, method string, phases []models.Phase) {
	log := h.logger.WithField("method", method)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	dispatches, err := h.emergencyService.ListDispatches(c.Request.Context(), phases, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list dispatches from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToDispatchResponses(dispatches))
}
