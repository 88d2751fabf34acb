package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/jeevan_setu/internal/session"
)

// @Summary Log in
// @Description Log in with phone number and password. Returns a session token and the landing path for the role.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid phone number or password"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), input.Phone, input.Password)
	if err != nil {
		respondError(c, log, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, ModelToAuthResponse(result))
}

// @Summary Register
// @Description Register a patient, driver or hospital account and log in.
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body RegisterRequest true "Registration request"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or password mismatch"
// @Failure 409 {object} map[string]string "Phone number is already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), DTOToRegistration(input))
	if err != nil {
		respondError(c, log, err, "Failed to register user")
		return
	}
	c.JSON(http.StatusCreated, ModelToAuthResponse(result))
}

// @Summary Log out
// @Description Revoke the session token. Closes the patient's emergency console.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	sess, _ := currentSession(c)
	log := h.logger.WithField("method", "logout").WithField("user_id", sess.UserID)

	if err := h.authService.Logout(c.Request.Context(), sess); err != nil {
		respondError(c, log, err, "Failed to log out")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get landing path
// @Description Landing path for the current session, "/" without a session.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} LandingResponse
// @Router /session/landing [get]
func (h *Handler) landing(c *gin.Context) {
	var landing string
	if sess, ok := currentSession(c); ok {
		landing = session.LandingPath(&sess)
	} else {
		landing = session.LandingPath(nil)
	}
	c.JSON(http.StatusOK, LandingResponse{Landing: landing})
}
