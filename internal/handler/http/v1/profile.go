package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/jeevan_setu/internal/service"
)

// @Summary Load the profile draft
// @Description Stored profile draft overlaid on defaults. A damaged draft is replaced with defaults.
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileDraft
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/draft [get]
func (h *Handler) getDraft(c *gin.Context) {
	sess, _ := currentSession(c)
	log := h.logger.WithField("method", "getDraft").WithField("user_id", sess.UserID)

	draft, err := h.profileService.LoadDraft(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, log, err, "Failed to load profile draft from service")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// @Summary Save the profile draft
// @Description Replace the stored profile draft. additionalHospitalsText, when present, is split on commas into additionalHospitals.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draft body SaveDraftRequest true "Profile draft"
// @Success 200 {object} models.ProfileDraft
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/draft [put]
func (h *Handler) saveDraft(c *gin.Context) {
	sess, _ := currentSession(c)
	log := h.logger.WithField("method", "saveDraft").WithField("user_id", sess.UserID)

	// Черновик может быть заполнен частично, поэтому validate.Struct здесь не вызывается
	var input SaveDraftRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft := input.ProfileDraft
	if input.AdditionalHospitalsText != nil {
		draft.AdditionalHospitals = service.ParseAdditionalHospitals(*input.AdditionalHospitalsText)
	}

	if err := h.profileService.SaveDraft(c.Request.Context(), sess.UserID, draft); err != nil {
		respondError(c, log, err, "Failed to save profile draft in service")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// @Summary Toggle a preferred hospital
// @Description Add the hospital to the preferred list or remove it from there.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hospital body ToggleHospitalRequest true "Hospital"
// @Success 200 {object} models.ProfileDraft
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/draft/hospitals/toggle [post]
func (h *Handler) toggleHospital(c *gin.Context) {
	sess, _ := currentSession(c)
	log := h.logger.WithField("method", "toggleHospital").WithField("user_id", sess.UserID)

	var input ToggleHospitalRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	draft, err := h.profileService.ToggleHospital(c.Request.Context(), sess.UserID, input.Hospital)
	if err != nil {
		respondError(c, log, err, "Failed to toggle preferred hospital in service")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// @Summary Validate a profile step
// @Description Check the required fields of one form step against the stored draft.
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Param step path int true "Step index: 0 Personal, 1 Medical & Insurance, 2 Preferences"
// @Success 200 {object} StepValidationResponse
// @Failure 400 {object} map[string]string "Invalid step"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unknown step"
// @Failure 422 {object} StepValidationResponse "Step is incomplete"
// @Router /profile/steps/{step}/validate [post]
func (h *Handler) validateStep(c *gin.Context) {
	sess, _ := currentSession(c)
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid step"})
		return
	}
	log := h.logger.WithField("method", "validateStep").WithField("user_id", sess.UserID).WithField("step", step)

	draft, err := h.profileService.LoadDraft(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, log, err, "Failed to load profile draft from service")
		return
	}

	err = h.profileService.ValidateStep(draft, step)
	var stepErr *service.StepError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, StepValidationResponse{Step: step, Name: service.ProfileSteps[step], Valid: true})
	case errors.As(err, &stepErr):
		c.JSON(http.StatusUnprocessableEntity, StepValidationResponse{
			Step:    step,
			Name:    service.ProfileSteps[step],
			Fields:  stepErr.Fields,
			Message: service.MsgStepIncomplete,
		})
	default:
		respondError(c, log, err, "Failed to validate profile step")
	}
}

// @Summary Submit the profile
// @Description Validate every step of the stored draft and save it as the patient's profile.
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 201 {object} ProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Required fields missing or fewer than two preferred hospitals"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile [post]
func (h *Handler) submitProfile(c *gin.Context) {
	sess, _ := currentSession(c)
	log := h.logger.WithField("method", "submitProfile").WithField("user_id", sess.UserID)

	draft, err := h.profileService.LoadDraft(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, log, err, "Failed to load profile draft from service")
		return
	}

	profile, err := h.profileService.Submit(c.Request.Context(), sess.UserID, draft)
	if err != nil {
		respondError(c, log, err, "Failed to submit profile in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToProfileResponse(profile))
}

// @Summary Get the profile summary
// @Description Status of medical history, insurance, hospitals and device settings.
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/summary [get]
func (h *Handler) profileSummary(c *gin.Context) {
	sess, _ := currentSession(c)
	log := h.logger.WithField("method", "profileSummary").WithField("user_id", sess.UserID)

	rows, err := h.profileService.Summary(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, log, err, "Failed to get profile summary from service")
		return
	}
	c.JSON(http.StatusOK, SummaryResponse{Steps: service.ProfileSteps, Rows: rows})
}
