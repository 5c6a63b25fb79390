package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// @Summary Create a rescue form
// @Description Attach a dispatcher's assessment to an alert. Core fields are required unless the focal person is unreachable.
// @Tags Rescue Forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param alertID path string true "Alert ID"
// @Param form body CreateRescueFormRequest true "Rescue form"
// @Success 201 {object} models.RescueForm
// @Failure 400 {object} ErrorResponse "Missing core fields or invalid status"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Only a dispatcher can create a rescue form"
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Failure 409 {object} ErrorResponse "Rescue Form Already Exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /rescue-forms/{alertID} [post]
func (h *Handler) createRescueForm(c *gin.Context) {
	var input CreateRescueFormRequest
	alertID := c.Param("alertID")
	log := h.logger.WithFields(logrus.Fields{"method": "createRescueForm", "alert_id": alertID})

	if !h.bindJSON(c, log, &input) {
		return
	}

	form, err := h.rescueService.CreateRescueForm(c.Request.Context(), actorFrom(c), alertID, DTOToRescueFormModel(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, form)
}

// @Summary Get a rescue form
// @Tags Rescue Forms
// @Produce json
// @Security BearerAuth
// @Param alertID path string true "Alert ID"
// @Success 200 {object} models.RescueForm
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Rescue form not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /rescue-forms/{alertID} [get]
func (h *Handler) getRescueForm(c *gin.Context) {
	alertID := c.Param("alertID")
	log := h.logger.WithFields(logrus.Fields{"method": "getRescueForm", "alert_id": alertID})

	form, err := h.rescueService.GetRescueForm(c.Request.Context(), alertID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// @Summary Update rescue status
// @Description Set the rescue form status and keep the alert status in step.
// @Tags Rescue Forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param alertID path string true "Alert ID"
// @Param status body UpdateRescueStatusRequest true "New status"
// @Success 200 {object} models.RescueForm
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Rescue form not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /rescue-forms/{alertID}/status [patch]
func (h *Handler) updateRescueFormStatus(c *gin.Context) {
	var input UpdateRescueStatusRequest
	alertID := c.Param("alertID")
	log := h.logger.WithFields(logrus.Fields{"method": "updateRescueFormStatus", "alert_id": alertID})

	if !h.bindJSON(c, log, &input) {
		return
	}

	form, err := h.rescueService.UpdateRescueFormStatus(c.Request.Context(), actorFrom(c), alertID, models.Status(input.Status))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// @Summary Dispatch a waitlisted rescue
// @Description Move a waitlisted rescue form to Dispatched and drop it from the waitlist.
// @Tags Rescue Forms
// @Produce json
// @Security BearerAuth
// @Param alertID path string true "Alert ID"
// @Success 200 {object} models.RescueForm
// @Failure 400 {object} ErrorResponse "Rescue Form is not Waitlisted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Rescue form not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /rescue-forms/{alertID}/dispatch [post]
func (h *Handler) dispatchWaitlisted(c *gin.Context) {
	alertID := c.Param("alertID")
	log := h.logger.WithFields(logrus.Fields{"method": "dispatchWaitlisted", "alert_id": alertID})

	form, err := h.rescueService.DispatchWaitlisted(c.Request.Context(), actorFrom(c), alertID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// @Summary List waitlisted rescue forms
// @Tags Rescue Forms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.RescueForm
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /rescue-forms/waitlisted [get]
func (h *Handler) listWaitlisted(c *gin.Context) {
	log := h.logger.WithField("method", "listWaitlisted")

	forms, err := h.rescueService.ListWaitlisted(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}
