package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @Summary Create a critical alert
// @Description Record a sensor-triggered alert for a terminal. Requires the terminal API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body CreateAlertRequest true "Critical alert request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} ErrorResponse "Missing terminalId, unknown or archived terminal"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts/critical [post]
func (h *Handler) createCriticalAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.logger.WithField("method", "createCriticalAlert")

	if !h.bindJSON(c, log, &input) {
		return
	}

	alert, err := h.alertService.CreateCriticalAlert(c.Request.Context(), input.TerminalID, input.SentThrough)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, AlertResponse{Alert: alert})
}

// @Summary Create a user-initiated alert
// @Description Record a manually triggered alert. The location falls back to the terminal's location.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param alert body CreateUserAlertRequest true "User alert request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} ErrorResponse "Missing terminalId, unknown or archived terminal"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts/user [post]
func (h *Handler) createUserAlert(c *gin.Context) {
	var input CreateUserAlertRequest
	log := h.logger.WithField("method", "createUserAlert")

	if !h.bindJSON(c, log, &input) {
		return
	}

	alert, err := h.alertService.CreateUserAlert(c.Request.Context(), input.TerminalID, input.SentThrough, locationString(input.Location))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, AlertResponse{Alert: alert})
}

// @Summary List alerts
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Alert
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	alerts, err := h.alertService.ListAlerts(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// @Summary List unassigned alerts
// @Description Alerts that no dispatcher has picked up yet.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Alert
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts/unassigned [get]
func (h *Handler) listUnassignedAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listUnassignedAlerts")

	alerts, err := h.alertService.ListUnassignedAlerts(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// @Summary Get an alert
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param alertID path string true "Alert ID"
// @Success 200 {object} models.Alert
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts/{alertID} [get]
func (h *Handler) getAlert(c *gin.Context) {
	alertID := c.Param("alertID")
	log := h.logger.WithFields(logrus.Fields{"method": "getAlert", "alert_id": alertID})

	alert, err := h.alertService.GetAlert(c.Request.Context(), alertID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// @Summary Update an alert
// @Description Generic alert update. Dispatching requires an existing rescue form.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param alertID path string true "Alert ID"
// @Param update body UpdateAlertRequest true "Fields to change"
// @Success 200 {object} models.Alert
// @Failure 400 {object} ErrorResponse "Invalid status or missing rescue form"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts/{alertID} [patch]
func (h *Handler) updateAlert(c *gin.Context) {
	var input UpdateAlertRequest
	alertID := c.Param("alertID")
	log := h.logger.WithFields(logrus.Fields{"method": "updateAlert", "alert_id": alertID})

	if !h.bindJSON(c, log, &input) {
		return
	}

	alert, err := h.alertService.UpdateAlert(c.Request.Context(), actorFrom(c), alertID, DTOToAlertUpdate(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}
