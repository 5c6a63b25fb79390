package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Reconcile rescue form statuses
// @Description Repair alerts whose status drifted from their rescue form.
// @Tags Maintenance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.FixResult
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /maintenance/fix-rescue-form-status [post]
func (h *Handler) fixRescueFormStatus(c *gin.Context) {
	log := h.logger.WithField("method", "fixRescueFormStatus")

	result, err := h.rescueService.FixRescueFormStatus(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Normalize legacy alert types
// @Tags Maintenance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MigrateAlertTypesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /maintenance/migrate-alert-types [post]
func (h *Handler) migrateAlertTypes(c *gin.Context) {
	log := h.logger.WithField("method", "migrateAlertTypes")

	count, err := h.alertService.MigrateAlertTypes(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MigrateAlertTypesResponse{UpdatedCount: count})
}
