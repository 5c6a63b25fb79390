package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// refreshRequested reports whether the caller asked to bypass the cache.
func refreshRequested(c *gin.Context) bool {
	refresh, _ := strconv.ParseBool(c.Query("refresh"))
	return refresh
}

// @Summary Create a post-rescue form
// @Description Close a dispatched rescue. Sets both the alert and the rescue form to Completed.
// @Tags Post-Rescue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param alertID path string true "Alert ID"
// @Param form body CreatePostRescueFormRequest true "Post-rescue form"
// @Success 201 {object} PostRescueFormResponse
// @Failure 400 {object} ErrorResponse "Rescue not dispatched or form already exists"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Alert or rescue form not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /post-rescue/{alertID} [post]
func (h *Handler) createPostRescueForm(c *gin.Context) {
	var input CreatePostRescueFormRequest
	alertID := c.Param("alertID")
	log := h.logger.WithFields(logrus.Fields{"method": "createPostRescueForm", "alert_id": alertID})

	if !h.bindJSON(c, log, &input) {
		return
	}

	form, err := h.reportService.CreatePostRescueForm(c.Request.Context(), actorFrom(c), alertID, DTOToPostRescueFormModel(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, PostRescueFormResponse{Message: "Post-Rescue Form created", NewForm: form})
}

// @Summary List pending reports
// @Description Rescues with a rescue form but no post-rescue form yet.
// @Tags Post-Rescue
// @Produce json
// @Security BearerAuth
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {array} models.PendingReport
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /post-rescue/pending [get]
func (h *Handler) listPending(c *gin.Context) {
	log := h.logger.WithField("method", "listPending")

	reports, err := h.reportService.ListPending(c.Request.Context(), refreshRequested(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// @Summary List completed reports
// @Tags Post-Rescue
// @Produce json
// @Security BearerAuth
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {array} models.CompletedReport
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /post-rescue/completed [get]
func (h *Handler) listCompleted(c *gin.Context) {
	log := h.logger.WithField("method", "listCompleted")

	reports, err := h.reportService.ListCompleted(c.Request.Context(), refreshRequested(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// @Summary List archived reports
// @Tags Post-Rescue
// @Produce json
// @Security BearerAuth
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {array} models.CompletedReport
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /post-rescue/archived [get]
func (h *Handler) listArchived(c *gin.Context) {
	log := h.logger.WithField("method", "listArchived")

	reports, err := h.reportService.ListArchived(c.Request.Context(), refreshRequested(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// @Summary Aggregated detailed reports
// @Description Detailed rows for active reports, optionally narrowed to one alert or terminal.
// @Tags Post-Rescue
// @Produce json
// @Security BearerAuth
// @Param alertID query string false "Alert ID"
// @Param terminalId query string false "Terminal ID"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {array} models.DetailedReport
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /post-rescue/aggregated [get]
func (h *Handler) aggregated(c *gin.Context) {
	log := h.logger.WithField("method", "aggregated")
	filter := models.ReportFilter{
		AlertID:    c.Query("alertID"),
		TerminalID: c.Query("terminalId"),
	}

	reports, err := h.reportService.Aggregated(c.Request.Context(), filter, refreshRequested(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// @Summary Per-terminal report summary
// @Tags Post-Rescue
// @Produce json
// @Security BearerAuth
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {array} models.TerminalSummary
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /post-rescue/table-aggregated [get]
func (h *Handler) tableAggregated(c *gin.Context) {
	log := h.logger.WithField("method", "tableAggregated")

	summaries, err := h.reportService.TableAggregated(c.Request.Context(), refreshRequested(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// @Summary Monthly alert chart
// @Tags Post-Rescue
// @Produce json
// @Security BearerAuth
// @Param timeRange query string false "last3months, last6months or lastyear" default(last6months)
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {array} models.ChartPoint
// @Failure 400 {object} ErrorResponse "Invalid time range"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /post-rescue/chart [get]
func (h *Handler) chart(c *gin.Context) {
	log := h.logger.WithField("method", "chart")

	points, err := h.reportService.Chart(c.Request.Context(), c.Query("timeRange"), refreshRequested(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// @Summary Detailed report
// @Tags Post-Rescue
// @Produce json
// @Security BearerAuth
// @Param alertID path string true "Alert ID"
// @Success 200 {object} models.DetailedReport
// @Failure 400 {object} ErrorResponse "Invalid alert ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /post-rescue/report/{alertID} [get]
func (h *Handler) detailedReport(c *gin.Context) {
	alertID := c.Param("alertID")
	log := h.logger.WithFields(logrus.Fields{"method": "detailedReport", "alert_id": alertID})

	report, err := h.reportService.DetailedReport(c.Request.Context(), alertID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Archive a report
// @Tags Post-Rescue
// @Produce json
// @Security BearerAuth
// @Param alertID path string true "Alert ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Post-Rescue Form not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /post-rescue/archive/{alertID} [delete]
func (h *Handler) archive(c *gin.Context) {
	alertID := c.Param("alertID")
	log := h.logger.WithFields(logrus.Fields{"method": "archive", "alert_id": alertID})

	if err := h.reportService.Archive(c.Request.Context(), actorFrom(c), alertID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Archived"})
}

// @Summary Restore an archived report
// @Tags Post-Rescue
// @Produce json
// @Security BearerAuth
// @Param alertID path string true "Alert ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Post-Rescue Form not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /post-rescue/restore/{alertID} [post]
func (h *Handler) restore(c *gin.Context) {
	alertID := c.Param("alertID")
	log := h.logger.WithFields(logrus.Fields{"method": "restore", "alert_id": alertID})

	if err := h.reportService.Restore(c.Request.Context(), actorFrom(c), alertID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Restored"})
}

// @Summary Permanently delete a report
// @Description Removes the post-rescue form. Alert and rescue statuses are left untouched.
// @Tags Post-Rescue
// @Produce json
// @Security BearerAuth
// @Param alertID path string true "Alert ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Post-Rescue Form not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /post-rescue/{alertID} [delete]
func (h *Handler) deletePermanently(c *gin.Context) {
	alertID := c.Param("alertID")
	log := h.logger.WithFields(logrus.Fields{"method": "deletePermanently", "alert_id": alertID})

	if err := h.reportService.DeletePermanently(c.Request.Context(), actorFrom(c), alertID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Deleted"})
}

// @Summary Clear the report cache
// @Tags Post-Rescue
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /post-rescue/cache/clear [post]
func (h *Handler) clearCache(c *gin.Context) {
	log := h.logger.WithField("method", "clearCache")

	if err := h.reportService.ClearCache(c.Request.Context(), actorFrom(c)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Cache cleared"})
}
