package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every v1 route on api.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	jwtAuth := JWTAuthMiddleware(h.cfg, h.logger)

	// Alert ingestion from terminals
	api.POST("/alerts/critical", APIKeyAuthMiddleware(h.cfg, h.logger), h.createCriticalAlert)
	api.POST("/alerts/user", RateLimitMiddleware(h.cfg.UserAlertRateLimit), h.createUserAlert)

	alerts := api.Group("/alerts", jwtAuth)
	{
		alerts.GET("", h.listAlerts)
		alerts.GET("/unassigned", h.listUnassignedAlerts)
		alerts.GET("/:alertID", h.getAlert)
		alerts.PATCH("/:alertID", h.updateAlert)
	}

	rescue := api.Group("/rescue-forms", jwtAuth)
	{
		rescue.GET("/waitlisted", h.listWaitlisted)
		rescue.POST("/:alertID", h.createRescueForm)
		rescue.GET("/:alertID", h.getRescueForm)
		rescue.PATCH("/:alertID/status", h.updateRescueFormStatus)
		rescue.POST("/:alertID/dispatch", h.dispatchWaitlisted)
	}

	postRescue := api.Group("/post-rescue", jwtAuth)
	{
		postRescue.GET("/pending", h.listPending)
		postRescue.GET("/completed", h.listCompleted)
		postRescue.GET("/archived", h.listArchived)
		postRescue.GET("/aggregated", h.aggregated)
		postRescue.GET("/table-aggregated", h.tableAggregated)
		postRescue.GET("/chart", h.chart)
		postRescue.GET("/report/:alertID", h.detailedReport)
		postRescue.POST("/cache/clear", h.clearCache)
		postRescue.POST("/restore/:alertID", h.restore)
		postRescue.DELETE("/archive/:alertID", h.archive)
		postRescue.POST("/:alertID", h.createPostRescueForm)
		postRescue.DELETE("/:alertID", h.deletePermanently)
	}

	maintenance := api.Group("/maintenance", jwtAuth)
	{
		maintenance.POST("/fix-rescue-form-status", h.fixRescueFormStatus)
		maintenance.POST("/migrate-alert-types", h.migrateAlertTypes)
	}

	api.GET("/ws", jwtAuth, h.serveWS)

	api.GET("/system/health", h.healthCheck)
}
