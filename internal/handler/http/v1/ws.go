package v1

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shenikar/rescue_coordination_system/internal/realtime"
	"github.com/sirupsen/logrus"
)

func (h *Handler) upgrader() *websocket.Upgrader {
	origins := h.cfg.CORSAllowedOrigins
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || len(origins) == 0 || slices.Contains(origins, "*") {
				return true
			}
			return slices.Contains(origins, origin)
		},
	}
}

// @Summary Real-time event stream
// @Description Upgrades to a websocket that receives every lifecycle event as JSON. The token may be passed as a query parameter.
// @Tags Realtime
// @Security BearerAuth
// @Param token query string false "JWT when the Authorization header cannot be set"
// @Success 101 "Switching Protocols"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /ws [get]
func (h *Handler) serveWS(c *gin.Context) {
	actor := actorFrom(c)
	log := h.logger.WithFields(logrus.Fields{"method": "serveWS", "actor": actor.ID})

	conn, err := h.upgrader().Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response.
		log.WithError(err).Warn("Failed to upgrade connection")
		return
	}

	if err := realtime.Serve(h.hub, conn, actor.ID, h.logger); err != nil {
		log.WithError(err).Warn("Websocket client rejected")
	}
}
