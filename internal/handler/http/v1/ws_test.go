package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeWS(t *testing.T) {
	h, _, router := newTestHandler(t)
	srv := httptest.NewServer(router)
	defer srv.Close()

	base := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws"

	t.Run("rejects anonymous", func(t *testing.T) {
		_, resp, err := websocket.DefaultDialer.Dial(base, nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("streams events", func(t *testing.T) {
		token := signToken(t, testJWTSecret, "dispatcher-1", models.RoleDispatcher)
		conn, _, err := websocket.DefaultDialer.Dial(base+"?token="+token, nil)
		require.NoError(t, err)
		defer conn.Close()

		require.Eventually(t, func() bool { return h.hub.SubscriberCount() == 1 }, time.Second, 10*time.Millisecond)

		event := models.NewEvent(models.EventWaitlistFormRemoved, models.StatusUpdate{AlertID: "ALRT0001", Status: models.StatusDispatched})
		require.NoError(t, h.hub.Publish(context.Background(), event))

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, frame, err := conn.ReadMessage()
		require.NoError(t, err)

		var got models.Event
		require.NoError(t, json.Unmarshal(frame, &got))
		assert.Equal(t, models.EventWaitlistFormRemoved, got.Type)
	})
}
