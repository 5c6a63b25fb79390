package realtime

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// Client pumps hub frames to one websocket connection. Observers only
// listen; anything they send is read and discarded.
type Client struct {
	id     string
	subID  uint64
	hub    *Hub
	conn   *websocket.Conn
	send   <-chan []byte
	logger *logrus.Entry
}

// Serve subscribes conn to the hub and blocks until the connection ends.
func Serve(hub *Hub, conn *websocket.Conn, actorID string, logger *logrus.Logger) error {
	subID, send, err := hub.Subscribe()
	if err != nil {
		_ = conn.Close()
		return err
	}

	c := &Client{
		id:    uuid.NewString(),
		subID: subID,
		hub:   hub,
		conn:  conn,
		send:  send,
	}
	c.logger = logger.WithFields(logrus.Fields{
		"component": "realtime",
		"client_id": c.id,
		"actor":     actorID,
	})
	c.logger.Info("Observer connected")

	done := make(chan struct{})
	go func() {
		c.writePump()
		close(done)
	}()
	c.readPump()
	<-done

	c.logger.Info("Observer disconnected")
	return nil
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unsubscribe(c.subID)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.WithError(err).Error("Failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.WithError(err).Warn("Unexpected websocket close")
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.logger.WithError(err).Warn("Failed to write frame")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
