// Package realtime fans lifecycle events out to connected observers. There
// is no replay: a reconnecting observer re-reads state over REST.
package realtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/goccy/go-json"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultSendBuffer = 64

var ErrHubClosed = errors.New("realtime hub closed")

// Hub holds one buffered channel per subscriber. Frames are encoded once and
// shared by every subscriber.
type Hub struct {
	subscribers map[uint64]chan []byte
	nextID      atomic.Uint64
	dropped     atomic.Uint64
	mu          sync.RWMutex
	closed      bool
	sendBuffer  int
	logger      *logrus.Logger
}

func NewHub(sendBuffer int, logger *logrus.Logger) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = defaultSendBuffer
	}
	return &Hub{
		subscribers: make(map[uint64]chan []byte),
		sendBuffer:  sendBuffer,
		logger:      logger,
	}
}

// Subscribe registers a new observer. The channel is closed by Unsubscribe
// or Close.
func (h *Hub) Subscribe() (uint64, <-chan []byte, error) {
	id := h.nextID.Add(1)
	ch := make(chan []byte, h.sendBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return 0, nil, ErrHubClosed
	}
	h.subscribers[id] = ch
	return id, ch, nil
}

func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	if ch, ok := h.subscribers[id]; ok {
		close(ch)
		delete(h.subscribers, id)
	}
	h.mu.Unlock()
}

// Publish sends event to every subscriber without blocking. A subscriber
// whose buffer is full misses the frame.
func (h *Hub) Publish(_ context.Context, event models.Event) error {
	frame, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return ErrHubClosed
	}

	for id, ch := range h.subscribers {
		select {
		case ch <- frame:
		default:
			h.dropped.Add(1)
			h.logger.WithFields(logrus.Fields{
				"subscriber": id,
				"event":      event.Type,
			}).Warn("Dropping event for slow subscriber")
		}
	}
	return nil
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Dropped returns how many frames were skipped for slow subscribers.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Close closes every subscriber channel so client pumps exit.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, ch := range h.subscribers {
		close(ch)
		delete(h.subscribers, id)
	}
}
