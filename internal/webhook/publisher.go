package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/rescue_coordination_system/internal/models"
)

const (
	webhookQueueKey = "webhook_events"
)

// Delivery is the body POSTed to the webhook endpoint. DeliveryID lets the
// receiver drop retried duplicates.
type Delivery struct {
	DeliveryID string           `json:"deliveryId"`
	Type       models.EventType `json:"type"`
	Data       any              `json:"data"`
	Timestamp  time.Time        `json:"timestamp"`
}

// RedisWebhookPublisher queues lifecycle events for the webhook worker.
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish pushes the event onto the left end of the queue; the worker pops
// from the right.
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event models.Event) error {
	payload, err := json.Marshal(Delivery{
		DeliveryID: uuid.NewString(),
		Type:       event.Type,
		Data:       event.Data,
		Timestamp:  event.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
