package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ivankudzin/heartlink/internal/services/events"
)

const defaultEventsChannel = "heartlink:events"

// EventRepo publishes store change events to a Redis pub/sub channel so
// clients outside the process can refresh their views.
type EventRepo struct {
	client  *goredis.Client
	channel string
}

func NewEventRepo(client *goredis.Client, channel string) *EventRepo {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		channel = defaultEventsChannel
	}
	return &EventRepo{client: client, channel: channel}
}

func (r *EventRepo) Channel() string {
	return r.channel
}

func (r *EventRepo) Publish(ctx context.Context, event events.Event) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}
