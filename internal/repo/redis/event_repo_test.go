package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ivankudzin/heartlink/internal/domain/enums"
	"github.com/ivankudzin/heartlink/internal/services/events"
)

func TestEventRepoPublishesJSONToChannel(t *testing.T) {
	mr, client := newMiniRedisClient(t)
	defer mr.Close()
	defer func() { _ = client.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	repo := NewEventRepo(client, "")
	if repo.Channel() != defaultEventsChannel {
		t.Fatalf("unexpected default channel: %s", repo.Channel())
	}

	sub := client.Subscribe(ctx, repo.Channel())
	defer func() { _ = sub.Close() }()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("confirm subscription: %v", err)
	}

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := repo.Publish(ctx, events.Event{
		Kind:  enums.EventMatchCreated,
		At:    at,
		Props: map[string]any{"matched_user_id": "user5"},
	}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	msg, err := sub.ReceiveMessage(ctx)
	if err != nil {
		t.Fatalf("receive message: %v", err)
	}

	var got events.Event
	if err := json.Unmarshal([]byte(msg.Payload), &got); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if got.Kind != enums.EventMatchCreated {
		t.Fatalf("unexpected kind: %s", got.Kind)
	}
	if !got.At.Equal(at) {
		t.Fatalf("unexpected timestamp: got %v want %v", got.At, at)
	}
	if got.Props["matched_user_id"] != "user5" {
		t.Fatalf("unexpected props: %+v", got.Props)
	}
}

func TestEventRepoFailsWithoutClient(t *testing.T) {
	repo := NewEventRepo(nil, "custom")
	if repo.Channel() != "custom" {
		t.Fatalf("unexpected channel: %s", repo.Channel())
	}
	if err := repo.Publish(context.Background(), events.Event{}); err == nil {
		t.Fatalf("expected error for nil client")
	}
}

func TestEventRepoReturnsErrorWhenRedisIsDown(t *testing.T) {
	mr, client := newMiniRedisClient(t)
	defer func() { _ = client.Close() }()
	mr.Close()

	repo := NewEventRepo(client, "heartlink:test")
	if err := repo.Publish(context.Background(), events.Event{Kind: enums.EventMessageSent}); err == nil {
		t.Fatalf("expected publish error when redis is unavailable")
	}
}

func newMiniRedisClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}

	client := NewClient(mr.Addr(), "", 0)
	return mr, client
}
