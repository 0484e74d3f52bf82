package redis

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"marketplace-settlement/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureBroadcaster records broadcast events for assertions.
type captureBroadcaster struct {
	mu     sync.Mutex
	events []domain.StatsEvent
}

func (c *captureBroadcaster) Broadcast(event domain.StatsEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureBroadcaster) snapshot() []domain.StatsEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.StatsEvent(nil), c.events...)
}

func TestPublisherToBridge(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})

	capture := &captureBroadcaster{}
	bridge := NewBridge(client, "events", capture, zerolog.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bridge.Run(ctx)

	// Give the subscriber a moment to attach before publishing.
	require.Eventually(t, func() bool {
		n, err := client.PubSubNumSub(context.Background(), "events").Result()
		return err == nil && n["events"] > 0
	}, time.Second, 10*time.Millisecond)

	pub := NewPublisher(client, "events")
	require.NoError(t, pub.Publish(ctx, domain.StatsEvent{
		Type:      domain.EventSellerStatsUpdated,
		SellerID:  "seller-7",
		Timestamp: "2026-01-15T10:00:00Z",
	}))

	require.Eventually(t, func() bool {
		return len(capture.snapshot()) == 1
	}, time.Second, 10*time.Millisecond)

	got := capture.snapshot()[0]
	assert.Equal(t, domain.EventSellerStatsUpdated, got.Kind())
	assert.Equal(t, "seller-7", got.SellerID)
}

func TestBridge_DropsMalformedAndUnrecognized(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})

	capture := &captureBroadcaster{}
	bridge := NewBridge(client, "events", capture, zerolog.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bridge.Run(ctx)

	require.Eventually(t, func() bool {
		n, err := client.PubSubNumSub(context.Background(), "events").Result()
		return err == nil && n["events"] > 0
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, client.Publish(ctx, "events", "not json").Err())
	require.NoError(t, client.Publish(ctx, "events", `{"type":"SOMETHING_ELSE"}`).Err())

	pub := NewPublisher(client, "events")
	require.NoError(t, pub.Publish(ctx, domain.StatsEvent{Type: domain.EventProductCreated}))

	require.Eventually(t, func() bool {
		return len(capture.snapshot()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, domain.EventProductCreated, capture.snapshot()[0].Kind())
}

func TestBridge_StopsOnCancel(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})

	bridge := NewBridge(client, "events", &captureBroadcaster{}, zerolog.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		bridge.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("bridge did not stop after cancellation")
	}
}
