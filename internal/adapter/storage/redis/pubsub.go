package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Publisher implements ports.StatsPublisher over a Redis pub/sub channel.
// Other service instances run a Bridge on the same channel, so stats events
// reach subscribers connected to any instance.
type Publisher struct {
	client  *goredis.Client
	channel string
}

// NewPublisher creates a stats event publisher.
func NewPublisher(client *goredis.Client, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

// Publish fans the event out to every instance subscribed to the channel.
func (p *Publisher) Publish(ctx context.Context, event domain.StatsEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding stats event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, raw).Err(); err != nil {
		return fmt.Errorf("publishing stats event: %w", err)
	}
	return nil
}

// Bridge subscribes to the stats channel and forwards each recognized event
// into the local broadcaster. One Bridge runs per service instance.
type Bridge struct {
	client      *goredis.Client
	channel     string
	broadcaster ports.StatsBroadcaster
	log         zerolog.Logger
}

// NewBridge creates a pub/sub to broadcaster bridge.
func NewBridge(client *goredis.Client, channel string, broadcaster ports.StatsBroadcaster, log zerolog.Logger) *Bridge {
	return &Bridge{
		client:      client,
		channel:     channel,
		broadcaster: broadcaster,
		log:         log.With().Str("component", "stats_bridge").Logger(),
	}
}

// Run consumes the channel until ctx is cancelled. Malformed or unrecognized
// messages are logged and skipped; they never stop the loop.
func (b *Bridge) Run(ctx context.Context) {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	b.log.Info().Str("channel", b.channel).Msg("stats bridge subscribed")

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event domain.StatsEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.log.Warn().Err(err).Msg("dropping malformed stats message")
				continue
			}
			if !domain.IsRecognized(event.Kind()) {
				b.log.Debug().Str("kind", event.Kind()).Msg("ignoring unrecognized stats event")
				continue
			}
			b.broadcaster.Broadcast(event)
		}
	}
}
