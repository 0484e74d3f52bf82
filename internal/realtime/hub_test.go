package realtime

import (
	"encoding/json"
	"io"
	"testing"

	"marketplace-settlement/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubConn builds a Conn with a buffered channel and no socket, so tests
// can inspect queued frames directly.
func stubConn(id, role, sellerID string, buffer int) *Conn {
	return &Conn{
		ID:       id,
		UserID:   "user-" + id,
		Role:     role,
		SellerID: sellerID,
		send:     make(chan []byte, buffer),
		log:      zerolog.New(io.Discard),
	}
}

func receivedKinds(t *testing.T, c *Conn) []string {
	t.Helper()
	var kinds []string
	for {
		select {
		case raw := <-c.send:
			var e domain.StatsEvent
			require.NoError(t, json.Unmarshal(raw, &e))
			kinds = append(kinds, e.Kind())
		default:
			return kinds
		}
	}
}

func TestHub_ScopeMatching(t *testing.T) {
	hub := NewHub(zerolog.New(io.Discard))

	admin := stubConn("a1", RoleAdmin, "", 16)
	sellerSeven := stubConn("s7", RoleSeller, "seller-7", 16)
	sellerNine := stubConn("s9", RoleSeller, "seller-9", 16)
	for _, c := range []*Conn{admin, sellerSeven, sellerNine} {
		hub.Register(c)
	}

	hub.Broadcast(domain.StatsEvent{Type: domain.EventAdminStatsUpdated})
	hub.Broadcast(domain.StatsEvent{Type: domain.EventSellerStatsUpdated, SellerID: "seller-7"})
	hub.Broadcast(domain.StatsEvent{Type: domain.EventProductCreated})

	assert.Equal(t, []string{
		domain.EventAdminStatsUpdated,
		domain.EventSellerStatsUpdated,
		domain.EventProductCreated,
	}, receivedKinds(t, admin), "admins see everything")

	assert.Equal(t, []string{
		domain.EventSellerStatsUpdated,
		domain.EventProductCreated,
	}, receivedKinds(t, sellerSeven), "seller sees own stats and product events")

	assert.Equal(t, []string{
		domain.EventProductCreated,
	}, receivedKinds(t, sellerNine), "other sellers only see product events")
}

func TestHub_UnknownEventReachesNobody(t *testing.T) {
	hub := NewHub(zerolog.New(io.Discard))
	admin := stubConn("a1", RoleAdmin, "", 16)
	hub.Register(admin)

	hub.Broadcast(domain.StatsEvent{Type: "SOMETHING_ELSE"})
	assert.Empty(t, receivedKinds(t, admin))
}

func TestHub_EventKeyDiscriminator(t *testing.T) {
	// Producers may set "event" instead of "type".
	hub := NewHub(zerolog.New(io.Discard))
	admin := stubConn("a1", RoleAdmin, "", 16)
	hub.Register(admin)

	hub.Broadcast(domain.StatsEvent{Event: domain.EventAdminStatsUpdated})
	assert.Equal(t, []string{domain.EventAdminStatsUpdated}, receivedKinds(t, admin))
}

func TestHub_SlowSubscriberDropped(t *testing.T) {
	hub := NewHub(zerolog.New(io.Discard))

	slow := stubConn("slow", RoleAdmin, "", 1)
	fast := stubConn("fast", RoleAdmin, "", 16)
	hub.Register(slow)
	hub.Register(fast)

	// Fill the slow subscriber's buffer, then broadcast twice more.
	hub.Broadcast(domain.StatsEvent{Type: domain.EventProductCreated})
	hub.Broadcast(domain.StatsEvent{Type: domain.EventProductUpdated})
	hub.Broadcast(domain.StatsEvent{Type: domain.EventProductDeleted})

	assert.Equal(t, 1, hub.Count(), "slow subscriber is evicted")
	assert.Len(t, receivedKinds(t, fast), 3, "fast subscriber got every event")
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub(zerolog.New(io.Discard))
	c := stubConn("c1", RoleSeller, "seller-1", 1)

	hub.Register(c)
	assert.Equal(t, 1, hub.Count())

	hub.Unregister(c)
	assert.Equal(t, 0, hub.Count())

	// Broadcasting after unregister reaches nobody and never blocks.
	hub.Broadcast(domain.StatsEvent{Type: domain.EventProductCreated})
	assert.Empty(t, receivedKinds(t, c))
}
