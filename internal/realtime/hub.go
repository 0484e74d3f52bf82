package realtime

import (
	"encoding/json"
	"sync"

	"marketplace-settlement/internal/core/domain"

	"github.com/rs/zerolog"
)

// RoleAdmin and RoleSeller are the subscriber roles carried in JWT claims.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// Hub tracks live subscriber connections and fans stats events out to the
// ones in scope. Events are ephemeral: a subscriber that is not connected
// when an event fires never sees it.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*Conn
	log   zerolog.Logger
}

// NewHub creates an empty hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		conns: make(map[string]*Conn),
		log:   log.With().Str("component", "realtime_hub").Logger(),
	}
}

// Register adds a connection to the registry.
func (h *Hub) Register(c *Conn) {
	h.mu.Lock()
	h.conns[c.ID] = c
	n := len(h.conns)
	h.mu.Unlock()

	h.log.Info().Str("conn_id", c.ID).Str("role", c.Role).Int("total", n).Msg("subscriber connected")
}

// Unregister removes a connection from the registry.
func (h *Hub) Unregister(c *Conn) {
	h.mu.Lock()
	delete(h.conns, c.ID)
	n := len(h.conns)
	h.mu.Unlock()

	h.log.Info().Str("conn_id", c.ID).Int("total", n).Msg("subscriber disconnected")
}

// Count returns the number of live connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Broadcast delivers event to every connection in scope. The payload is
// marshalled once; subscribers whose buffer is full are dropped rather than
// ever blocking the caller.
func (h *Hub) Broadcast(event domain.StatsEvent) {
	raw, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Msg("marshalling stats event")
		return
	}

	var slow []*Conn

	h.mu.RLock()
	for _, c := range h.conns {
		if !inScope(event, c) {
			continue
		}
		if !c.TrySend(raw) {
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.Unregister(c)
		c.Close()
	}
}

// inScope decides whether a connection should receive the event.
// Admin stats go to admins only; seller stats go to the matching seller and
// to admins; product events go to everyone.
func inScope(event domain.StatsEvent, c *Conn) bool {
	switch event.Kind() {
	case domain.EventAdminStatsUpdated:
		return c.Role == RoleAdmin
	case domain.EventSellerStatsUpdated:
		if c.Role == RoleAdmin {
			return true
		}
		return c.Role == RoleSeller && c.SellerID != "" && c.SellerID == event.SellerID
	case domain.EventProductCreated, domain.EventProductUpdated, domain.EventProductDeleted:
		return true
	default:
		return false
	}
}
