package domain

// Stats event discriminators pushed over the realtime channel.
const (
	EventAdminStatsUpdated  = "ADMIN_STATS_UPDATED"
	EventSellerStatsUpdated = "SELLER_STATS_UPDATED"
	EventProductCreated     = "PRODUCT_CREATED"
	EventProductUpdated     = "PRODUCT_UPDATED"
	EventProductDeleted     = "PRODUCT_DELETED"
)

// StatsEvent signals connected dashboards that statistics changed.
// Depending on the producer the discriminator arrives as "type" or "event";
// Kind resolves whichever is set. Events are not persisted or replayed.
type StatsEvent struct {
	Type      string         `json:"type,omitempty"`
	Event     string         `json:"event,omitempty"`
	SellerID  string         `json:"seller_id,omitempty"`
	Timestamp string         `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Kind returns the event discriminator, preferring the "type" key.
func (e StatsEvent) Kind() string {
	if e.Type != "" {
		return e.Type
	}
	return e.Event
}

// IsRecognized reports whether kind is one of the discriminators
// dashboard clients act on.
func IsRecognized(kind string) bool {
	switch kind {
	case EventAdminStatsUpdated, EventSellerStatsUpdated,
		EventProductCreated, EventProductUpdated, EventProductDeleted:
		return true
	}
	return false
}
