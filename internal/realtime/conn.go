package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// writeWait is the deadline for a single write to the peer.
	writeWait = 10 * time.Second
)

// Conn wraps one live WebSocket subscriber. All writes go through the
// buffered send channel and a single writePump goroutine; TrySend never
// blocks the broadcaster.
type Conn struct {
	ID       string
	UserID   string
	Role     string
	SellerID string

	ws   *websocket.Conn
	send chan []byte
	log  zerolog.Logger

	closeOnce sync.Once
}

// NewConn creates a connection wrapper and starts its write pump.
func NewConn(id string, ws *websocket.Conn, userID, role, sellerID string, sendBuffer int, log zerolog.Logger) *Conn {
	c := &Conn{
		ID:       id,
		UserID:   userID,
		Role:     role,
		SellerID: sellerID,
		ws:       ws,
		send:     make(chan []byte, sendBuffer),
		log:      log.With().Str("conn_id", id).Str("user_id", userID).Logger(),
	}
	go c.writePump()
	return c
}

// TrySend queues msg without blocking. Returns false when the buffer is
// full, which marks the subscriber as too slow to keep.
func (c *Conn) TrySend(msg []byte) bool {
	select {
	case c.send <- msg:
		return true
	default:
		c.log.Warn().Msg("send buffer full, dropping subscriber")
		return false
	}
}

// writePump is the only goroutine writing to the socket. It drains the send
// channel until it is closed or a write fails.
func (c *Conn) writePump() {
	defer c.ws.Close()

	for msg := range c.send {
		c.ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
			c.log.Debug().Err(err).Msg("write failed, closing connection")
			return
		}
	}
	// Channel closed: say goodbye properly before the deferred close.
	c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// Close shuts the send channel, terminating the write pump. Safe to call
// more than once.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}
