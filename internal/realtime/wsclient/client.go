package wsclient

import (
	"encoding/json"
	"sync"
	"time"

	"marketplace-settlement/internal/core/domain"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// DefaultReconnectInterval is the fixed delay between reconnect attempts.
// There is no backoff: the dashboard either reattaches or waits another tick.
const DefaultReconnectInterval = 5 * time.Second

// Options configures a Client.
type Options struct {
	// URL is the ws:// or wss:// endpoint, without the token query param.
	URL string

	// ReconnectInterval overrides DefaultReconnectInterval when positive.
	ReconnectInterval time.Duration

	// OnEvent receives each recognized stats event.
	OnEvent func(event domain.StatsEvent)

	// OnConnect and OnDisconnect observe the connection lifecycle.
	OnConnect    func()
	OnDisconnect func()

	Logger zerolog.Logger
}

// Client maintains at most one live subscription to the stats channel.
// An abnormal close schedules exactly one reconnect at a fixed interval; a
// normal close (code 1000) or an empty token leaves the client idle.
type Client struct {
	url      string
	interval time.Duration
	onEvent  func(domain.StatsEvent)
	onConn   func()
	onDisc   func()
	log      zerolog.Logger

	// dial is swappable for tests.
	dial func(url string) (*websocket.Conn, error)

	mu     sync.Mutex
	token  string
	conn   *websocket.Conn
	timer  *time.Timer
	gen    uint64
	closed bool
}

// New creates an idle client. No connection is opened until SetToken is
// called with a non-empty token.
func New(opts Options) *Client {
	interval := opts.ReconnectInterval
	if interval <= 0 {
		interval = DefaultReconnectInterval
	}
	return &Client{
		url:      opts.URL,
		interval: interval,
		onEvent:  opts.OnEvent,
		onConn:   opts.OnConnect,
		onDisc:   opts.OnDisconnect,
		log:      opts.Logger.With().Str("component", "ws_client").Logger(),
		dial: func(url string) (*websocket.Conn, error) {
			conn, _, err := websocket.DefaultDialer.Dial(url, nil)
			return conn, err
		},
	}
}

// SetToken installs a new auth token. Any live connection and pending
// reconnect for the previous token are torn down first; a non-empty token
// opens a fresh connection.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || token == c.token {
		return
	}
	c.token = token
	c.teardownLocked()

	if token != "" {
		go c.connect(c.gen)
	}
}

// Close tears down the connection and all timers. The client cannot be
// reused afterwards.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.teardownLocked()
}

// IsConnected reports whether a connection is currently live.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// teardownLocked invalidates in-flight work, cancels any reconnect timer
// and closes the current connection. Callers hold c.mu.
func (c *Client) teardownLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

// connect dials the endpoint for the given generation. A stale generation
// means SetToken or Close ran in between, and the attempt is abandoned.
func (c *Client) connect(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen || c.token == "" {
		c.mu.Unlock()
		return
	}
	url := c.url + "?token=" + c.token
	c.mu.Unlock()

	conn, err := c.dial(url)

	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		if conn != nil {
			conn.Close()
		}
		return
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("dial failed")
		c.scheduleReconnectLocked(gen)
		c.mu.Unlock()
		return
	}
	c.conn = conn
	c.mu.Unlock()

	c.log.Info().Msg("subscribed to stats channel")
	if c.onConn != nil {
		c.onConn()
	}
	go c.readLoop(gen, conn)
}

// readLoop consumes frames until the connection drops. Whether a reconnect
// is scheduled depends on how it dropped.
func (c *Client) readLoop(gen uint64, conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			c.handleDisconnect(gen, conn, err)
			return
		}

		var event domain.StatsEvent
		if jerr := json.Unmarshal(raw, &event); jerr != nil {
			c.log.Debug().Err(jerr).Msg("ignoring unparseable frame")
			continue
		}
		if !domain.IsRecognized(event.Kind()) {
			continue
		}
		if c.onEvent != nil {
			c.onEvent(event)
		}
	}
}

func (c *Client) handleDisconnect(gen uint64, conn *websocket.Conn, err error) {
	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	stale := c.closed || gen != c.gen
	if !stale {
		// A server-initiated normal close means do not come back.
		if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			c.scheduleReconnectLocked(gen)
		}
	}
	c.mu.Unlock()

	conn.Close()
	if !stale {
		c.log.Info().Err(err).Msg("stats channel disconnected")
		if c.onDisc != nil {
			c.onDisc()
		}
	}
}

// scheduleReconnectLocked arms the single reconnect timer, replacing any
// pending one. Callers hold c.mu.
func (c *Client) scheduleReconnectLocked(gen uint64) {
	if c.token == "" {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.interval, func() {
		c.mu.Lock()
		live := !c.closed && gen == c.gen
		c.mu.Unlock()
		if live {
			c.connect(gen)
		}
	})
}
