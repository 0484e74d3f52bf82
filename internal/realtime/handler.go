package realtime

import (
	"net/http"
	"strings"

	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"
	"marketplace-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// maxInboundMessageSize caps client frames. Subscribers only listen; any
// inbound traffic beyond pings is bounded to keep reads cheap.
const maxInboundMessageSize = 8 * 1024

// Handler upgrades authenticated HTTP requests to hub subscriptions.
type Handler struct {
	hub        *Hub
	tokens     ports.TokenService
	sendBuffer int
	upgrader   websocket.Upgrader
	log        zerolog.Logger
}

// NewHandler creates a WebSocket subscription handler.
func NewHandler(hub *Hub, tokens ports.TokenService, sendBuffer int, log zerolog.Logger) *Handler {
	return &Handler{
		hub:        hub,
		tokens:     tokens,
		sendBuffer: sendBuffer,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log.With().Str("component", "ws_handler").Logger(),
	}
}

// Serve handles GET /ws. The token comes from the ?token= query param, with
// an Authorization bearer header accepted as fallback.
func (h *Handler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	}
	if token == "" {
		response.Error(c, apperror.ErrInvalidToken())
		c.Abort()
		return
	}

	claims, err := h.tokens.Validate(token)
	if err != nil {
		h.log.Warn().Err(err).Msg("rejected websocket token")
		response.Error(c, apperror.ErrInvalidToken())
		c.Abort()
		return
	}

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	ws.SetReadLimit(maxInboundMessageSize)

	conn := NewConn(uuid.NewString(), ws, claims.UserID, claims.Role, claims.SellerID, h.sendBuffer, h.log)
	h.hub.Register(conn)

	defer func() {
		h.hub.Unregister(conn)
		conn.Close()
	}()

	// Read loop. Subscribers do not send application messages; reading keeps
	// the connection's control frames flowing and notices the close.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}
