package chat

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"travelbook/internal/pkg/jwt"
	"travelbook/internal/pkg/response"
)

// WSHandler upgrades authenticated requests and hands them to the hub.
type WSHandler struct {
	hub      *Hub
	jwt      *jwt.Service
	log      *zap.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler builds the handler. Browser origins are checked against
// allowedOrigins; an empty list only admits same-host and non-browser clients.
func NewWSHandler(hub *Hub, jwtService *jwt.Service, log *zap.Logger, allowedOrigins []string) *WSHandler {
	if log == nil {
		log = zap.NewNop()
	}
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.TrimRight(o, "/")] = true
	}

	return &WSHandler{
		hub: hub,
		jwt: jwtService,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || allowed[origin] {
					return true
				}
				u, err := url.Parse(origin)
				return err == nil && u.Host == r.Host
			},
		},
	}
}

// HandleWebSocket serves GET /ws/chat?token=JWT. Browsers cannot set headers
// on websocket requests, so the token travels in the query string.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		if t, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
			token = t
		}
	}
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "AUTH_TOKEN_MISSING", "Token is required, use ?token=")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already written the HTTP error
		h.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	actor := Actor{UserID: claims.UserID, Role: claims.Role}
	h.log.Debug("websocket connected", zap.Int64("user_id", actor.UserID))
	h.hub.ServeWS(conn, actor)
	h.log.Debug("websocket disconnected", zap.Int64("user_id", actor.UserID))
}
