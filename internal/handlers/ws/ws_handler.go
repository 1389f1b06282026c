// internal/handlers/ws/ws_handler.go
package ws

import (
	"net/http"

	"autosalon-service/internal/middleware"
	"autosalon-service/internal/pkg/response"
	"autosalon-service/internal/websocket"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS layer; the handshake itself only
	// requires a valid staff token.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades authenticated CMS dashboards to the notification feed.
type WSHandler struct {
	hub    *websocket.Hub
	logger *zap.Logger
}

func NewWSHandler(hub *websocket.Hub, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		hub:    hub,
		logger: logger,
	}
}

// Connect upgrades the request. Runs behind the auth middleware, which also
// accepts the token as a query parameter for browser websocket clients.
func (h *WSHandler) Connect(c *gin.Context) {
	adminID := middleware.MustGetAdminID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "websocket upgrade failed", err)
		return
	}

	client := websocket.NewClient(h.hub, conn, adminID)
	client.Register()

	h.logger.Debug("websocket upgraded", zap.Int64("admin_id", adminID))
}
