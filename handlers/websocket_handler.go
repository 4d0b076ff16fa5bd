package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/pitchside/league-web/live"
)

type WebSocketHandler struct {
	hub            *live.Hub
	allowedOrigins map[string]bool
	logger         *slog.Logger
}

func NewWebSocketHandler(hub *live.Hub, allowedOrigins []string, logger *slog.Logger) *WebSocketHandler {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &WebSocketHandler{hub: hub, allowedOrigins: origins, logger: logger}
}

func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	if h.allowedOrigins["*"] {
		return true
	}
	return h.allowedOrigins[r.Header.Get("Origin")]
}

// ServeBracket subscribes the connection to refresh hints for one bracket.
// The room key is derived from the same query triple the JSON endpoints use.
func (h *WebSocketHandler) ServeBracket(w http.ResponseWriter, r *http.Request) {
	q, err := bracketQueryFromRequest(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		h.logger.Warn("websocket upgrade failed", slog.String("room", q.Room()), slog.Any("error", err))
		return
	}

	client := live.NewClient(h.hub, conn, q.Room())
	client.Register()

	go client.WritePump()
	go client.ReadPump()
}
