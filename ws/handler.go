package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"match-lab/contract"
	"match-lab/domain"
	"match-lab/domain/event"
)

// Handler upgrades HTTP requests to WebSocket sessions and runs the
// handshake: the client must authenticate before the connection joins the
// registry. Malformed frames get an error reply; the connection stays open.
type Handler struct {
	log          *slog.Logger
	registry     *Registry
	identity     contract.IIdentity
	upgrader     websocket.Upgrader
	authDeadline time.Duration
}

func NewHandler(log *slog.Logger, registry *Registry, identity contract.IIdentity, authDeadline time.Duration) *Handler {
	return &Handler{
		log:      log,
		registry: registry,
		identity: identity,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Cross-origin policy is enforced by the CORS middleware in
			// front of the router.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		authDeadline: authDeadline,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	kind := domain.ConnectionKind(r.URL.Query().Get("kind"))
	if !kind.Valid() {
		kind = domain.ConnectionGeneral
	}
	room := r.URL.Query().Get("room")
	if kind == domain.ConnectionRoom && room == "" {
		http.Error(w, "room parameter required", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	go h.serve(conn, kind, room)
}

// serve authenticates the socket, registers it, and then runs the read loop
// until the peer goes away.
func (h *Handler) serve(conn *websocket.Conn, kind domain.ConnectionKind, room string) {
	userID, displayName, ok := h.handshake(conn)
	if !ok {
		_ = conn.Close()
		return
	}

	c := h.registry.Register(conn, userID, kind, room)
	c.reply(event.NewAuthenticated(userID, displayName))
	h.readLoop(c)
}

// handshake expects an auth frame before the deadline. Invalid frames are
// answered with an error and the client may retry until the deadline runs
// out.
func (h *Handler) handshake(conn *websocket.Conn) (string, string, bool) {
	deadline := time.Now().Add(h.authDeadline)
	_ = conn.SetReadDeadline(deadline)
	defer func() { _ = conn.SetReadDeadline(time.Time{}) }()

	for time.Now().Before(deadline) {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return "", "", false
		}
		msg, err := event.DecodeInbound(data)
		if err != nil {
			writeDirect(conn, event.NewError(err.Error()))
			continue
		}
		switch msg.Type {
		case event.TypePing:
			writeDirect(conn, event.NewPong(time.Now()))
		case event.TypeAuth:
			userID, displayName, err := h.identity.ResolveAuthenticatedUser(msg.Auth.Token)
			if err != nil {
				h.log.Warn("Socket authentication rejected", "error", err)
				writeDirect(conn, event.NewError("authentication failed"))
				continue
			}
			return userID, displayName, true
		}
	}
	return "", "", false
}

func (h *Handler) readLoop(c *Connection) {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			h.registry.Disconnect(c.ID)
			return
		}
		msg, err := event.DecodeInbound(data)
		if err != nil {
			c.reply(event.NewError(err.Error()))
			continue
		}
		switch msg.Type {
		case event.TypePing:
			c.reply(event.NewPong(time.Now()))
		case event.TypeAuth:
			userID, displayName, err := h.identity.ResolveAuthenticatedUser(msg.Auth.Token)
			if err != nil || userID != c.UserID {
				c.reply(event.NewError("authentication failed"))
				continue
			}
			c.reply(event.NewAuthenticated(userID, displayName))
		}
	}
}

// writeDirect sends a frame on a connection that is not registered yet.
func writeDirect(conn *websocket.Conn, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteMessage(websocket.TextMessage, data)
}
