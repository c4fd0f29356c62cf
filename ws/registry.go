package ws

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"match-lab/contract"
	"match-lab/domain"
	"match-lab/domain/event"
)

var errHeartbeatExpired = fmt.Errorf("heartbeat expired")

// Registry tracks every live connection, keyed by connection ID and by user.
// It is the only mutator of the connection maps; sends snapshot the maps
// under a read lock and tolerate connections removed mid-iteration.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]*Connection
	byUser map[string]map[string]*Connection

	log      *slog.Logger
	presence contract.IPresenceRepository
	queue    contract.IQueueRepository

	presenceTTL       time.Duration
	heartbeatInterval time.Duration
	maxMissedPings    int32
	sendBuffer        int
}

func NewRegistry(
	log *slog.Logger,
	presence contract.IPresenceRepository,
	queue contract.IQueueRepository,
	presenceTTL, heartbeatInterval time.Duration,
	maxMissedPings, sendBuffer int,
) *Registry {
	return &Registry{
		byID:              make(map[string]*Connection),
		byUser:            make(map[string]map[string]*Connection),
		log:               log,
		presence:          presence,
		queue:             queue,
		presenceTTL:       presenceTTL,
		heartbeatInterval: heartbeatInterval,
		maxMissedPings:    int32(maxMissedPings),
		sendBuffer:        sendBuffer,
	}
}

// Register stores a freshly authenticated connection, marks the user online
// with a TTL, and starts the connection's write pump and heartbeat.
func (r *Registry) Register(conn transport, userID string, kind domain.ConnectionKind, room string) *Connection {
	c := newConnection(conn, userID, kind, room, r.sendBuffer)

	r.mu.Lock()
	r.byID[c.ID] = c
	if r.byUser[userID] == nil {
		r.byUser[userID] = make(map[string]*Connection)
	}
	r.byUser[userID][c.ID] = c
	r.mu.Unlock()

	if err := r.presence.SetOnline(userID, r.presenceTTL); err != nil {
		r.log.Warn("Failed to mark user online", "user_id", userID, "error", err)
	}

	go c.writePump(r.heartbeatInterval, r.maxMissedPings, func(c *Connection, err error) {
		r.log.Warn("Connection send failure",
			"connection_id", c.ID, "user_id", c.UserID, "error", err)
		r.Disconnect(c.ID)
	})

	r.log.Info("Connection registered",
		"connection_id", c.ID, "user_id", userID, "kind", kind, "room", room)
	return c
}

// Disconnect removes a connection and closes its transport. It is idempotent
// and safe to call concurrently: only the call that actually removes the map
// entry runs the side effects. When the user's last connection goes, the
// user is marked offline and any waiting-queue entry is removed, since a
// disconnected user must not stay matchable.
func (r *Registry) Disconnect(connectionID string) {
	r.mu.Lock()
	c, ok := r.byID[connectionID]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(r.byID, connectionID)
	delete(r.byUser[c.UserID], connectionID)
	lastConnection := len(r.byUser[c.UserID]) == 0
	if lastConnection {
		delete(r.byUser, c.UserID)
	}
	r.mu.Unlock()

	c.close()
	r.log.Info("Connection removed", "connection_id", connectionID, "user_id", c.UserID)

	if !lastConnection {
		return
	}
	if err := r.presence.SetOffline(c.UserID); err != nil {
		r.log.Warn("Failed to mark user offline", "user_id", c.UserID, "error", err)
	}
	removed, err := r.queue.RemoveUser(c.UserID)
	if err != nil {
		r.log.Warn("Failed to clean up queue entry on disconnect",
			"user_id", c.UserID, "error", err)
		return
	}
	if removed {
		r.log.Info("Removed queue entry of disconnected user", "user_id", c.UserID)
	}
}

// IsOnline reports whether the user holds at least one live connection here.
func (r *Registry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID]) > 0
}

// OnlineUserIDs snapshots the set of locally connected users.
func (r *Registry) OnlineUserIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]string, 0, len(r.byUser))
	for userID := range r.byUser {
		users = append(users, userID)
	}
	return users
}

// ConnectionsOfUser returns a snapshot of a user's connections.
func (r *Registry) ConnectionsOfUser(userID string) []*Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conns := make([]*Connection, 0, len(r.byUser[userID]))
	for _, c := range r.byUser[userID] {
		conns = append(conns, c)
	}
	return conns
}

// SendToUser fans a payload out to every connection of the user. A failure
// on one connection disconnects that connection only and never aborts
// delivery to the user's other connections. Reports whether at least one
// connection accepted the frame.
func (r *Registry) SendToUser(userID string, payload any) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		r.log.Error("Failed to encode outbound payload", "error", err)
		return false
	}

	delivered := 0
	for _, c := range r.ConnectionsOfUser(userID) {
		if c.enqueue(data) {
			delivered++
			continue
		}
		r.log.Warn("Dropping unresponsive connection",
			"connection_id", c.ID, "user_id", userID)
		r.Disconnect(c.ID)
	}
	return delivered > 0
}

// BroadcastToKind delivers a payload to every connection of the given kind,
// optionally skipping one user. Returns the number of reached connections.
func (r *Registry) BroadcastToKind(kind domain.ConnectionKind, payload any, excludeUserID string) int {
	return r.broadcast(payload, func(c *Connection) bool {
		return c.Kind == kind && c.UserID != excludeUserID
	})
}

// BroadcastToRoom delivers a payload to room-kind connections in one room.
func (r *Registry) BroadcastToRoom(room string, payload any) int {
	return r.broadcast(payload, func(c *Connection) bool {
		return c.Kind == domain.ConnectionRoom && c.RoomName == room
	})
}

func (r *Registry) broadcast(payload any, include func(*Connection) bool) int {
	data, err := json.Marshal(payload)
	if err != nil {
		r.log.Error("Failed to encode outbound payload", "error", err)
		return 0
	}

	r.mu.RLock()
	targets := make([]*Connection, 0, len(r.byID))
	for _, c := range r.byID {
		if include(c) {
			targets = append(targets, c)
		}
	}
	r.mu.RUnlock()

	delivered := 0
	for _, c := range targets {
		if c.enqueue(data) {
			delivered++
			continue
		}
		r.log.Warn("Dropping unresponsive connection",
			"connection_id", c.ID, "user_id", c.UserID)
		r.Disconnect(c.ID)
	}
	return delivered
}

// Dispatch routes a notification produced by the broadcaster loops to its
// target. Notifications are consumed exactly once; the return value is the
// number of connections reached.
func (r *Registry) Dispatch(n event.Notification) int {
	switch n.Target {
	case event.TargetUser:
		if r.SendToUser(n.UserID, n.Payload) {
			return 1
		}
		return 0
	case event.TargetRoom:
		return r.BroadcastToRoom(n.Room, n.Payload)
	case event.TargetConnectionKind:
		return r.BroadcastToKind(n.Kind, n.Payload, n.ExcludeUserID)
	default:
		r.log.Error("Unknown notification target", "target", n.Target)
		return 0
	}
}

// RefreshPresence re-arms the presence TTL of every locally connected user.
func (r *Registry) RefreshPresence() {
	for _, userID := range r.OnlineUserIDs() {
		if err := r.presence.SetOnline(userID, r.presenceTTL); err != nil {
			r.log.Warn("Failed to refresh presence", "user_id", userID, "error", err)
		}
	}
}
