// Package ws owns every live client connection. Nothing outside the registry
// holds a reference to a connection; other components address users, rooms,
// or connection kinds and the registry fans out.
package ws

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"match-lab/domain"
)

const writeWait = 10 * time.Second

// transport is the subset of *websocket.Conn the registry relies on, split
// out so tests can wire fakes.
type transport interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

// Connection is one live client transport session scoped to a user and a
// purpose. It is created on handshake and destroyed on disconnect or
// repeated heartbeat failure.
type Connection struct {
	ID          string
	UserID      string
	Kind        domain.ConnectionKind
	RoomName    string
	ConnectedAt time.Time

	conn        transport
	send        chan []byte
	done        chan struct{}
	closeOnce   sync.Once
	missedPings atomic.Int32
}

func newConnection(conn transport, userID string, kind domain.ConnectionKind, room string, sendBuffer int) *Connection {
	c := &Connection{
		ID:          uuid.NewString(),
		UserID:      userID,
		Kind:        kind,
		RoomName:    room,
		ConnectedAt: time.Now().UTC(),
		conn:        conn,
		send:        make(chan []byte, sendBuffer),
		done:        make(chan struct{}),
	}
	conn.SetPongHandler(func(string) error {
		c.missedPings.Store(0)
		return nil
	})
	return c
}

// enqueue hands a frame to the write pump without blocking. A full buffer
// means the consumer cannot keep up and counts as a send failure.
func (c *Connection) enqueue(data []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// reply marshals and enqueues a payload on this connection only.
func (c *Connection) reply(payload any) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		return false
	}
	return c.enqueue(data)
}

// close tears the transport down exactly once; concurrent calls are no-ops.
func (c *Connection) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// writePump drains queued frames and drives the heartbeat. Every interval
// without a pong counts as a miss; hitting the limit evicts the peer on that
// tick, at most maxMissedPings intervals after its last pong. The failure
// callback removes the connection from the registry.
func (c *Connection) writePump(heartbeatInterval time.Duration, maxMissedPings int32, onFailure func(*Connection, error)) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				onFailure(c, err)
				return
			}
		case <-ticker.C:
			if c.missedPings.Add(1) >= maxMissedPings {
				onFailure(c, errHeartbeatExpired)
				return
			}
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				onFailure(c, err)
				return
			}
		}
	}
}
