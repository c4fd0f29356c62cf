// Package event defines the WebSocket message envelope. Every message, in
// both directions, carries a "type" tag; decoding dispatches on the tag so
// that malformed or unknown payloads are rejected at the boundary.
package event

import (
	"encoding/json"
	"time"

	"match-lab/errors"
)

type Type string

const (
	// client -> server
	TypeAuth Type = "auth"
	TypePing Type = "ping"
	// server -> client
	TypeAuthenticated    Type = "authenticated"
	TypePong             Type = "pong"
	TypeQueueUpdate      Type = "queue_update"
	TypeMatchFound       Type = "match_found"
	TypeUserStatusChange Type = "user_status_change"
	TypeError            Type = "error"
)

// Inbound is the decoded form of a client message, exactly one payload set.
type Inbound struct {
	Type Type
	Auth *Auth
	Ping *Ping
}

type Auth struct {
	Token string `json:"token"`
}

type Ping struct{}

// DecodeInbound parses a raw client frame. Unknown or untagged messages are
// rejected with ErrInvalidMessage; the caller replies with an error frame and
// keeps the connection open.
func DecodeInbound(data []byte) (Inbound, error) {
	var probe struct {
		Type Type `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Inbound{}, errors.ErrInvalidMessage
	}

	switch probe.Type {
	case TypeAuth:
		var payload Auth
		if err := json.Unmarshal(data, &payload); err != nil || payload.Token == "" {
			return Inbound{}, errors.ErrInvalidMessage
		}
		return Inbound{Type: TypeAuth, Auth: &payload}, nil
	case TypePing:
		return Inbound{Type: TypePing, Ping: &Ping{}}, nil
	default:
		return Inbound{}, errors.ErrInvalidMessage
	}
}

type Authenticated struct {
	Type        Type   `json:"type"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

func NewAuthenticated(userID, displayName string) Authenticated {
	return Authenticated{Type: TypeAuthenticated, UserID: userID, DisplayName: displayName}
}

type Pong struct {
	Type      Type  `json:"type"`
	Timestamp int64 `json:"timestamp"`
}

func NewPong(at time.Time) Pong {
	return Pong{Type: TypePong, Timestamp: at.UnixMilli()}
}

type QueueUpdate struct {
	Type              Type    `json:"type"`
	Position          int     `json:"position"`
	EstimatedWaitTime float64 `json:"estimated_wait_time"`
	QueueSize         int     `json:"queue_size"`
}

func NewQueueUpdate(position int, estimatedWait time.Duration, queueSize int) QueueUpdate {
	return QueueUpdate{
		Type:              TypeQueueUpdate,
		Position:          position,
		EstimatedWaitTime: estimatedWait.Seconds(),
		QueueSize:         queueSize,
	}
}

type MatchFound struct {
	Type         Type     `json:"type"`
	MatchID      string   `json:"match_id"`
	RoomID       string   `json:"room_id"`
	Participants []string `json:"participants"`
	Hashtags     []string `json:"hashtags"`
	Confidence   float64  `json:"confidence"`
	Timestamp    string   `json:"timestamp"`
}

func NewMatchFound(matchID, roomID string, participants, hashtags []string, confidence float64, at time.Time) MatchFound {
	return MatchFound{
		Type:         TypeMatchFound,
		MatchID:      matchID,
		RoomID:       roomID,
		Participants: participants,
		Hashtags:     hashtags,
		Confidence:   confidence,
		Timestamp:    at.UTC().Format(time.RFC3339),
	}
}

type UserStatusChange struct {
	Type     Type   `json:"type"`
	UserID   string `json:"user_id"`
	IsOnline bool   `json:"is_online"`
}

func NewUserStatusChange(userID string, online bool) UserStatusChange {
	return UserStatusChange{Type: TypeUserStatusChange, UserID: userID, IsOnline: online}
}

type Error struct {
	Type    Type   `json:"type"`
	Message string `json:"message"`
}

func NewError(message string) Error {
	return Error{Type: TypeError, Message: message}
}
