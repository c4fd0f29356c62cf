package event

import "match-lab/domain"

// TargetKind selects how a Notification is routed by the connection registry.
type TargetKind int

const (
	TargetUser TargetKind = iota
	TargetRoom
	TargetConnectionKind
)

// Notification is a transient value object produced by the broadcaster loops
// and consumed exactly once by the registry's send path. It is never
// persisted.
type Notification struct {
	Target  TargetKind
	Payload any

	UserID string
	Room   string
	Kind   domain.ConnectionKind
	// ExcludeUserID is honored for TargetConnectionKind broadcasts.
	ExcludeUserID string
}

// ToUser builds a notification fanned out to every connection of one user.
func ToUser(userID string, payload any) Notification {
	return Notification{Target: TargetUser, UserID: userID, Payload: payload}
}

// ToRoom builds a notification for every room connection in one room.
func ToRoom(room string, payload any) Notification {
	return Notification{Target: TargetRoom, Room: room, Payload: payload}
}

// ToKind builds a notification for every connection of a given kind.
func ToKind(kind domain.ConnectionKind, excludeUserID string, payload any) Notification {
	return Notification{Target: TargetConnectionKind, Kind: kind, ExcludeUserID: excludeUserID, Payload: payload}
}
