package domain

import (
	"time"

	"match-lab/errors"
)

type MatchStatus string

const (
	MatchPending   MatchStatus = "PENDING"
	MatchMatched   MatchStatus = "MATCHED"
	MatchCancelled MatchStatus = "CANCELLED"
	MatchExpired   MatchStatus = "EXPIRED"
)

// Terminal reports whether the status ends the match lifecycle. A user may
// appear in at most one non-terminal match at a time.
func (s MatchStatus) Terminal() bool {
	return s == MatchCancelled || s == MatchExpired
}

// Match is the outcome entity pairing two or more users. Once MATCHED, the
// participants and room are immutable; only the status may still move to a
// terminal value.
type Match struct {
	ID           string      `json:"id"`
	Participants []string    `json:"participants"`
	Status       MatchStatus `json:"status"`
	Hashtags     []string    `json:"hashtags"`
	Confidence   float64     `json:"confidence"`
	CreatedAt    time.Time   `json:"created_at"`
	MatchedAt    *time.Time  `json:"matched_at,omitempty"`
	RoomID       string      `json:"room_id,omitempty"`
}

// HasParticipant reports whether userID takes part in the match.
func (m Match) HasParticipant(userID string) bool {
	for _, p := range m.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// Transition validates and applies a status change. PENDING may move to any
// other status; MATCHED may only be cancelled; terminal statuses are frozen.
func (m *Match) Transition(to MatchStatus) error {
	switch {
	case m.Status.Terminal():
		return errors.ErrTerminalMatch
	case m.Status == MatchPending:
		// all moves allowed
	case m.Status == MatchMatched && to == MatchCancelled:
		// ending an established conversation
	default:
		return errors.ErrInvalidTransition
	}
	m.Status = to
	if to == MatchMatched && m.MatchedAt == nil {
		now := time.Now().UTC()
		m.MatchedAt = &now
	}
	return nil
}
