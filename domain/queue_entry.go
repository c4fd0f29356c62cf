// Package domain contains core concepts of the matchmaking system.
// No runtime, network, or storage logic should be added here.
package domain

import "time"

// QueueEntry is one waiting user's matching request. There is at most one
// entry per user while they wait; re-enqueueing replaces the previous entry
// and restarts the wait.
type QueueEntry struct {
	UserID      string      `json:"user_id"`
	Hashtags    []string    `json:"hashtags"`
	EnqueuedAt  time.Time   `json:"enqueued_at"`
	Preferences Preferences `json:"preferences"`
}

// WaitedFor returns how long the entry has been queued at the given instant.
func (e QueueEntry) WaitedFor(now time.Time) time.Duration {
	return now.Sub(e.EnqueuedAt)
}

// HashtagSet builds a set view of the entry's hashtags for overlap scoring.
func (e QueueEntry) HashtagSet() map[string]struct{} {
	set := make(map[string]struct{}, len(e.Hashtags))
	for _, h := range e.Hashtags {
		set[h] = struct{}{}
	}
	return set
}
