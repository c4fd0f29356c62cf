// Package repositories persists the shared matchmaking state in BadgerDB.
// Queue entries are keyed by a zero-padded ordering score so that a plain
// prefix iteration returns them in serving order, FIFO within equal priority.
package repositories

import (
	"encoding/json"
	"fmt"

	"match-lab/domain"
)

const (
	queuePrefix     = "queue:"
	queueUserPrefix = "queueuser:"
	matchPrefix     = "match:"
	matchUserPrefix = "matchuser:"
	presencePrefix  = "presence:"
)

// queueScore folds priority and enqueue time into one ordering key. The
// weight must exceed any unix timestamp so priority always dominates; lower
// scores are served first.
func queueScore(entry domain.QueueEntry, priorityWeight int64) int64 {
	return int64(entry.Preferences.Priority)*priorityWeight + entry.EnqueuedAt.Unix()
}

func queueEntryKey(entry domain.QueueEntry, priorityWeight int64) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", queuePrefix, queueScore(entry, priorityWeight), entry.UserID))
}

func queueUserKey(userID string) []byte {
	return []byte(queueUserPrefix + userID)
}

func matchKey(id string) []byte {
	return []byte(matchPrefix + id)
}

func matchUserKey(userID, matchID string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", matchUserPrefix, userID, matchID))
}

func presenceKey(userID string) []byte {
	return []byte(presencePrefix + userID)
}

func encodeQueueEntry(entry domain.QueueEntry) ([]byte, error) {
	return json.Marshal(entry)
}

func decodeQueueEntry(data []byte) (domain.QueueEntry, error) {
	var entry domain.QueueEntry
	err := json.Unmarshal(data, &entry)
	return entry, err
}

func encodeMatch(match domain.Match) ([]byte, error) {
	return json.Marshal(match)
}

func decodeMatch(data []byte) (domain.Match, error) {
	var match domain.Match
	err := json.Unmarshal(data, &match)
	return match, err
}
