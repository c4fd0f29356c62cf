package matching

import (
	"sort"
	"time"

	"match-lab/domain"
)

// TimedOut returns every entry that has waited at least timeout at the given
// instant, ordered by wait time descending (longest-waiting first).
func TimedOut(snapshot []domain.QueueEntry, timeout time.Duration, now time.Time) []domain.QueueEntry {
	var overdue []domain.QueueEntry
	for _, entry := range snapshot {
		if entry.WaitedFor(now) >= timeout {
			overdue = append(overdue, entry)
		}
	}
	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].EnqueuedAt.Before(overdue[j].EnqueuedAt)
	})
	return overdue
}

// PairConsecutive walks an ordered overdue list and pairs neighbours
// (0 with 1, 2 with 3, ...). An odd entry at the end stays queued for the
// next cycle. Timeout pairs deliberately ignore topic similarity: their job
// is bounding maximum wait, not match quality.
func PairConsecutive(entries []domain.QueueEntry) [][2]domain.QueueEntry {
	var pairs [][2]domain.QueueEntry
	for i := 0; i+1 < len(entries); i += 2 {
		pairs = append(pairs, [2]domain.QueueEntry{entries[i], entries[i+1]})
	}
	return pairs
}
