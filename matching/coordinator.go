package matching

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"match-lab/contract"
	"match-lab/domain"
	"match-lab/errors"
)

// Coordinator is the single writer for match creation. All drains run
// through it, so a user can never be claimed by two concurrent pair-commit
// steps within one process.
type Coordinator struct {
	log           *slog.Logger
	queue         contract.IQueueRepository
	matches       contract.IMatchRepository
	minSimilarity float64
	matchTimeout  time.Duration
	matchTTL      time.Duration
	now           func() time.Time
}

func NewCoordinator(
	log *slog.Logger,
	queue contract.IQueueRepository,
	matches contract.IMatchRepository,
	minSimilarity float64,
	matchTimeout, matchTTL time.Duration,
) *Coordinator {
	return &Coordinator{
		log:           log,
		queue:         queue,
		matches:       matches,
		minSimilarity: minSimilarity,
		matchTimeout:  matchTimeout,
		matchTTL:      matchTTL,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

type pair struct {
	a, b  domain.QueueEntry
	score float64
}

// DrainOnce snapshots the queue, runs the similarity pass over the snapshot,
// then the timeout pass over the unclaimed remainder, and commits each
// resulting pair atomically. A pair whose commit loses the race against a
// cancel or disconnect is dropped without affecting the rest of the batch.
func (c *Coordinator) DrainOnce(ctx context.Context) ([]domain.Match, error) {
	snapshot, err := c.queue.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("queue snapshot: %w", err)
	}

	claimed := make(map[string]struct{})
	pairs := c.similarityPass(snapshot, claimed)

	var remainder []domain.QueueEntry
	for _, entry := range snapshot {
		if _, ok := claimed[entry.UserID]; !ok {
			remainder = append(remainder, entry)
		}
	}
	pairs = append(pairs, c.timeoutPass(remainder)...)

	return c.commit(ctx, pairs)
}

// EscalateTimeouts runs only the forced-pairing path. With fewer than two
// overdue users it is a no-op: a pairing needs two parties.
func (c *Coordinator) EscalateTimeouts(ctx context.Context) ([]domain.Match, error) {
	snapshot, err := c.queue.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("queue snapshot: %w", err)
	}
	return c.commit(ctx, c.timeoutPass(snapshot))
}

// OverdueCount reports how many waiting users have passed the timeout
// threshold. The timeout loop checks this before invoking escalation.
func (c *Coordinator) OverdueCount() (int, error) {
	snapshot, err := c.queue.Snapshot()
	if err != nil {
		return 0, fmt.Errorf("queue snapshot: %w", err)
	}
	return len(TimedOut(snapshot, c.matchTimeout, c.now())), nil
}

// ExpireStale moves PENDING matches older than the match TTL to EXPIRED.
func (c *Coordinator) ExpireStale(ctx context.Context) (int, error) {
	stale, err := c.matches.FindPendingOlderThan(c.now().Add(-c.matchTTL))
	if err != nil {
		return 0, fmt.Errorf("find stale matches: %w", err)
	}
	expired := 0
	for _, match := range stale {
		if ctx.Err() != nil {
			return expired, ctx.Err()
		}
		if _, err := c.matches.UpdateStatus(match.ID, domain.MatchExpired); err != nil {
			c.log.Warn("Failed to expire match", "match_id", match.ID, "error", err)
			continue
		}
		expired++
	}
	return expired, nil
}

// similarityPass selects disjoint pairs in queue order, so the result is
// deterministic for a given snapshot. Users claimed earlier in the pass are
// excluded as candidates for everyone after them.
func (c *Coordinator) similarityPass(snapshot []domain.QueueEntry, claimed map[string]struct{}) []pair {
	var pairs []pair
	for _, entry := range snapshot {
		if _, ok := claimed[entry.UserID]; ok {
			continue
		}
		var candidates []domain.QueueEntry
		for _, other := range snapshot {
			if _, ok := claimed[other.UserID]; ok || other.UserID == entry.UserID {
				continue
			}
			candidates = append(candidates, other)
		}
		best, score, found := FindBestMatch(entry, candidates, c.minSimilarity)
		if !found {
			continue
		}
		claimed[entry.UserID] = struct{}{}
		claimed[best.UserID] = struct{}{}
		pairs = append(pairs, pair{a: entry, b: best, score: score})
	}
	return pairs
}

func (c *Coordinator) timeoutPass(remainder []domain.QueueEntry) []pair {
	overdue := TimedOut(remainder, c.matchTimeout, c.now())
	if len(overdue) < 2 {
		return nil
	}
	var pairs []pair
	for _, duo := range PairConsecutive(overdue) {
		pairs = append(pairs, pair{a: duo[0], b: duo[1], score: Jaccard(duo[0].Hashtags, duo[1].Hashtags)})
	}
	return pairs
}

// commit atomically removes both participants from the queue and persists
// the match, one pair at a time. ErrRaceLost aborts only the affected pair;
// a store failure aborts the rest of the batch so nothing half-commits.
func (c *Coordinator) commit(ctx context.Context, pairs []pair) ([]domain.Match, error) {
	var created []domain.Match
	for _, p := range pairs {
		if ctx.Err() != nil {
			return created, ctx.Err()
		}
		match := c.buildMatch(p)
		if err := c.queue.CommitMatch(match); err != nil {
			if stderrors.Is(err, errors.ErrRaceLost) {
				c.log.Warn("Pair lost the race against a dequeue, skipping",
					"users", match.Participants)
				continue
			}
			return created, fmt.Errorf("commit match: %w", err)
		}
		c.log.Info("Match created",
			"match_id", match.ID,
			"participants", match.Participants,
			"confidence", match.Confidence,
		)
		created = append(created, match)
	}
	return created, nil
}

func (c *Coordinator) buildMatch(p pair) domain.Match {
	now := c.now()
	shared := lo.Intersect(p.a.Hashtags, p.b.Hashtags)
	sort.Strings(shared)
	return domain.Match{
		ID:           uuid.NewString(),
		Participants: []string{p.a.UserID, p.b.UserID},
		Status:       domain.MatchMatched,
		Hashtags:     shared,
		Confidence:   p.score,
		CreatedAt:    now,
		MatchedAt:    &now,
		RoomID:       uuid.NewString(),
	}
}
