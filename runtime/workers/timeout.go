package workers

import (
	"context"
	"log/slog"
	"time"

	"match-lab/contract"
	"match-lab/domain/event"
	"match-lab/matching"
)

// TimeoutWorker bounds the maximum wait: once at least two users have passed
// the timeout threshold it forces pairings regardless of topic overlap. It
// also expires stale pending matches on the same schedule.
type TimeoutWorker struct {
	log         *slog.Logger
	coordinator *matching.Coordinator
	notifier    contract.INotifier
	interval    time.Duration
}

func NewTimeoutWorker(
	log *slog.Logger,
	coordinator *matching.Coordinator,
	notifier contract.INotifier,
	interval time.Duration,
) *TimeoutWorker {
	return &TimeoutWorker{log: log, coordinator: coordinator, notifier: notifier, interval: interval}
}

func (w *TimeoutWorker) Run(ctx context.Context) error {
	w.log.Info("Starting timeout escalation worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *TimeoutWorker) tick(ctx context.Context) {
	overdue, err := w.coordinator.OverdueCount()
	if err != nil {
		w.log.Error("Overdue check failed", "error", err)
		return
	}
	// A pairing needs two parties; with fewer overdue users the escalation
	// pass would be a no-op anyway.
	if overdue >= 2 {
		matches, err := w.coordinator.EscalateTimeouts(ctx)
		if err != nil {
			w.log.Error("Timeout escalation failed", "error", err)
		}
		for _, match := range matches {
			payload := event.NewMatchFound(
				match.ID, match.RoomID, match.Participants,
				match.Hashtags, match.Confidence, match.CreatedAt,
			)
			for _, userID := range match.Participants {
				w.notifier.Dispatch(event.ToUser(userID, payload))
			}
		}
	}

	expired, err := w.coordinator.ExpireStale(ctx)
	if err != nil {
		w.log.Error("Match expiry pass failed", "error", err)
		return
	}
	if expired > 0 {
		w.log.Info("Expired stale matches", "count", expired)
	}
}
