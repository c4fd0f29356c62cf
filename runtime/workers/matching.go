package workers

import (
	"context"
	"log/slog"
	"time"

	"match-lab/contract"
	"match-lab/domain/event"
)

// MatchingWorker periodically drains the waiting queue: it asks the
// coordinator for new matches, pushes match_found to each participant, and
// then refreshes the still-waiting users with their queue position. One
// failed iteration is logged and the next tick proceeds on schedule.
type MatchingWorker struct {
	log             *slog.Logger
	coordinator     contract.ICoordinator
	queue           contract.IQueueRepository
	notifier        contract.INotifier
	interval        time.Duration
	waitPerPosition time.Duration
}

func NewMatchingWorker(
	log *slog.Logger,
	coordinator contract.ICoordinator,
	queue contract.IQueueRepository,
	notifier contract.INotifier,
	interval, waitPerPosition time.Duration,
) *MatchingWorker {
	return &MatchingWorker{
		log:             log,
		coordinator:     coordinator,
		queue:           queue,
		notifier:        notifier,
		interval:        interval,
		waitPerPosition: waitPerPosition,
	}
}

func (w *MatchingWorker) Run(ctx context.Context) error {
	w.log.Info("Starting matching worker", "interval", w.interval)
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

func (w *MatchingWorker) tick(ctx context.Context) {
	matches, err := w.coordinator.DrainOnce(ctx)
	if err != nil {
		// Matches committed before the failure are already out of the
		// queue; their participants still need the notification.
		w.log.Error("Drain cycle failed", "error", err, "committed", len(matches))
	}

	for _, match := range matches {
		payload := event.NewMatchFound(
			match.ID, match.RoomID, match.Participants,
			match.Hashtags, match.Confidence, match.CreatedAt,
		)
		for _, userID := range match.Participants {
			if w.notifier.Dispatch(event.ToUser(userID, payload)) == 0 {
				w.log.Warn("Participant unreachable for match_found",
					"user_id", userID, "match_id", match.ID)
			}
		}
	}
	if err != nil {
		return
	}

	w.pushQueueUpdates()
}

// pushQueueUpdates tells every still-waiting user where they stand.
func (w *MatchingWorker) pushQueueUpdates() {
	waiting, err := w.queue.Snapshot()
	if err != nil {
		w.log.Error("Queue snapshot for updates failed", "error", err)
		return
	}

	size := len(waiting)
	for position, entry := range waiting {
		update := event.NewQueueUpdate(
			position+1,
			time.Duration(position+1)*w.waitPerPosition,
			size,
		)
		w.notifier.Dispatch(event.ToUser(entry.UserID, update))
	}
}
