package workers

import (
	"context"
	"log/slog"
	"time"

	"match-lab/contract"
	"match-lab/domain"
	"match-lab/domain/event"
)

// PresenceWorker diffs the online-user set between ticks and announces the
// changes to matching connections. The set comes from the shared presence
// store, not this process's connection table, so users whose TTL entry
// lapsed show up as departures. Each tick first re-arms the TTLs of locally
// connected users so a healthy process keeps its users visible.
type PresenceWorker struct {
	log      *slog.Logger
	presence contract.IPresenceRepository
	notifier contract.INotifier
	refresh  func()
	interval time.Duration

	previous map[string]struct{}
}

func NewPresenceWorker(
	log *slog.Logger,
	presence contract.IPresenceRepository,
	notifier contract.INotifier,
	refresh func(),
	interval time.Duration,
) *PresenceWorker {
	return &PresenceWorker{
		log:      log,
		presence: presence,
		notifier: notifier,
		refresh:  refresh,
		interval: interval,
		previous: make(map[string]struct{}),
	}
}

func (w *PresenceWorker) Run(ctx context.Context) error {
	w.log.Info("Starting presence worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.tick()
		}
	}
}

func (w *PresenceWorker) tick() {
	w.refresh()

	online, err := w.presence.OnlineUsers()
	if err != nil {
		// Keep the previous set; a failed read must not fake departures.
		w.log.Error("Presence read failed", "error", err)
		return
	}
	current := make(map[string]struct{})
	for _, userID := range online {
		current[userID] = struct{}{}
	}

	for userID := range current {
		if _, was := w.previous[userID]; !was {
			w.announce(userID, true)
		}
	}
	for userID := range w.previous {
		if _, still := current[userID]; !still {
			w.announce(userID, false)
		}
	}
	w.previous = current
}

func (w *PresenceWorker) announce(userID string, online bool) {
	payload := event.NewUserStatusChange(userID, online)
	w.notifier.Dispatch(event.ToKind(domain.ConnectionMatching, userID, payload))
}
