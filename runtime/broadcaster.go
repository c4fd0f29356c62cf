// Package runtime wires the supervised background loops that drive
// matchmaking and event delivery. It schedules; the matching package decides.
package runtime

import (
	"context"
	"log/slog"
	"time"

	"match-lab/contract"
	"match-lab/matching"
	"match-lab/runtime/workers"
)

// Intervals groups the loop schedules. Every tunable has exactly one home
// here instead of being passed ad hoc by different callers.
type Intervals struct {
	Matching        time.Duration
	Timeout         time.Duration
	Presence        time.Duration
	Telemetry       time.Duration
	WaitPerPosition time.Duration
}

// Broadcaster runs the matching, timeout, presence, and telemetry loops as
// independently supervised workers. The loops share no mutable state except
// the queue, presence store, and registry, each mutated only through its own
// operations; one loop failing or lagging never blocks the others.
type Broadcaster struct {
	log         *slog.Logger
	supervisor  contract.ISupervisor
	coordinator *matching.Coordinator
	queue       contract.IQueueRepository
	presence    contract.IPresenceRepository
	notifier    contract.INotifier
	refresh     func()
	intervals   Intervals
}

func NewBroadcaster(
	log *slog.Logger,
	supervisor contract.ISupervisor,
	coordinator *matching.Coordinator,
	queue contract.IQueueRepository,
	presence contract.IPresenceRepository,
	notifier contract.INotifier,
	refresh func(),
	intervals Intervals,
) *Broadcaster {
	return &Broadcaster{
		log:         log,
		supervisor:  supervisor,
		coordinator: coordinator,
		queue:       queue,
		presence:    presence,
		notifier:    notifier,
		refresh:     refresh,
		intervals:   intervals,
	}
}

// Start registers the loops and runs the supervisor until ctx is cancelled
// or Stop is called. It blocks; callers usually run it in a goroutine.
func (b *Broadcaster) Start(ctx context.Context) {
	b.supervisor.Add(
		workers.NewMatchingWorker(b.log, b.coordinator, b.queue, b.notifier,
			b.intervals.Matching, b.intervals.WaitPerPosition),
		workers.NewTimeoutWorker(b.log, b.coordinator, b.notifier, b.intervals.Timeout),
		workers.NewPresenceWorker(b.log, b.presence, b.notifier, b.refresh, b.intervals.Presence),
		workers.NewTelemetryWorker(b.log, b.queue, b.intervals.Telemetry),
	)
	b.log.Info("Broadcaster loops starting",
		"matching", b.intervals.Matching,
		"timeout", b.intervals.Timeout,
		"presence", b.intervals.Presence,
	)
	b.supervisor.Run(ctx)
}

func (b *Broadcaster) Stop() {
	b.supervisor.Stop()
}
