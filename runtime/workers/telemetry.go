package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"match-lab/contract"
)

// TelemetryWorker logs process health (RSS, CPU, status) together with the
// current queue depth at a fixed interval.
type TelemetryWorker struct {
	log      *slog.Logger
	queue    contract.IQueueRepository
	interval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, queue contract.IQueueRepository, interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, queue: queue, interval: interval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rss, cpu, status, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "error", err)
				continue
			}
			queueSize, err := w.queue.Size()
			if err != nil {
				w.log.Warn("Queue size unavailable for telemetry", "error", err)
			}
			w.log.Info("telemetry",
				"pid", os.Getpid(),
				"status", status,
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"queue_size", queueSize,
			)
		}
	}
}

func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
