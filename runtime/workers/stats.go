package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"meet-relay/contract"
	"meet-relay/observability"

	"github.com/shirou/gopsutil/process"
)

// Ensure *StatsWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*StatsWorker)(nil)

// StatsWorker periodically reports relay counters together with the
// process's own CPU and RSS usage. It is purely observational; losing a
// tick costs nothing.
type StatsWorker struct {
	log      *slog.Logger
	stats    *observability.RelayStats
	interval time.Duration
}

func NewStatsWorker(log *slog.Logger, stats *observability.RelayStats, interval time.Duration) *StatsWorker {
	return &StatsWorker{log: log, stats: stats, interval: interval}
}

func (w *StatsWorker) Run(ctx context.Context) error {
	w.log.Info("Starting relay stats worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}

			snapshot := w.stats.Snapshot()
			w.log.Info("Relay stats",
				"connections", snapshot.ActiveConnections,
				"framesIn", snapshot.FramesIn,
				"delivered", snapshot.BroadcastsDelivered,
				"sendFailures", snapshot.SendFailures,
				"suppressed", snapshot.SuppressedLocations,
				"replays", snapshot.HistoryReplays,
				"persistenceErrors", snapshot.PersistenceErrors,
				"allocMb", snapshot.AllocMemMb,
				"cpuPercent", cpu,
				"rssBytes", rss,
			)
		}
	}
}

// selfStats retrieves memory and CPU metrics for the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
