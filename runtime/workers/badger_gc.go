package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"meet-relay/contract"

	"github.com/dgraph-io/badger/v4"
)

var _ contract.Worker = (*GCWorker)(nil)

// GCWorker runs Badger value-log garbage collection on a timer.
// Badger never reclaims value-log space on its own; without this the
// history store grows forever.
type GCWorker struct {
	log      *slog.Logger
	db       *badger.DB
	interval time.Duration
}

func NewGCWorker(log *slog.Logger, db *badger.DB, interval time.Duration) *GCWorker {
	return &GCWorker{log: log, db: db, interval: interval}
}

func (w *GCWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// A successful GC pass may free more files; loop until Badger
			// reports there is nothing left to rewrite.
			for {
				err := w.db.RunValueLogGC(0.5)
				if errors.Is(err, badger.ErrNoRewrite) {
					break
				}
				if err != nil {
					w.log.Warn("Badger value log GC failed", "err", err)
					break
				}
				w.log.Debug("Badger value log GC reclaimed a file")
			}
		}
	}
}
