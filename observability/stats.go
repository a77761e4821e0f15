// Package observability aggregates relay counters for logging and the
// debug inspector. Counters are atomic; Snapshot is safe to call from
// any goroutine.
package observability

import (
	"runtime"
	"sync/atomic"
)

// StatsSnapshot is the point-in-time view reported by the stats worker
// and exposed on the debug inspector dashboard.
type StatsSnapshot struct {
	ActiveConnections   int64  `json:"active_connections"`
	FramesIn            uint64 `json:"frames_in"`
	BroadcastsDelivered uint64 `json:"broadcasts_delivered"`
	SendFailures        uint64 `json:"send_failures"`
	SuppressedLocations uint64 `json:"suppressed_locations"`
	HistoryReplays      uint64 `json:"history_replays"`
	PersistenceErrors   uint64 `json:"persistence_errors"`
	AllocMemMb          uint64 `json:"alloc_mem_mb"`
	NumGC               uint32 `json:"num_gc"`
}

type RelayStats struct {
	activeConnections   int64
	framesIn            uint64
	broadcastsDelivered uint64
	sendFailures        uint64
	suppressedLocations uint64
	historyReplays      uint64
	persistenceErrors   uint64
}

func NewRelayStats() *RelayStats {
	return &RelayStats{}
}

func (s *RelayStats) ConnOpened() {
	atomic.AddInt64(&s.activeConnections, 1)
}

func (s *RelayStats) ConnClosed() {
	atomic.AddInt64(&s.activeConnections, -1)
}

func (s *RelayStats) IncrFramesIn() {
	atomic.AddUint64(&s.framesIn, 1)
}

// IncrDelivered adds the number of member connections a broadcast
// actually reached.
func (s *RelayStats) IncrDelivered(n uint64) {
	atomic.AddUint64(&s.broadcastsDelivered, n)
}

func (s *RelayStats) IncrSendFailures() {
	atomic.AddUint64(&s.sendFailures, 1)
}

func (s *RelayStats) IncrSuppressed() {
	atomic.AddUint64(&s.suppressedLocations, 1)
}

func (s *RelayStats) IncrReplays() {
	atomic.AddUint64(&s.historyReplays, 1)
}

func (s *RelayStats) IncrPersistenceErrors() {
	atomic.AddUint64(&s.persistenceErrors, 1)
}

func (s *RelayStats) Snapshot() StatsSnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return StatsSnapshot{
		ActiveConnections:   atomic.LoadInt64(&s.activeConnections),
		FramesIn:            atomic.LoadUint64(&s.framesIn),
		BroadcastsDelivered: atomic.LoadUint64(&s.broadcastsDelivered),
		SendFailures:        atomic.LoadUint64(&s.sendFailures),
		SuppressedLocations: atomic.LoadUint64(&s.suppressedLocations),
		HistoryReplays:      atomic.LoadUint64(&s.historyReplays),
		PersistenceErrors:   atomic.LoadUint64(&s.persistenceErrors),
		AllocMemMb:          m.Alloc / 1024 / 1024,
		NumGC:               m.NumGC,
	}
}
