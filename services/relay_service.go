package services

import (
	"log/slog"

	"meet-relay/contract"
	"meet-relay/domain"
	"meet-relay/observability"
	"meet-relay/runtime"
)

// IRelayService admits connections into rooms. It is the seam between
// the transport layer and the core.
type IRelayService interface {
	Admit(room domain.RoomCode, conn contract.Connection) (*runtime.Session, error)
}

type RelayService struct {
	log         *slog.Logger
	registry    contract.Registry
	broadcaster contract.Broadcaster
	dedup       contract.Deduplicator
	history     contract.HistoryStore
	counter     contract.RoomCounter
	stats       *observability.RelayStats
	capacity    int
}

func NewRelayService(
	log *slog.Logger,
	registry contract.Registry,
	broadcaster contract.Broadcaster,
	dedup contract.Deduplicator,
	history contract.HistoryStore,
	counter contract.RoomCounter,
	stats *observability.RelayStats,
	capacity int,
) *RelayService {
	return &RelayService{
		log:         log,
		registry:    registry,
		broadcaster: broadcaster,
		dedup:       dedup,
		history:     history,
		counter:     counter,
		stats:       stats,
		capacity:    capacity,
	}
}

// Admit builds the per-connection session and runs the capacity check.
// On success the connection is registered and the session is Active.
func (s *RelayService) Admit(room domain.RoomCode, conn contract.Connection) (*runtime.Session, error) {
	session := runtime.NewSession(
		s.log, room, conn,
		s.registry, s.broadcaster, s.dedup,
		s.history, s.counter, s.stats,
	)
	if err := session.Admit(s.capacity); err != nil {
		return nil, err
	}
	return session, nil
}
