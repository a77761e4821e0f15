package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"meet-relay/contract"
	"meet-relay/domain"
	"meet-relay/domain/event"
	"meet-relay/observability"

	"github.com/gorilla/websocket"
)

// Broadcaster serializes an event once and sends it to a snapshot of
// the room's members. Fan-out is best effort, not atomic: a failed send
// deregisters that one connection and delivery continues for the rest.
// The registry lock is never held during a send; only the member
// snapshot is taken under it.
type Broadcaster struct {
	log         *slog.Logger
	registry    contract.Registry
	dedup       contract.Deduplicator
	stats       *observability.RelayStats
	sendTimeout time.Duration
}

func NewBroadcaster(
	log *slog.Logger,
	registry contract.Registry,
	dedup contract.Deduplicator,
	stats *observability.RelayStats,
	sendTimeout time.Duration,
) *Broadcaster {
	return &Broadcaster{
		log:         log,
		registry:    registry,
		dedup:       dedup,
		stats:       stats,
		sendTimeout: sendTimeout,
	}
}

func (b *Broadcaster) BroadcastChat(ctx context.Context, msg domain.ChatMessage) {
	payload, err := json.Marshal(event.NewChatBroadcast(msg))
	if err != nil {
		b.log.Error("Failed to serialize chat broadcast", "room", msg.Room, "err", err)
		return
	}
	b.deliver(ctx, msg.Room, payload)
}

// BroadcastLocation consults the deduplicator first. A suppressed update
// performs no send at all, to any member: suppression is global per
// update, not per recipient.
func (b *Broadcaster) BroadcastLocation(ctx context.Context, update domain.LocationUpdate) {
	if b.dedup.ShouldSuppress(update.Room, update.UserID, update.Latitude, update.Longitude) {
		b.stats.IncrSuppressed()
		b.log.Debug("Suppressed duplicate location",
			"room", update.Room, "userId", update.UserID)
		return
	}
	payload, err := json.Marshal(event.NewLocationBroadcast(update))
	if err != nil {
		b.log.Error("Failed to serialize location broadcast", "room", update.Room, "err", err)
		return
	}
	b.deliver(ctx, update.Room, payload)
}

// deliver sends the payload to every member in the snapshot, then reaps
// connections whose send failed. Each send gets its own timeout so one
// slow client cannot stall the whole fan-out.
func (b *Broadcaster) deliver(ctx context.Context, room domain.RoomCode, payload []byte) {
	members := b.registry.MembersOf(room)

	var failed []contract.Connection
	delivered := uint64(0)
	for _, conn := range members {
		sendCtx, cancel := context.WithTimeout(ctx, b.sendTimeout)
		err := conn.Send(sendCtx, payload)
		cancel()
		if err != nil {
			b.stats.IncrSendFailures()
			b.log.Warn("Failed to send to a client, deregistering",
				"room", room, "connId", conn.ID(), "err", err)
			failed = append(failed, conn)
			continue
		}
		delivered++
	}
	b.stats.IncrDelivered(delivered)

	for _, conn := range failed {
		b.reap(conn)
	}
}

// reap removes a dead connection from the registry and clears the room's
// dedup cache when the room emptied as a result.
func (b *Broadcaster) reap(conn contract.Connection) {
	room, emptied := b.registry.Leave(conn)
	if emptied {
		b.dedup.Clear(room)
	}
	if err := conn.Close(websocket.CloseGoingAway, "send failed"); err != nil {
		b.log.Debug(fmt.Sprintf("Closing dead connection %s: %v", conn.ID(), err))
	}
}
