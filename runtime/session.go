package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"meet-relay/contract"
	"meet-relay/domain"
	"meet-relay/errors"
	"meet-relay/observability"

	"github.com/go-playground/validator/v10"
)

// State is the lifecycle of one Session: Connecting lasts through the
// handshake and capacity check, Active is the event loop, Closed is
// terminal.
type State int

const (
	Connecting State = iota
	Active
	Closed
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Active:
		return "active"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	pingFrame = "ping"
	pongFrame = "pong"

	eventJoin  = "join"
	eventLeave = "leave"
)

var validate = validator.New()

// inboundEvent is the decoded shape of a client frame. All fields are
// optional; each handler checks only the fields it cares about.
// Latitude is a pointer so "field present" is distinguishable from 0.
type inboundEvent struct {
	EventType string   `json:"eventType"`
	UserID    string   `json:"userId"`
	Name      string   `json:"name"`
	PinCode   string   `json:"pinCode"`
	Message   string   `json:"message"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
	Username  string   `json:"username"`
	Timestamp int64    `json:"timestamp"`
}

// Session is the per-connection protocol handler. One instance exists
// per live connection and is driven by that connection's read loop, so
// state transitions never race: only Close may be reached from the
// transport teardown path, and it is idempotent.
//
// Dispatch deliberately runs the handlers as independent checks, not a
// switch: a single payload carrying both "message" and "latitude"
// triggers both the chat and the location branch. Clients rely on it.
type Session struct {
	log         *slog.Logger
	room        domain.RoomCode
	conn        contract.Connection
	registry    contract.Registry
	broadcaster contract.Broadcaster
	dedup       contract.Deduplicator
	history     contract.HistoryStore
	counter     contract.RoomCounter
	stats       *observability.RelayStats
	state       State
}

func NewSession(
	log *slog.Logger,
	room domain.RoomCode,
	conn contract.Connection,
	registry contract.Registry,
	broadcaster contract.Broadcaster,
	dedup contract.Deduplicator,
	history contract.HistoryStore,
	counter contract.RoomCounter,
	stats *observability.RelayStats,
) *Session {
	return &Session{
		log:         log.With("room", room, "connId", conn.ID()),
		room:        room,
		conn:        conn,
		registry:    registry,
		broadcaster: broadcaster,
		dedup:       dedup,
		history:     history,
		counter:     counter,
		stats:       stats,
		state:       Connecting,
	}
}

func (s *Session) State() State {
	return s.state
}

// Admit performs the capacity check and registers the connection.
// Check-then-admit is not atomic against concurrent admissions and may
// transiently overshoot the cap; this race is accepted.
func (s *Session) Admit(capacity int) error {
	if s.state != Connecting {
		return errors.ErrConnectionClosed
	}
	if s.registry.CountOf(s.room) >= capacity {
		return errors.ErrRoomFull
	}
	s.registry.Join(s.room, s.conn)
	s.state = Active
	s.log.Info("Connection admitted")
	return nil
}

// HandleFrame processes one inbound text frame while Active.
// Malformed payloads are logged and dropped; the session stays Active.
func (s *Session) HandleFrame(ctx context.Context, raw []byte) {
	if s.state != Active {
		return
	}
	s.stats.IncrFramesIn()

	if string(raw) == pingFrame {
		if err := s.conn.Send(ctx, []byte(pongFrame)); err != nil {
			s.log.Debug("Heartbeat reply failed", "err", err)
		}
		return
	}

	var evt inboundEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		s.log.Warn("Ignoring malformed payload", "err", err)
		return
	}

	// Independent predicates: more than one branch may fire for one payload.
	if evt.EventType == eventJoin {
		s.handleJoin(ctx, evt)
	}
	if evt.Message != "" {
		s.handleChat(ctx, evt)
	}
	if evt.Latitude != nil {
		s.handleLocation(ctx, evt)
	}
	if evt.EventType == eventLeave {
		s.handleLeave(evt)
	}
}

// handleJoin bumps the room's persisted member count and, when the room
// pre-existed, replays its chat history. Replay is unconditional per
// join event; it is not deduplicated against already-connected state.
func (s *Session) handleJoin(ctx context.Context, evt inboundEvent) {
	count, existed, err := s.counter.Increment(s.room)
	if err != nil {
		s.stats.IncrPersistenceErrors()
		s.log.Error("Failed to update room count on join", "err", err)
		return
	}
	s.log.Info("User joined room", "userId", evt.UserID, "name", evt.Name, "count", count)

	if existed {
		s.replayHistory(ctx)
	}
}

func (s *Session) replayHistory(ctx context.Context) {
	messages, err := s.history.Messages(s.room)
	if err != nil {
		s.stats.IncrPersistenceErrors()
		s.log.Error("Failed to load chat history", "err", err)
		return
	}
	s.stats.IncrReplays()
	for _, msg := range messages {
		s.broadcaster.BroadcastChat(ctx, msg)
	}
}

func (s *Session) handleChat(ctx context.Context, evt inboundEvent) {
	msg := domain.ChatMessage{
		Room:      s.room,
		UserID:    evt.UserID,
		Name:      evt.Name,
		Text:      evt.Message,
		Timestamp: serverTimestamp(evt.Timestamp),
	}
	s.persist("chat message", func() error {
		return s.history.RecordMessage(msg)
	})
	s.broadcaster.BroadcastChat(ctx, msg)
}

func (s *Session) handleLocation(ctx context.Context, evt inboundEvent) {
	if err := validate.Struct(evt); err != nil {
		s.log.Warn("Ignoring location with out-of-range coordinates", "err", err)
		return
	}
	update := domain.LocationUpdate{
		Room:      s.room,
		UserID:    evt.UserID,
		Username:  evt.Username,
		Latitude:  *evt.Latitude,
		Timestamp: serverTimestamp(evt.Timestamp),
	}
	if evt.Longitude != nil {
		update.Longitude = *evt.Longitude
	}
	s.persist("location", func() error {
		return s.history.RecordLocation(update)
	})
	s.broadcaster.BroadcastLocation(ctx, update)
}

// handleLeave only decrements the persisted count. It does not close
// the connection or touch the registry; that happens on real disconnect.
func (s *Session) handleLeave(evt inboundEvent) {
	count, err := s.counter.Decrement(s.room)
	if err != nil {
		s.stats.IncrPersistenceErrors()
		s.log.Error("Failed to update room count on leave", "err", err)
		return
	}
	s.log.Info("User left room", "userId", evt.UserID, "count", count)
}

// persist runs a store write off the broadcast path. Persistence is
// best effort: a failure is logged and counted, never surfaced to the
// client and never a precondition for delivery.
func (s *Session) persist(what string, fn func() error) {
	go func() {
		if err := fn(); err != nil {
			s.stats.IncrPersistenceErrors()
			s.log.Error(fmt.Sprintf("Failed to persist %s", what), "err", err)
		}
	}()
}

// Close transitions to Closed and runs registry cleanup exactly once.
// When this connection was the room's last member, the room's dedup
// entries are dropped with it.
func (s *Session) Close() {
	if s.state == Closed {
		return
	}
	s.state = Closed

	room, emptied := s.registry.Leave(s.conn)
	if emptied {
		s.dedup.Clear(room)
	}
	s.log.Info("Session closed", "roomEmptied", emptied)
}

func serverTimestamp(clientMillis int64) int64 {
	if clientMillis != 0 {
		return clientMillis
	}
	return time.Now().UnixMilli()
}
