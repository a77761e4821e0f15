//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"meet-relay/domain"
	"reflect"
)

// Connection is the transport-side handle held by the core.
// The transport layer owns the socket; the core only enqueues
// payloads and may request a close.
type Connection interface {
	ID() string
	Send(ctx context.Context, payload []byte) error
	Close(code int, reason string) error
}

// Registry tracks which live connections belong to which room.
// A connection belongs to at most one room at a time.
type Registry interface {
	Join(room domain.RoomCode, conn Connection)
	// Leave is idempotent. It reports the room the connection belonged to
	// and whether that room became empty (and was removed) as a result.
	Leave(conn Connection) (room domain.RoomCode, emptied bool)
	// MembersOf returns a snapshot copy, never a live view.
	MembersOf(room domain.RoomCode) []Connection
	CountOf(room domain.RoomCode) int
}

// Deduplicator suppresses location broadcasts whose coordinates are
// unchanged from the previous update of the same (room, user).
type Deduplicator interface {
	ShouldSuppress(room domain.RoomCode, userID string, lat, lon float64) bool
	Clear(room domain.RoomCode)
}

// Broadcaster fans one event out to every current member of a room.
// Delivery is best effort; failures never propagate to the caller.
type Broadcaster interface {
	BroadcastChat(ctx context.Context, msg domain.ChatMessage)
	BroadcastLocation(ctx context.Context, update domain.LocationUpdate)
}

// HistoryStore persists chat messages and location points.
// Messages returns the room's chat history in ascending timestamp order.
type HistoryStore interface {
	RecordMessage(msg domain.ChatMessage) error
	Messages(room domain.RoomCode) ([]domain.ChatMessage, error)
	RecordLocation(update domain.LocationUpdate) error
}

// RoomCounter maintains the advisory per-room member count.
// Increment and Decrement are atomic read-modify-writes: two concurrent
// joins must never both observe the same count.
type RoomCounter interface {
	// Count reports the persisted count and whether a record exists.
	Count(room domain.RoomCode) (int, bool, error)
	SetCount(room domain.RoomCode, count int) error
	DeleteCount(room domain.RoomCode) error
	// Increment creates the record at 1 when absent. It reports the new
	// count and whether the record pre-existed.
	Increment(room domain.RoomCode) (count int, existed bool, err error)
	// Decrement deletes the record when the count reaches zero.
	Decrement(room domain.RoomCode) (int, error)
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
