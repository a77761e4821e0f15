package runtime

import (
	"context"
	"testing"

	"meet-relay/contract"
	"meet-relay/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubConn struct {
	id string
}

func (s stubConn) ID() string                               { return s.id }
func (s stubConn) Send(ctx context.Context, p []byte) error { return nil }
func (s stubConn) Close(code int, reason string) error      { return nil }

var _ contract.Connection = stubConn{}

func newStubConn() stubConn {
	return stubConn{id: uuid.NewString()}
}

func TestRegistry_Join_One_Room_One_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	room := domain.RoomCode("4821")
	conn := newStubConn()

	// Given no connection is registered
	// And no room exists
	req.Empty(registry.RoomMembers)
	req.Empty(registry.Rooms)

	// When a connection joins a room
	registry.Join(room, conn)

	// Then
	req.Len(registry.RoomMembers, 1)
	req.Contains(registry.RoomMembers[room], conn.ID())
	req.Equal(room, registry.Rooms[conn.ID()])

	req.Len(registry.MembersOf(room), 1)
	req.Equal(1, registry.CountOf(room))
}

func TestRegistry_Join_One_Room_Multiple_Connections(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	room := domain.RoomCode("4821")
	conn1 := newStubConn()
	conn2 := newStubConn()

	// When connections join a room
	registry.Join(room, conn1)
	registry.Join(room, conn2)

	// Then
	req.Len(registry.RoomMembers[room], 2)
	req.Len(registry.MembersOf(room), 2)
	req.Equal(2, registry.CountOf(room))
}

func TestRegistry_Leave_Last_Connection_Empties_Room(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	room := domain.RoomCode("4821")
	conn := newStubConn()

	// Given a connection joined a room
	registry.Join(room, conn)

	// When the connection leaves
	left, emptied := registry.Leave(conn)

	// Then the room doesn't exist anymore
	req.Equal(room, left)
	req.True(emptied)
	req.Empty(registry.RoomMembers)
	req.Empty(registry.Rooms)
	req.Nil(registry.MembersOf(room))
}

func TestRegistry_Leave_One_Of_Multiple_Connections(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	room := domain.RoomCode("4821")
	conn1 := newStubConn()
	conn2 := newStubConn()

	// Given two connections joined a room
	registry.Join(room, conn1)
	registry.Join(room, conn2)

	// When one leaves
	left, emptied := registry.Leave(conn1)

	// Then the room remains with the other member
	req.Equal(room, left)
	req.False(emptied)
	req.Len(registry.RoomMembers[room], 1)
	req.Contains(registry.RoomMembers[room], conn2.ID())
}

func TestRegistry_Leave_Unknown_Connection_Is_Noop(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// When a connection that never joined leaves
	left, emptied := registry.Leave(newStubConn())

	// Then nothing happens
	req.Equal(domain.RoomCode(""), left)
	req.False(emptied)
}

func TestRegistry_MembersOf_Returns_A_Snapshot(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	room := domain.RoomCode("4821")
	conn := newStubConn()
	registry.Join(room, conn)

	// When taking a snapshot then mutating the registry
	snapshot := registry.MembersOf(room)
	registry.Leave(conn)

	// Then the snapshot is unaffected
	req.Len(snapshot, 1)
	req.Equal(0, registry.CountOf(room))
}
