package runtime

import (
	"meet-relay/contract"
	"meet-relay/domain"
	"sync"
)

type Set map[string]contract.Connection

// Registry is the live-connection directory: room code to member set,
// plus the reverse mapping from a connection to its room. All methods
// are safe for concurrent use; none of them performs I/O, so the lock
// is never held across a network send.
type Registry struct {
	mu          sync.RWMutex
	RoomMembers map[domain.RoomCode]Set
	Rooms       map[string]domain.RoomCode // connection ID -> room
}

func NewRegistry() *Registry {
	return &Registry{
		RoomMembers: make(map[domain.RoomCode]Set),
		Rooms:       make(map[string]domain.RoomCode),
	}
}

// Join registers the connection under the room, creating the member set
// on first join. Join is called exactly once per physical connection,
// so no duplicate handling is needed beyond map identity.
func (r *Registry) Join(room domain.RoomCode, conn contract.Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.RoomMembers[room]; !ok {
		r.RoomMembers[room] = make(Set)
	}
	r.RoomMembers[room][conn.ID()] = conn
	r.Rooms[conn.ID()] = room
}

// Leave removes the connection from its room and deletes the room entry
// when the member set becomes empty, so no key is ever left pointing to
// an empty set. Safe to call for a connection that never joined or was
// already removed.
func (r *Registry) Leave(conn contract.Connection) (domain.RoomCode, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.Rooms[conn.ID()]
	if !ok {
		return "", false
	}
	delete(r.Rooms, conn.ID())

	members, ok := r.RoomMembers[room]
	if !ok {
		return room, false
	}
	delete(members, conn.ID())
	if len(members) == 0 {
		delete(r.RoomMembers, room)
		return room, true
	}
	return room, false
}

// MembersOf returns a snapshot copy of the room's connections.
// Callers iterate the snapshot outside the lock, so broadcast sends
// never block new joins or leaves.
func (r *Registry) MembersOf(room domain.RoomCode) []contract.Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.RoomMembers[room]
	if !ok {
		return nil
	}
	snapshot := make([]contract.Connection, 0, len(members))
	for _, conn := range members {
		snapshot = append(snapshot, conn)
	}
	return snapshot
}

// CountOf reports the size of the room's live member set.
// Used for the admission capacity check.
func (r *Registry) CountOf(room domain.RoomCode) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.RoomMembers[room])
}
