package runtime

import (
	"meet-relay/domain"
	"sync"
)

type dedupKey struct {
	room   domain.RoomCode
	userID string
}

type coordinate struct {
	lat float64
	lon float64
}

// Deduplicator is the per (room, user) last-known-position cache.
// It is an idempotence guard against duplicate retransmission, not a
// motion filter: comparison is exact equality, never a distance
// threshold.
type Deduplicator struct {
	mu   sync.Mutex
	last map[dedupKey]coordinate
}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{last: make(map[dedupKey]coordinate)}
}

// ShouldSuppress reports true and leaves the cache unchanged when the
// stored coordinate for (room, userID) equals (lat, lon) exactly.
// Otherwise it stores the new coordinate and reports false.
func (d *Deduplicator) ShouldSuppress(room domain.RoomCode, userID string, lat, lon float64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := dedupKey{room: room, userID: userID}
	if prev, ok := d.last[key]; ok && prev.lat == lat && prev.lon == lon {
		return true
	}
	d.last[key] = coordinate{lat: lat, lon: lon}
	return false
}

// Clear drops every entry for the room. Called when the room becomes
// empty so a reused room code never inherits stale positions.
func (d *Deduplicator) Clear(room domain.RoomCode) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key := range d.last {
		if key.room == room {
			delete(d.last, key)
		}
	}
}
