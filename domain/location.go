package domain

// LocationUpdate carries the latest known position of a user in a room.
// Only the newest coordinate pair matters for broadcast deduplication;
// the history store may still keep every point.
type LocationUpdate struct {
	Room      RoomCode
	UserID    string
	Username  string
	Latitude  float64
	Longitude float64
	Timestamp int64
}
