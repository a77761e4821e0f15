// Package domain contains core concepts of the relay.
// This file defines ChatMessage and related rules.
// Messages are immutable once created.
package domain

// ChatMessage represents an immutable chat event.
// Timestamp is in milliseconds; the session assigns the server time
// when the client omitted one.
type ChatMessage struct {
	Room      RoomCode
	UserID    string
	Name      string
	Text      string
	Timestamp int64
}
