// Package event defines the outbound wire payloads fanned out to room
// members. Field names and the "type" discriminator are part of the
// client protocol and must not change.
package event

import (
	"meet-relay/domain"
)

type Event interface {
	Room() domain.RoomCode
}

// ChatBroadcast is the JSON payload delivered for a chat message,
// both for live sends and for history replay.
type ChatBroadcast struct {
	Type      string `json:"type"`
	PinCode   string `json:"pinCode"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

func NewChatBroadcast(m domain.ChatMessage) ChatBroadcast {
	return ChatBroadcast{
		Type:      "chat",
		PinCode:   string(m.Room),
		UserID:    m.UserID,
		Name:      m.Name,
		Message:   m.Text,
		Timestamp: m.Timestamp,
	}
}

func (e ChatBroadcast) Room() domain.RoomCode {
	return domain.RoomCode(e.PinCode)
}

// LocationBroadcast is the JSON payload delivered for a location update.
// Note the protocol uses "username" here, not "name".
type LocationBroadcast struct {
	Type      string  `json:"type"`
	PinCode   string  `json:"pinCode"`
	UserID    string  `json:"userId"`
	Username  string  `json:"username"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

func NewLocationBroadcast(u domain.LocationUpdate) LocationBroadcast {
	return LocationBroadcast{
		Type:      "location",
		PinCode:   string(u.Room),
		UserID:    u.UserID,
		Username:  u.Username,
		Latitude:  u.Latitude,
		Longitude: u.Longitude,
		Timestamp: u.Timestamp,
	}
}

func (e LocationBroadcast) Room() domain.RoomCode {
	return domain.RoomCode(e.PinCode)
}
