// Package domain contains core concepts of the relay.
// No runtime, network, or UI logic should be added here.
package domain

// RoomCode identifies a room. Rooms have no record of their own:
// one exists exactly as long as at least one connection is joined to it.
type RoomCode string
