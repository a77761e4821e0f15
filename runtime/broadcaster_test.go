package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"meet-relay/domain"
	"meet-relay/mocks"
	"meet-relay/observability"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sendTimeout = 100 * time.Millisecond

func newMockConn(ctrl *gomock.Controller) *mocks.MockConnection {
	conn := mocks.NewMockConnection(ctrl)
	conn.EXPECT().ID().Return(uuid.NewString()).AnyTimes()
	return conn
}

func TestBroadcaster_Chat_Reaches_Every_Member(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewRegistry()
	dedup := NewDeduplicator()
	stats := observability.NewRelayStats()
	broadcaster := NewBroadcaster(slog.Default(), registry, dedup, stats, sendTimeout)

	room := domain.RoomCode("4821")
	var payloads [][]byte

	// Given two connections in the room, both accepting sends
	for i := 0; i < 2; i++ {
		conn := newMockConn(ctrl)
		conn.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, p []byte) error {
				payloads = append(payloads, p)
				return nil
			}).
			Times(1)
		registry.Join(room, conn)
	}

	// When a chat message is broadcast
	broadcaster.BroadcastChat(context.Background(), domain.ChatMessage{
		Room:      room,
		UserID:    "user-1",
		Name:      "Alice",
		Text:      "hello room",
		Timestamp: 1700000000000,
	})

	// Then both members received the same serialized event
	req.Len(payloads, 2)
	var evt map[string]any
	req.NoError(json.Unmarshal(payloads[0], &evt))
	req.Equal("chat", evt["type"])
	req.Equal("4821", evt["pinCode"])
	req.Equal("Alice", evt["name"])
	req.Equal("hello room", evt["message"])

	snapshot := stats.Snapshot()
	req.Equal(uint64(2), snapshot.BroadcastsDelivered)
}

func TestBroadcaster_Duplicate_Location_Sends_Nothing(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewRegistry()
	dedup := NewDeduplicator()
	stats := observability.NewRelayStats()
	broadcaster := NewBroadcaster(slog.Default(), registry, dedup, stats, sendTimeout)

	room := domain.RoomCode("4821")
	conn := newMockConn(ctrl)
	// Exactly one send: the duplicate never reaches the transport.
	conn.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	registry.Join(room, conn)

	update := domain.LocationUpdate{
		Room:      room,
		UserID:    "user-1",
		Username:  "Alice",
		Latitude:  48.8566,
		Longitude: 2.3522,
		Timestamp: 1700000000000,
	}

	// When the same position is broadcast twice
	broadcaster.BroadcastLocation(context.Background(), update)
	broadcaster.BroadcastLocation(context.Background(), update)

	// Then the second one was suppressed before any fan-out
	snapshot := stats.Snapshot()
	req.Equal(uint64(1), snapshot.SuppressedLocations)
	req.Equal(uint64(1), snapshot.BroadcastsDelivered)
}

func TestBroadcaster_Failed_Send_Reaps_The_Connection(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewRegistry()
	dedup := NewDeduplicator()
	stats := observability.NewRelayStats()
	broadcaster := NewBroadcaster(slog.Default(), registry, dedup, stats, sendTimeout)

	room := domain.RoomCode("4821")

	// Given a healthy member and a dead one
	healthy := newMockConn(ctrl)
	healthy.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	registry.Join(room, healthy)

	dead := newMockConn(ctrl)
	dead.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("connection reset")).
		Times(1)
	dead.EXPECT().Close(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	registry.Join(room, dead)

	// When a broadcast hits the dead connection
	broadcaster.BroadcastChat(context.Background(), domain.ChatMessage{
		Room: room, UserID: "user-1", Name: "Alice", Text: "hello", Timestamp: 1,
	})

	// Then the dead one is gone and delivery continued for the rest
	req.Equal(1, registry.CountOf(room))

	// And the next broadcast only reaches the survivor
	broadcaster.BroadcastChat(context.Background(), domain.ChatMessage{
		Room: room, UserID: "user-1", Name: "Alice", Text: "again", Timestamp: 2,
	})

	snapshot := stats.Snapshot()
	req.Equal(uint64(1), snapshot.SendFailures)
	req.Equal(uint64(3), snapshot.BroadcastsDelivered)
}

func TestBroadcaster_Reaping_The_Last_Member_Clears_The_Dedup_Cache(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewRegistry()
	dedup := NewDeduplicator()
	stats := observability.NewRelayStats()
	broadcaster := NewBroadcaster(slog.Default(), registry, dedup, stats, sendTimeout)

	room := domain.RoomCode("4821")
	dead := newMockConn(ctrl)
	dead.EXPECT().Send(gomock.Any(), gomock.Any()).Return(fmt.Errorf("broken pipe")).Times(1)
	dead.EXPECT().Close(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	registry.Join(room, dead)

	update := domain.LocationUpdate{
		Room: room, UserID: "user-1", Username: "Alice",
		Latitude: 48.8566, Longitude: 2.3522, Timestamp: 1,
	}

	// When the only member dies during a location fan-out
	broadcaster.BroadcastLocation(context.Background(), update)

	// Then the room emptied and its dedup entries went with it:
	// the same position is not suppressed afterwards
	req.Equal(0, registry.CountOf(room))
	req.False(dedup.ShouldSuppress(room, "user-1", 48.8566, 2.3522))
}
