package repositories

import (
	"log/slog"
	"testing"

	"meet-relay/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Record_Multiple_Messages(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	repository := NewHistoryRepository(db, slog.Default(), nil)
	room := domain.RoomCode("4821")
	at := int64(1700000000000)
	messages := []domain.ChatMessage{
		{Room: room, UserID: "u1", Name: "Alice", Text: "first", Timestamp: at},
		{Room: room, UserID: "u2", Name: "Bob", Text: "second", Timestamp: at + 60_000},
		{Room: room, UserID: "u3", Name: "Clara", Text: "third", Timestamp: at + 120_000},
	}
	for _, msg := range messages {
		req.NoError(repository.RecordMessage(msg))
	}

	fetched, err := repository.Messages(room)
	req.NoError(err)
	req.Len(fetched, len(messages))
	req.Equal(messages, fetched)
}

func Test_Messages_Come_Back_In_Timestamp_Order(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	repository := NewHistoryRepository(db, slog.Default(), nil)
	room := domain.RoomCode("4821")

	// Given messages recorded out of chronological order
	req.NoError(repository.RecordMessage(domain.ChatMessage{
		Room: room, UserID: "u2", Name: "Bob", Text: "later", Timestamp: 1700000060000}))
	req.NoError(repository.RecordMessage(domain.ChatMessage{
		Room: room, UserID: "u1", Name: "Alice", Text: "earlier", Timestamp: 1700000000000}))

	// When fetching the history
	fetched, err := repository.Messages(room)
	req.NoError(err)

	// Then the padded timestamp key restored chronological order
	req.Len(fetched, 2)
	req.Equal("earlier", fetched[0].Text)
	req.Equal("later", fetched[1].Text)
}

func Test_Record_Multiple_Messages_And_Limit(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	limit := 2
	repository := NewHistoryRepository(db, slog.Default(), &limit)
	room := domain.RoomCode("4821")
	at := int64(1700000000000)
	for i, text := range []string{"first", "second", "third"} {
		req.NoError(repository.RecordMessage(domain.ChatMessage{
			Room: room, UserID: "u1", Name: "Alice", Text: text, Timestamp: at + int64(i)*60_000,
		}))
	}

	fetched, err := repository.Messages(room)
	req.NoError(err)
	req.Len(fetched, limit)

	// The limit keeps the oldest messages, matching replay order
	req.Equal("first", fetched[0].Text)
	req.Equal("second", fetched[1].Text)
}

func Test_Rooms_Do_Not_Share_History(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	repository := NewHistoryRepository(db, slog.Default(), nil)
	req.NoError(repository.RecordMessage(domain.ChatMessage{
		Room: "4821", UserID: "u1", Name: "Alice", Text: "mine", Timestamp: 1}))
	req.NoError(repository.RecordMessage(domain.ChatMessage{
		Room: "9999", UserID: "u2", Name: "Bob", Text: "theirs", Timestamp: 1}))

	fetched, err := repository.Messages("4821")
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("mine", fetched[0].Text)
}

func Test_Empty_Room_Has_Empty_History(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	repository := NewHistoryRepository(db, slog.Default(), nil)
	fetched, err := repository.Messages("0000")
	req.NoError(err)
	req.Empty(fetched)
}

func Test_Record_Location_Does_Not_Pollute_Chat_History(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	repository := NewHistoryRepository(db, slog.Default(), nil)
	room := domain.RoomCode("4821")
	req.NoError(repository.RecordLocation(domain.LocationUpdate{
		Room: room, UserID: "u1", Username: "Alice",
		Latitude: 48.8566, Longitude: 2.3522, Timestamp: 1700000000000,
	}))

	// Locations live under their own prefix: chat replay never sees them
	fetched, err := repository.Messages(room)
	req.NoError(err)
	req.Empty(fetched)
}
