package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"meet-relay/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// HistoryRepository persists chat messages and location points in
// BadgerDB. Values are the wire JSON shapes: the payloads are JSON on
// the wire already, so storing them the same way avoids a second schema.
type HistoryRepository struct {
	db    *badger.DB
	log   *slog.Logger
	limit *int
}

func NewHistoryRepository(db *badger.DB, log *slog.Logger, limit *int) HistoryRepository {
	return HistoryRepository{db: db, log: log, limit: limit}
}

// StoredMessage is the on-disk shape of one chat message.
// Exported for the history inspection tool.
type StoredMessage struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

type storedLocation struct {
	UserID    string  `json:"userId"`
	Username  string  `json:"username"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

// RecordMessage persists a chat message.
// The key is formatted as "msg:{room}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order equals timestamp order).
//  2. Prevent data loss by using UUID as a collision disconnector if two
//     messages arrive at the same millisecond.
func (h HistoryRepository) RecordMessage(msg domain.ChatMessage) error {
	key := messageKey(msg.Room, msg.Timestamp, uuid.New())
	bytes, err := json.Marshal(StoredMessage{
		UserID:    msg.UserID,
		Name:      msg.Name,
		Message:   msg.Text,
		Timestamp: msg.Timestamp,
	})
	if err != nil {
		return err
	}
	return h.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// Messages retrieves the room's chat history using a forward prefix
// scan. Thanks to the padded timestamp in the key, iteration order is
// ascending timestamp order, which is exactly the replay order. Equal
// timestamps keep insertion order via the UUID suffix.
func (h HistoryRepository) Messages(room domain.RoomCode) ([]domain.ChatMessage, error) {
	var stored []StoredMessage
	err := h.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%s:", room))
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if h.limit != nil && len(stored) == *h.limit {
				h.log.Debug(fmt.Sprintf("Maximum of %d replayed messages reached", *h.limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var sm StoredMessage
				if err := json.Unmarshal(value, &sm); err != nil {
					return err
				}
				stored = append(stored, sm)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(stored, func(sm StoredMessage, _ int) domain.ChatMessage {
		return domain.ChatMessage{
			Room:      room,
			UserID:    sm.UserID,
			Name:      sm.Name,
			Text:      sm.Message,
			Timestamp: sm.Timestamp,
		}
	}), nil
}

// RecordLocation persists a location point under the "loc:" namespace.
// Locations are append-only history here; the latest-position dedup
// cache lives in memory, not in this store.
func (h HistoryRepository) RecordLocation(update domain.LocationUpdate) error {
	key := fmt.Sprintf("loc:%s:%019d:%s", update.Room, update.Timestamp, uuid.New())
	bytes, err := json.Marshal(storedLocation{
		UserID:    update.UserID,
		Username:  update.Username,
		Latitude:  update.Latitude,
		Longitude: update.Longitude,
		Timestamp: update.Timestamp,
	})
	if err != nil {
		return err
	}
	return h.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

func messageKey(room domain.RoomCode, timestampMillis int64, id uuid.UUID) string {
	return fmt.Sprintf("msg:%s:%019d:%s", room, timestampMillis, id)
}
