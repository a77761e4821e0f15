package repositories

import (
	stderrors "errors"
	"log/slog"
	"strconv"

	"meet-relay/domain"

	"github.com/dgraph-io/badger/v4"
)

// CounterRepository keeps the advisory per-room member count. The count
// is stored as a decimal string under "room:{code}". Increment and
// Decrement run the whole read-modify-write inside one Badger
// transaction, so two concurrent joins can never both write the same
// stale count.
type CounterRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewCounterRepository(db *badger.DB, log *slog.Logger) CounterRepository {
	return CounterRepository{db: db, log: log}
}

func counterKey(room domain.RoomCode) []byte {
	return []byte("room:" + string(room))
}

// Count reports the persisted count and whether the record exists.
// A missing record is not an error: rooms only get a record on first join.
func (c CounterRepository) Count(room domain.RoomCode) (int, bool, error) {
	var count int
	found := false
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(counterKey(room))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			n, err := strconv.Atoi(string(value))
			if err != nil {
				return err
			}
			count, found = n, true
			return nil
		})
	})
	return count, found, err
}

func (c CounterRepository) SetCount(room domain.RoomCode, count int) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(counterKey(room), []byte(strconv.Itoa(count)))
	})
}

func (c CounterRepository) DeleteCount(room domain.RoomCode) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(counterKey(room))
	})
}

// Increment bumps the room's count, creating the record at 1 when
// absent. It reports the new count and whether the record pre-existed.
func (c CounterRepository) Increment(room domain.RoomCode) (int, bool, error) {
	var count int
	existed := false
	err := c.db.Update(func(txn *badger.Txn) error {
		key := counterKey(room)
		item, err := txn.Get(key)
		switch {
		case stderrors.Is(err, badger.ErrKeyNotFound):
			count = 1
		case err != nil:
			return err
		default:
			existed = true
			err = item.Value(func(value []byte) error {
				n, err := strconv.Atoi(string(value))
				if err != nil {
					return err
				}
				count = n + 1
				return nil
			})
			if err != nil {
				return err
			}
		}
		return txn.Set(key, []byte(strconv.Itoa(count)))
	})
	return count, existed, err
}

// Decrement lowers the room's count and deletes the record once it
// reaches zero, so an empty room leaves nothing behind. Decrementing a
// missing record is a no-op reported as zero.
func (c CounterRepository) Decrement(room domain.RoomCode) (int, error) {
	var count int
	err := c.db.Update(func(txn *badger.Txn) error {
		key := counterKey(room)
		item, err := txn.Get(key)
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		err = item.Value(func(value []byte) error {
			n, err := strconv.Atoi(string(value))
			if err != nil {
				return err
			}
			count = n - 1
			return nil
		})
		if err != nil {
			return err
		}
		if count <= 0 {
			count = 0
			return txn.Delete(key)
		}
		return txn.Set(key, []byte(strconv.Itoa(count)))
	})
	return count, err
}
