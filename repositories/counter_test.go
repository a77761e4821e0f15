package repositories

import (
	"log/slog"
	"testing"

	"meet-relay/domain"

	"github.com/stretchr/testify/require"
)

func Test_Count_Of_An_Unknown_Room(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewCounterRepository(db, slog.Default())

	count, found, err := repository.Count("4821")
	req.NoError(err)
	req.False(found)
	req.Zero(count)
}

func Test_Increment_Creates_The_Record_At_One(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewCounterRepository(db, slog.Default())
	room := domain.RoomCode("4821")

	// When the first user joins
	count, existed, err := repository.Increment(room)

	// Then the record is created, flagged as new
	req.NoError(err)
	req.False(existed)
	req.Equal(1, count)

	stored, found, err := repository.Count(room)
	req.NoError(err)
	req.True(found)
	req.Equal(1, stored)
}

func Test_Increment_Of_An_Existing_Room(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewCounterRepository(db, slog.Default())
	room := domain.RoomCode("4821")

	// Given a first join created the record
	_, _, err := repository.Increment(room)
	req.NoError(err)

	// When a second user joins
	count, existed, err := repository.Increment(room)

	// Then the record pre-existed: the caller knows to replay history
	req.NoError(err)
	req.True(existed)
	req.Equal(2, count)
}

func Test_Decrement_Deletes_The_Record_At_Zero(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewCounterRepository(db, slog.Default())
	room := domain.RoomCode("4821")

	_, _, err := repository.Increment(room)
	req.NoError(err)

	// When the last user leaves
	count, err := repository.Decrement(room)
	req.NoError(err)
	req.Zero(count)

	// Then the record is gone, not stored as "0"
	_, found, err := repository.Count(room)
	req.NoError(err)
	req.False(found)
}

func Test_Decrement_Of_A_Missing_Room_Is_A_Noop(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewCounterRepository(db, slog.Default())

	count, err := repository.Decrement("4821")
	req.NoError(err)
	req.Zero(count)
}

func Test_Count_Survives_Several_Joins_And_Leaves(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewCounterRepository(db, slog.Default())
	room := domain.RoomCode("4821")

	for i := 0; i < 3; i++ {
		_, _, err := repository.Increment(room)
		req.NoError(err)
	}
	count, err := repository.Decrement(room)
	req.NoError(err)
	req.Equal(2, count)

	stored, found, err := repository.Count(room)
	req.NoError(err)
	req.True(found)
	req.Equal(2, stored)
}

func Test_SetCount_And_DeleteCount(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewCounterRepository(db, slog.Default())
	room := domain.RoomCode("4821")

	req.NoError(repository.SetCount(room, 7))
	count, found, err := repository.Count(room)
	req.NoError(err)
	req.True(found)
	req.Equal(7, count)

	req.NoError(repository.DeleteCount(room))
	_, found, err = repository.Count(room)
	req.NoError(err)
	req.False(found)
}
