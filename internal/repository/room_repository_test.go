package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-housekeeping/internal/database/dbtest"
	"github.com/iliyamo/hotel-housekeeping/internal/model"
	"github.com/iliyamo/hotel-housekeeping/internal/repository"
)

func TestRoomTypeRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	db, d := dbtest.Open(t)
	repo := repository.NewRoomTypeRepo(db, d)

	rt := model.RoomType{TypeName: "Western", Description: ptr("twin beds")}
	require.NoError(t, repo.Create(ctx, &rt))
	assert.NotZero(t, rt.ID)

	got, err := repo.GetByID(ctx, rt.ID)
	require.NoError(t, err)
	assert.Equal(t, rt, got)

	rt.TypeName = "Western deluxe"
	require.NoError(t, repo.Update(ctx, rt))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Western deluxe", list[0].TypeName)

	require.NoError(t, repo.Delete(ctx, rt.ID))
	_, err = repo.GetByID(ctx, rt.ID)
	assert.ErrorIs(t, err, repository.ErrRoomTypeNotFound)
}

func TestRoomTypeRepo_DeleteInUse(t *testing.T) {
	db, d := dbtest.Open(t)
	id := dbtest.SeedRooms(t, db, "Japanese-style", "101")
	err := repository.NewRoomTypeRepo(db, d).Delete(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrInUse)
}

func TestRoomRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	db, d := dbtest.Open(t)
	typeID := dbtest.SeedRooms(t, db, "Japanese-style")
	repo := repository.NewRoomRepo(db, d)

	require.NoError(t, repo.Create(ctx, model.Room{RoomNumber: "301", Capacity: 4, RoomTypeID: typeID}))
	assert.ErrorIs(t, repo.Create(ctx, model.Room{RoomNumber: "301", Capacity: 1, RoomTypeID: typeID}), repository.ErrDuplicate)
	assert.ErrorIs(t, repo.Create(ctx, model.Room{RoomNumber: "302", Capacity: 1, RoomTypeID: typeID + 100}), repository.ErrRoomTypeNotFound)

	ok, err := repo.Exists(ctx, "301")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Update(ctx, model.Room{RoomNumber: "301", Capacity: 5, RoomTypeID: typeID}))
	rm, err := repo.Get(ctx, "301")
	require.NoError(t, err)
	assert.Equal(t, 5, rm.Capacity)
	assert.Equal(t, "Japanese-style", rm.TypeName)

	require.NoError(t, repo.Delete(ctx, "301"))
	assert.ErrorIs(t, repo.Delete(ctx, "301"), repository.ErrRoomNotFound)
}

func TestRoomRepo_DeleteWithCleanings(t *testing.T) {
	ctx := context.Background()
	db, d := dbtest.Open(t)
	dbtest.SeedRooms(t, db, "Japanese-style", "101")
	_, _, err := repository.NewCleaningRepo(db, d).Upsert(ctx, model.DefaultCleaning("2024-05-01", "101"))
	require.NoError(t, err)

	assert.ErrorIs(t, repository.NewRoomRepo(db, d).Delete(ctx, "101"), repository.ErrInUse)
}
