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

func newCleaningRepo(t *testing.T, rooms ...string) *repository.CleaningRepo {
	t.Helper()
	db, d := dbtest.Open(t)
	dbtest.SeedRooms(t, db, "Japanese-style", rooms...)
	return repository.NewCleaningRepo(db, d)
}

func ptr[T any](v T) *T { return &v }

func TestCleaningRepo_UpsertCreatesThenUpdates(t *testing.T) {
	ctx := context.Background()
	repo := newCleaningRepo(t, "101")

	c := model.Cleaning{
		CleaningDate:         "2024-05-01",
		RoomNumber:           "101",
		CleaningStatus:       model.StatusBedMaking,
		CleaningAvailability: model.AvailabilityAvailable,
		CheckInTime:          &model.ClockTime{Hour: 15},
		GuestCount:           ptr(2),
		SetType:              model.SetTypeFutonTwoSets,
		Notes:                ptr("extra towels"),
	}
	stored, created, err := repo.Upsert(ctx, c)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, c, stored)

	c.CleaningStatus = model.StatusFinalCheck
	c.Notes = nil
	c.GuestCount = nil
	stored, created, err = repo.Upsert(ctx, c)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, model.StatusFinalCheck, stored.CleaningStatus)
	assert.Nil(t, stored.Notes)
	assert.Nil(t, stored.GuestCount)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCleaningRepo_UpsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newCleaningRepo(t, "201")
	c := model.DefaultCleaning("2024-05-02", "201")

	first, _, err := repo.Upsert(ctx, c)
	require.NoError(t, err)
	second, created, err := repo.Upsert(ctx, c)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, second)
}

func TestCleaningRepo_UpsertUnknownRoom(t *testing.T) {
	repo := newCleaningRepo(t, "101")
	_, _, err := repo.Upsert(context.Background(), model.DefaultCleaning("2024-05-01", "999"))
	assert.ErrorIs(t, err, repository.ErrRoomNotFound)
}

func TestCleaningRepo_UpdateOnlyExisting(t *testing.T) {
	ctx := context.Background()
	repo := newCleaningRepo(t, "101")

	_, err := repo.Update(ctx, model.DefaultCleaning("2024-05-01", "101"))
	assert.ErrorIs(t, err, repository.ErrCleaningNotFound)

	_, err = repo.Get(ctx, model.CleaningKey{Date: "2024-05-01", RoomNumber: "101"})
	assert.ErrorIs(t, err, repository.ErrCleaningNotFound)
}

func TestCleaningRepo_ListByDateOrdersByRoom(t *testing.T) {
	ctx := context.Background()
	repo := newCleaningRepo(t, "101", "102", "103")

	for _, room := range []string{"103", "101"} {
		_, _, err := repo.Upsert(ctx, model.DefaultCleaning("2024-05-01", room))
		require.NoError(t, err)
	}
	_, _, err := repo.Upsert(ctx, model.DefaultCleaning("2024-05-02", "102"))
	require.NoError(t, err)

	day, err := repo.ListByDate(ctx, "2024-05-01")
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "101", day[0].RoomNumber)
	assert.Equal(t, "103", day[1].RoomNumber)

	empty, err := repo.ListByDate(ctx, "2030-01-01")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCleaningRepo_InsertIfAbsentKeepsExisting(t *testing.T) {
	ctx := context.Background()
	repo := newCleaningRepo(t, "101")

	c := model.DefaultCleaning("2024-05-01", "101")
	c.CleaningStatus = model.StatusVacuuming
	c.CleaningAvailability = model.AvailabilityAvailable
	_, _, err := repo.Upsert(ctx, c)
	require.NoError(t, err)

	wrote, err := repo.InsertIfAbsent(ctx, model.DefaultCleaning("2024-05-01", "101"))
	require.NoError(t, err)
	assert.False(t, wrote)

	got, err := repo.Get(ctx, c.Key())
	require.NoError(t, err)
	assert.Equal(t, model.StatusVacuuming, got.CleaningStatus)
}

func TestCleaningRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newCleaningRepo(t, "101")
	c := model.DefaultCleaning("2024-05-01", "101")
	_, _, err := repo.Upsert(ctx, c)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, c.Key()))
	assert.ErrorIs(t, repo.Delete(ctx, c.Key()), repository.ErrCleaningNotFound)
}

func TestCleaningRepo_ListRoomsWithCleaning(t *testing.T) {
	ctx := context.Background()
	repo := newCleaningRepo(t, "101", "102")

	c := model.DefaultCleaning("2024-05-01", "102")
	c.CleaningStatus = model.StatusTrashCollection
	c.CleaningAvailability = model.AvailabilityStayCleaningAllowed
	c.CheckInTime = &model.ClockTime{Hour: 14, Minute: 30}
	_, _, err := repo.Upsert(ctx, c)
	require.NoError(t, err)

	rows, err := repo.ListRoomsWithCleaning(ctx, "2024-05-01")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "101", rows[0].RoomNumber)
	assert.False(t, rows[0].Recorded)
	assert.Equal(t, model.StatusNeedsNoCleaning, rows[0].CleaningStatus)
	assert.Equal(t, model.AvailabilityUnavailable, rows[0].CleaningAvailability)
	assert.Equal(t, model.SetTypeNone, rows[0].SetType)
	assert.Equal(t, "Japanese-style", rows[0].TypeName)

	assert.True(t, rows[1].Recorded)
	assert.Equal(t, model.StatusTrashCollection, rows[1].CleaningStatus)
	require.NotNil(t, rows[1].CheckInTime)
	assert.Equal(t, "14:30", rows[1].CheckInTime.String())
}
