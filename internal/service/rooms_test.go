package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-housekeeping/internal/database/dbtest"
	"github.com/iliyamo/hotel-housekeeping/internal/repository"
	"github.com/iliyamo/hotel-housekeeping/internal/service"
)

func newRoomService(t *testing.T) *service.RoomService {
	t.Helper()
	db, d := dbtest.Open(t)
	return service.NewRoomService(repository.NewRoomTypeRepo(db, d), repository.NewRoomRepo(db, d))
}

func TestRoomService_DeleteReferencedRoomType(t *testing.T) {
	ctx := context.Background()
	svc := newRoomService(t)

	rt, err := svc.CreateRoomType(ctx, service.RoomTypeInput{TypeName: "Twin"})
	require.NoError(t, err)
	_, err = svc.CreateRoom(ctx, service.RoomInput{RoomNumber: "101", Capacity: 2, RoomTypeID: rt.ID})
	require.NoError(t, err)

	err = svc.DeleteRoomType(ctx, rt.ID)
	var cerr *service.ConstraintError
	require.ErrorAs(t, err, &cerr)

	_, err = svc.GetRoomType(ctx, rt.ID)
	require.NoError(t, err)
}

func TestRoomService_RoomLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newRoomService(t)
	rt, err := svc.CreateRoomType(ctx, service.RoomTypeInput{TypeName: "Japanese-style"})
	require.NoError(t, err)

	rm, err := svc.CreateRoom(ctx, service.RoomInput{RoomNumber: " 301 ", Capacity: 4, RoomTypeID: rt.ID})
	require.NoError(t, err)
	assert.Equal(t, "301", rm.RoomNumber)
	assert.Equal(t, "Japanese-style", rm.TypeName)

	var cerr *service.ConstraintError
	_, err = svc.CreateRoom(ctx, service.RoomInput{RoomNumber: "301", Capacity: 1, RoomTypeID: rt.ID})
	assert.ErrorAs(t, err, &cerr)
	_, err = svc.CreateRoom(ctx, service.RoomInput{RoomNumber: "302", Capacity: 1, RoomTypeID: rt.ID + 1})
	assert.ErrorAs(t, err, &cerr)

	var verr *service.ValidationError
	_, err = svc.CreateRoom(ctx, service.RoomInput{RoomNumber: "303", Capacity: 0, RoomTypeID: rt.ID})
	assert.ErrorAs(t, err, &verr)

	rm, err = svc.UpdateRoom(ctx, "301", service.RoomInput{Capacity: 5, RoomTypeID: rt.ID})
	require.NoError(t, err)
	assert.Equal(t, 5, rm.Capacity)

	var nf *service.NotFoundError
	_, err = svc.UpdateRoom(ctx, "404", service.RoomInput{Capacity: 5, RoomTypeID: rt.ID})
	assert.ErrorAs(t, err, &nf)

	rooms, err := svc.ListRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	require.NoError(t, svc.DeleteRoom(ctx, "301"))
	assert.ErrorAs(t, svc.DeleteRoom(ctx, "301"), &nf)
}

func TestRoomService_RoomTypeNotFound(t *testing.T) {
	svc := newRoomService(t)
	var nf *service.NotFoundError
	_, err := svc.GetRoomType(context.Background(), 42)
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "room type", nf.Resource)

	_, err = svc.UpdateRoomType(context.Background(), 42, service.RoomTypeInput{TypeName: "x"})
	assert.ErrorAs(t, err, &nf)
}
