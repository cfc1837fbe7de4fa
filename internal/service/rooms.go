package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/iliyamo/hotel-housekeeping/internal/model"
	"github.com/iliyamo/hotel-housekeeping/internal/repository"
)

// RoomTypeStore is the room type persistence used by RoomService.
type RoomTypeStore interface {
	List(ctx context.Context) ([]model.RoomType, error)
	GetByID(ctx context.Context, id int64) (model.RoomType, error)
	Create(ctx context.Context, rt *model.RoomType) error
	Update(ctx context.Context, rt model.RoomType) error
	Delete(ctx context.Context, id int64) error
}

// RoomStore is the room persistence used by RoomService.
type RoomStore interface {
	List(ctx context.Context) ([]model.Room, error)
	Get(ctx context.Context, number string) (model.Room, error)
	Create(ctx context.Context, rm model.Room) error
	Update(ctx context.Context, rm model.Room) error
	Delete(ctx context.Context, number string) error
}

// RoomService manages the reference data the worksheet is built from.
type RoomService struct {
	types RoomTypeStore
	rooms RoomStore
}

// NewRoomService wires the room and room type stores.
func NewRoomService(types RoomTypeStore, rooms RoomStore) *RoomService {
	if types == nil || rooms == nil {
		panic("nil store passed to NewRoomService")
	}
	return &RoomService{types: types, rooms: rooms}
}

// ListRoomTypes returns every room type ordered by id.
func (s *RoomService) ListRoomTypes(ctx context.Context) ([]model.RoomType, error) {
	out, err := s.types.List(ctx)
	if err != nil {
		return nil, storeErr("room_type.list", "", err)
	}
	return out, nil
}

// GetRoomType returns NotFoundError for an unknown id.
func (s *RoomService) GetRoomType(ctx context.Context, id int64) (model.RoomType, error) {
	rt, err := s.types.GetByID(ctx, id)
	if err != nil {
		return model.RoomType{}, roomTypeErr("room_type.get", id, err)
	}
	return rt, nil
}

// CreateRoomType requires a type name and returns the stored row with its id.
func (s *RoomService) CreateRoomType(ctx context.Context, in RoomTypeInput) (model.RoomType, error) {
	in.TypeName = strings.TrimSpace(in.TypeName)
	if err := checkStruct(in); err != nil {
		return model.RoomType{}, err
	}
	rt := model.RoomType{TypeName: in.TypeName, Description: in.Description}
	if err := s.types.Create(ctx, &rt); err != nil {
		return model.RoomType{}, storeErr("room_type.create", rt.TypeName, err)
	}
	return rt, nil
}

// UpdateRoomType overwrites name and description of an existing type.
func (s *RoomService) UpdateRoomType(ctx context.Context, id int64, in RoomTypeInput) (model.RoomType, error) {
	in.TypeName = strings.TrimSpace(in.TypeName)
	if err := checkStruct(in); err != nil {
		return model.RoomType{}, err
	}
	rt := model.RoomType{ID: id, TypeName: in.TypeName, Description: in.Description}
	if err := s.types.Update(ctx, rt); err != nil {
		return model.RoomType{}, roomTypeErr("room_type.update", id, err)
	}
	return rt, nil
}

// DeleteRoomType refuses with ConstraintError while rooms use the type.
func (s *RoomService) DeleteRoomType(ctx context.Context, id int64) error {
	if err := s.types.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInUse) {
			return &ConstraintError{Msg: "room type " + strconv.FormatInt(id, 10) + " is still used by rooms"}
		}
		return roomTypeErr("room_type.delete", id, err)
	}
	return nil
}

// ListRooms returns every room with its type name, ordered by number.
func (s *RoomService) ListRooms(ctx context.Context) ([]model.Room, error) {
	out, err := s.rooms.List(ctx)
	if err != nil {
		return nil, storeErr("room.list", "", err)
	}
	return out, nil
}

// GetRoom looks a room up by number.
func (s *RoomService) GetRoom(ctx context.Context, number string) (model.Room, error) {
	rm, err := s.rooms.Get(ctx, strings.TrimSpace(number))
	if err != nil {
		return model.Room{}, roomErr("room.get", number, err)
	}
	return rm, nil
}

// CreateRoom registers a room. The room type must exist and the number must
// be free; both failures are ConstraintErrors.
func (s *RoomService) CreateRoom(ctx context.Context, in RoomInput) (model.Room, error) {
	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	if err := checkStruct(in); err != nil {
		return model.Room{}, err
	}
	rm := model.Room{RoomNumber: in.RoomNumber, Capacity: in.Capacity, RoomTypeID: in.RoomTypeID}
	if err := s.rooms.Create(ctx, rm); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.Room{}, &ConstraintError{Msg: "room " + rm.RoomNumber + " already exists"}
		}
		return model.Room{}, roomErr("room.create", rm.RoomNumber, err)
	}
	return s.GetRoom(ctx, rm.RoomNumber)
}

// UpdateRoom changes capacity and type of the room at number.
func (s *RoomService) UpdateRoom(ctx context.Context, number string, in RoomInput) (model.Room, error) {
	in.RoomNumber = strings.TrimSpace(number)
	if err := checkStruct(in); err != nil {
		return model.Room{}, err
	}
	rm := model.Room{RoomNumber: in.RoomNumber, Capacity: in.Capacity, RoomTypeID: in.RoomTypeID}
	if err := s.rooms.Update(ctx, rm); err != nil {
		return model.Room{}, roomErr("room.update", rm.RoomNumber, err)
	}
	return s.GetRoom(ctx, rm.RoomNumber)
}

// DeleteRoom refuses with ConstraintError while cleanings reference it.
func (s *RoomService) DeleteRoom(ctx context.Context, number string) error {
	number = strings.TrimSpace(number)
	if err := s.rooms.Delete(ctx, number); err != nil {
		if errors.Is(err, repository.ErrInUse) {
			return &ConstraintError{Msg: "room " + number + " still has cleaning records"}
		}
		return roomErr("room.delete", number, err)
	}
	return nil
}

func roomTypeErr(op string, id int64, err error) error {
	key := strconv.FormatInt(id, 10)
	if errors.Is(err, repository.ErrRoomTypeNotFound) {
		return &NotFoundError{Resource: "room type", Key: key}
	}
	return storeErr(op, key, err)
}

func roomErr(op, number string, err error) error {
	switch {
	case errors.Is(err, repository.ErrRoomNotFound):
		return &NotFoundError{Resource: "room", Key: number}
	case errors.Is(err, repository.ErrRoomTypeNotFound):
		return &ConstraintError{Msg: "room type does not exist"}
	}
	return storeErr(op, number, err)
}
