// Package service holds the worksheet rules: every cleaning write goes
// through ValidateCleaning, then Reconcile, then the record resolver in the
// repository. Handlers only translate HTTP to these calls.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/hotel-housekeeping/internal/model"
	"github.com/iliyamo/hotel-housekeeping/internal/queue"
	"github.com/iliyamo/hotel-housekeeping/internal/repository"
)

// CleaningStore is the persistence needed by WorksheetService.
type CleaningStore interface {
	ListByDate(ctx context.Context, date model.Date) ([]model.Cleaning, error)
	ListAll(ctx context.Context) ([]model.Cleaning, error)
	Get(ctx context.Context, key model.CleaningKey) (model.Cleaning, error)
	Upsert(ctx context.Context, c model.Cleaning) (model.Cleaning, bool, error)
	Update(ctx context.Context, c model.Cleaning) (model.Cleaning, error)
	InsertIfAbsent(ctx context.Context, c model.Cleaning) (bool, error)
	Delete(ctx context.Context, key model.CleaningKey) error
	ListRoomsWithCleaning(ctx context.Context, date model.Date) ([]model.RoomWithCleaning, error)
}

// RoomLookup is the part of the room store the worksheet needs.
type RoomLookup interface {
	List(ctx context.Context) ([]model.Room, error)
	Exists(ctx context.Context, number string) (bool, error)
}

// EventPublisher is notified after each successful cleaning write.
type EventPublisher interface {
	PublishCleaningSaved(ctx context.Context, ev queue.CleaningSavedEvent) error
}

// WorksheetService is the single write path for cleaning rows.
type WorksheetService struct {
	cleanings CleaningStore
	rooms     RoomLookup
	events    EventPublisher
	log       logrus.FieldLogger
}

// NewWorksheetService wires the service. events may be nil.
func NewWorksheetService(cleanings CleaningStore, rooms RoomLookup, events EventPublisher, log logrus.FieldLogger) *WorksheetService {
	if cleanings == nil || rooms == nil {
		panic("nil store passed to NewWorksheetService")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &WorksheetService{cleanings: cleanings, rooms: rooms, events: events, log: log}
}

// SaveCleaning creates the row for the input's key or updates the existing
// one. created reports which happened.
func (s *WorksheetService) SaveCleaning(ctx context.Context, in CleaningInput) (model.Cleaning, bool, error) {
	c, err := s.prepare(ctx, in)
	if err != nil {
		return model.Cleaning{}, false, err
	}
	stored, created, err := s.cleanings.Upsert(ctx, c)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return model.Cleaning{}, false, unknownRoom(c.RoomNumber)
		}
		return model.Cleaning{}, false, storeErr("cleaning.upsert", c.Key().String(), err)
	}
	s.notify(ctx, stored, created)
	return stored, created, nil
}

// UpdateCleaning changes an existing row and fails with NotFoundError when
// there is none. date comes from the request path and wins over the body.
func (s *WorksheetService) UpdateCleaning(ctx context.Context, date string, in CleaningInput) (model.Cleaning, error) {
	if strings.TrimSpace(date) != "" {
		in.CleaningDate = date
	}
	c, err := s.prepare(ctx, in)
	if err != nil {
		return model.Cleaning{}, err
	}
	stored, err := s.cleanings.Update(ctx, c)
	if err != nil {
		if errors.Is(err, repository.ErrCleaningNotFound) {
			return model.Cleaning{}, &NotFoundError{Resource: "cleaning", Key: c.Key().String()}
		}
		return model.Cleaning{}, storeErr("cleaning.update", c.Key().String(), err)
	}
	s.notify(ctx, stored, false)
	return stored, nil
}

// prepare runs the gate and the reconciler and checks the room exists.
// Nothing is written when it fails.
func (s *WorksheetService) prepare(ctx context.Context, in CleaningInput) (model.Cleaning, error) {
	c, err := ValidateCleaning(in)
	if err != nil {
		return model.Cleaning{}, err
	}
	c = reconcileCleaning(c)

	ok, err := s.rooms.Exists(ctx, c.RoomNumber)
	if err != nil {
		return model.Cleaning{}, storeErr("room.exists", c.RoomNumber, err)
	}
	if !ok {
		return model.Cleaning{}, unknownRoom(c.RoomNumber)
	}
	return c, nil
}

// GetCleaning looks up one row by key.
func (s *WorksheetService) GetCleaning(ctx context.Context, date, room string) (model.Cleaning, error) {
	key, err := parseKey(date, room)
	if err != nil {
		return model.Cleaning{}, err
	}
	c, err := s.cleanings.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrCleaningNotFound) {
			return model.Cleaning{}, &NotFoundError{Resource: "cleaning", Key: key.String()}
		}
		return model.Cleaning{}, storeErr("cleaning.get", key.String(), err)
	}
	return c, nil
}

// ListCleanings returns the worksheet for date ordered by room, or every
// row when date is empty. No rows is an empty list.
func (s *WorksheetService) ListCleanings(ctx context.Context, date string) ([]model.Cleaning, error) {
	if strings.TrimSpace(date) == "" {
		out, err := s.cleanings.ListAll(ctx)
		if err != nil {
			return nil, storeErr("cleaning.list", "", err)
		}
		return out, nil
	}
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	out, err := s.cleanings.ListByDate(ctx, d)
	if err != nil {
		return nil, storeErr("cleaning.list", d.String(), err)
	}
	return out, nil
}

// DeleteCleaning removes one row by key.
func (s *WorksheetService) DeleteCleaning(ctx context.Context, date, room string) error {
	key, err := parseKey(date, room)
	if err != nil {
		return err
	}
	if err := s.cleanings.Delete(ctx, key); err != nil {
		if errors.Is(err, repository.ErrCleaningNotFound) {
			return &NotFoundError{Resource: "cleaning", Key: key.String()}
		}
		return storeErr("cleaning.delete", key.String(), err)
	}
	return nil
}

// SeedWorksheet starts the worksheet for date: every room without a row
// gets the default one. Existing rows are left alone, so seeding twice is
// harmless. It returns the full worksheet.
func (s *WorksheetService) SeedWorksheet(ctx context.Context, date string) ([]model.Cleaning, error) {
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, storeErr("room.list", "", err)
	}
	seeded := 0
	for _, rm := range rooms {
		c := reconcileCleaning(model.DefaultCleaning(d, rm.RoomNumber))
		wrote, err := s.cleanings.InsertIfAbsent(ctx, c)
		if err != nil {
			return nil, storeErr("cleaning.seed", c.Key().String(), err)
		}
		if wrote {
			seeded++
		}
	}
	s.log.WithFields(logrus.Fields{"date": d, "rooms": len(rooms), "seeded": seeded}).Info("worksheet seeded")

	out, err := s.cleanings.ListByDate(ctx, d)
	if err != nil {
		return nil, storeErr("cleaning.list", d.String(), err)
	}
	return out, nil
}

// RoomsWithCleaning returns every room with its cleaning row for date, or
// the default values when the room has none yet.
func (s *WorksheetService) RoomsWithCleaning(ctx context.Context, date string) ([]model.RoomWithCleaning, error) {
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	out, err := s.cleanings.ListRoomsWithCleaning(ctx, d)
	if err != nil {
		return nil, storeErr("rooms_with_cleaning.list", d.String(), err)
	}
	return out, nil
}

// notify publishes the saved row. A broker failure never fails the write.
func (s *WorksheetService) notify(ctx context.Context, c model.Cleaning, created bool) {
	if s.events == nil {
		return
	}
	ev := queue.CleaningSavedEvent{
		CleaningDate:         c.CleaningDate.String(),
		RoomNumber:           c.RoomNumber,
		CleaningStatus:       c.CleaningStatus.String(),
		CleaningAvailability: c.CleaningAvailability.String(),
		SetType:              c.SetType.String(),
		Created:              created,
		SavedAt:              time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.events.PublishCleaningSaved(ctx, ev); err != nil {
		s.log.WithError(err).WithField("key", c.Key().String()).Warn("cleaning.saved not published")
	}
}

func parseDate(raw string) (model.Date, error) {
	d, err := model.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return "", invalid("invalid cleaning_date: %s", raw)
	}
	return d, nil
}

func parseKey(date, room string) (model.CleaningKey, error) {
	d, err := parseDate(date)
	if err != nil {
		return model.CleaningKey{}, err
	}
	room = strings.TrimSpace(room)
	if room == "" {
		return model.CleaningKey{}, invalid("required fields missing")
	}
	return model.CleaningKey{Date: d, RoomNumber: room}, nil
}

func unknownRoom(number string) error {
	return &ConstraintError{Msg: "room " + number + " does not exist"}
}
