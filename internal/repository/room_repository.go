package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-housekeeping/internal/database"
	"github.com/iliyamo/hotel-housekeeping/internal/model"
)

// ErrRoomNotFound is returned when a room lookup fails.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepo encapsulates all queries on the rooms table. Reads join
// room_types so callers always get the type name.
type RoomRepo struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewRoomRepo constructs a RoomRepo with the provided DB handle.
func NewRoomRepo(db *sql.DB, d database.Dialect) *RoomRepo {
	return &RoomRepo{db: db, dialect: d}
}

const roomSelect = `SELECT r.room_number, r.capacity, r.room_type_id, rt.type_name
	FROM rooms r
	JOIN room_types rt ON r.room_type_id = rt.room_type_id`

// List returns all rooms ordered by room number.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx, roomSelect+` ORDER BY r.room_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Room, 0)
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.RoomNumber, &rm.Capacity, &rm.RoomTypeID, &rm.TypeName); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one room by number or returns ErrRoomNotFound.
func (r *RoomRepo) Get(ctx context.Context, number string) (model.Room, error) {
	var rm model.Room
	q := r.dialect.Rebind(roomSelect + ` WHERE r.room_number = ?`)
	err := r.db.QueryRowContext(ctx, q, number).Scan(&rm.RoomNumber, &rm.Capacity, &rm.RoomTypeID, &rm.TypeName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Room{}, ErrRoomNotFound
		}
		return model.Room{}, err
	}
	return rm, nil
}

// Exists reports whether a room with the given number is registered.
func (r *RoomRepo) Exists(ctx context.Context, number string) (bool, error) {
	var one int
	q := r.dialect.Rebind(`SELECT 1 FROM rooms WHERE room_number = ?`)
	err := r.db.QueryRowContext(ctx, q, number).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts a room. ErrDuplicate means the number is taken and
// ErrRoomTypeNotFound means room_type_id references nothing.
func (r *RoomRepo) Create(ctx context.Context, rm model.Room) error {
	q := r.dialect.Rebind(`INSERT INTO rooms (room_number, capacity, room_type_id) VALUES (?, ?, ?)`)
	if _, err := r.db.ExecContext(ctx, q, rm.RoomNumber, rm.Capacity, rm.RoomTypeID); err != nil {
		switch {
		case r.dialect.IsUniqueViolation(err):
			return ErrDuplicate
		case r.dialect.IsForeignKeyViolation(err):
			return ErrRoomTypeNotFound
		}
		return err
	}
	return nil
}

// Update changes capacity and type of an existing room.
func (r *RoomRepo) Update(ctx context.Context, rm model.Room) error {
	q := r.dialect.Rebind(`UPDATE rooms SET capacity = ?, room_type_id = ? WHERE room_number = ?`)
	res, err := r.db.ExecContext(ctx, q, rm.Capacity, rm.RoomTypeID, rm.RoomNumber)
	if err != nil {
		if r.dialect.IsForeignKeyViolation(err) {
			return ErrRoomTypeNotFound
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// an unchanged row can report 0 on MySQL
		found, err := r.Exists(ctx, rm.RoomNumber)
		if err != nil {
			return err
		}
		if !found {
			return ErrRoomNotFound
		}
	}
	return nil
}

// Delete removes a room unless cleanings still reference it (ErrInUse).
func (r *RoomRepo) Delete(ctx context.Context, number string) error {
	var inUse int
	q := r.dialect.Rebind(`SELECT COUNT(*) FROM cleanings WHERE room_number = ?`)
	if err := r.db.QueryRowContext(ctx, q, number).Scan(&inUse); err != nil {
		return err
	}
	if inUse > 0 {
		return ErrInUse
	}
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM rooms WHERE room_number = ?`), number)
	if err != nil {
		if r.dialect.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoomNotFound
	}
	return nil
}
