package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors package allows sentinel error definitions

	"github.com/iliyamo/hotel-housekeeping/internal/database"
	"github.com/iliyamo/hotel-housekeeping/internal/model"
)

// ErrRoomTypeNotFound is returned when a room type lookup fails.
var ErrRoomTypeNotFound = errors.New("room type not found")

// RoomTypeRepo provides CRUD for the room_types table.
type RoomTypeRepo struct {
	db      *sql.DB          // db is the underlying database connection
	dialect database.Dialect // dialect binds placeholders and classifies errors
}

// NewRoomTypeRepo constructs a RoomTypeRepo with the given DB handle.
func NewRoomTypeRepo(db *sql.DB, d database.Dialect) *RoomTypeRepo {
	return &RoomTypeRepo{db: db, dialect: d}
}

// List returns every room type ordered by id.
func (r *RoomTypeRepo) List(ctx context.Context) ([]model.RoomType, error) {
	const q = `SELECT room_type_id, type_name, description FROM room_types ORDER BY room_type_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.RoomType, 0)
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID retrieves a room type. It returns ErrRoomTypeNotFound when no row
// is found.
func (r *RoomTypeRepo) GetByID(ctx context.Context, id int64) (model.RoomType, error) {
	q := r.dialect.Rebind(`SELECT room_type_id, type_name, description FROM room_types WHERE room_type_id = ?`)
	rt, err := scanRoomType(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RoomType{}, ErrRoomTypeNotFound
		}
		return model.RoomType{}, err
	}
	return rt, nil
}

// Create inserts a room type and sets rt.ID from the generated key.
func (r *RoomTypeRepo) Create(ctx context.Context, rt *model.RoomType) error {
	if r.dialect.SupportsReturning() {
		q := r.dialect.Rebind(`INSERT INTO room_types (type_name, description) VALUES (?, ?) RETURNING room_type_id`)
		return r.db.QueryRowContext(ctx, q, rt.TypeName, rt.Description).Scan(&rt.ID)
	}
	res, err := r.db.ExecContext(ctx, `INSERT INTO room_types (type_name, description) VALUES (?, ?)`, rt.TypeName, rt.Description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rt.ID = id
	return nil
}

// Update overwrites name and description. Returns ErrRoomTypeNotFound when
// no row matches.
func (r *RoomTypeRepo) Update(ctx context.Context, rt model.RoomType) error {
	q := r.dialect.Rebind(`UPDATE room_types SET type_name = ?, description = ? WHERE room_type_id = ?`)
	res, err := r.db.ExecContext(ctx, q, rt.TypeName, rt.Description, rt.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// an unchanged row can report 0 on MySQL
		_, err := r.GetByID(ctx, rt.ID)
		return err
	}
	return nil
}

// Delete removes a room type. It refuses with ErrInUse while any room
// still references the type.
func (r *RoomTypeRepo) Delete(ctx context.Context, id int64) error {
	var inUse int
	q := r.dialect.Rebind(`SELECT COUNT(*) FROM rooms WHERE room_type_id = ?`)
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&inUse); err != nil {
		return err
	}
	if inUse > 0 {
		return ErrInUse
	}
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM room_types WHERE room_type_id = ?`), id)
	if err != nil {
		// a room added after the count still trips the foreign key
		if r.dialect.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoomTypeNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomType(s rowScanner) (model.RoomType, error) {
	var (
		rt   model.RoomType
		desc sql.NullString
	)
	if err := s.Scan(&rt.ID, &rt.TypeName, &desc); err != nil {
		return model.RoomType{}, err
	}
	if desc.Valid {
		d := desc.String
		rt.Description = &d
	}
	return rt, nil
}
