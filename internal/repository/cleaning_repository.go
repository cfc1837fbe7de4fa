package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-housekeeping/internal/database"
	"github.com/iliyamo/hotel-housekeeping/internal/model"
)

// ErrCleaningNotFound is returned when no worksheet row exists for a
// (cleaning_date, room_number) key.
var ErrCleaningNotFound = errors.New("cleaning not found")

// CleaningRepo reads and writes the cleanings table. Every write is keyed by
// (cleaning_date, room_number), which is the table's primary key, so the
// store itself guarantees at most one row per key.
type CleaningRepo struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewCleaningRepo returns a CleaningRepo bound to the given database.
func NewCleaningRepo(db *sql.DB, d database.Dialect) *CleaningRepo {
	return &CleaningRepo{db: db, dialect: d}
}

const cleaningColumns = `cleaning_date, room_number, cleaning_status, cleaning_availability,
	check_in_time, guest_count, set_type, notes`

// ListByDate returns the worksheet for one day ordered by room number. An
// empty slice (never nil) is returned when the day has no rows.
func (r *CleaningRepo) ListByDate(ctx context.Context, date model.Date) ([]model.Cleaning, error) {
	q := r.dialect.Rebind(`SELECT ` + cleaningColumns + ` FROM cleanings WHERE cleaning_date = ? ORDER BY room_number`)
	return r.list(ctx, q, date)
}

// ListAll returns every row ordered by date, then room number.
func (r *CleaningRepo) ListAll(ctx context.Context) ([]model.Cleaning, error) {
	return r.list(ctx, `SELECT `+cleaningColumns+` FROM cleanings ORDER BY cleaning_date, room_number`)
}

func (r *CleaningRepo) list(ctx context.Context, q string, args ...any) ([]model.Cleaning, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Cleaning, 0)
	for rows.Next() {
		c, err := scanCleaning(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one row by key or returns ErrCleaningNotFound.
func (r *CleaningRepo) Get(ctx context.Context, key model.CleaningKey) (model.Cleaning, error) {
	q := r.dialect.Rebind(`SELECT ` + cleaningColumns + ` FROM cleanings WHERE cleaning_date = ? AND room_number = ?`)
	c, err := scanCleaning(r.db.QueryRowContext(ctx, q, key.Date, key.RoomNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Cleaning{}, ErrCleaningNotFound
		}
		return model.Cleaning{}, err
	}
	return c, nil
}

// Upsert resolves c into an INSERT when its key is new and an UPDATE of the
// mutable fields otherwise. The lookup and the write are not atomic, so both
// races are resolved: a key inserted concurrently turns the INSERT into an
// UPDATE, and a key deleted concurrently turns the UPDATE into an INSERT.
// It returns the stored row and whether it was created.
func (r *CleaningRepo) Upsert(ctx context.Context, c model.Cleaning) (model.Cleaning, bool, error) {
	key := c.Key()
	exists, err := r.exists(ctx, key)
	if err != nil {
		return model.Cleaning{}, false, err
	}

	if exists {
		err := r.update(ctx, c)
		switch {
		case err == nil:
		case errors.Is(err, ErrCleaningNotFound):
			// deleted after the lookup; write it fresh
			exists = false
		default:
			return model.Cleaning{}, false, err
		}
	}

	created := false
	if !exists {
		err := r.insert(ctx, c)
		switch {
		case err == nil:
			created = true
		case errors.Is(err, ErrDuplicate):
			// lost the race; update the winner's row
			if err := r.update(ctx, c); err != nil {
				return model.Cleaning{}, false, err
			}
		default:
			return model.Cleaning{}, false, err
		}
	}

	stored, err := r.Get(ctx, key)
	if err != nil {
		return model.Cleaning{}, false, err
	}
	return stored, created, nil
}

// Update changes the mutable fields of an existing row. It never inserts;
// a missing key yields ErrCleaningNotFound.
func (r *CleaningRepo) Update(ctx context.Context, c model.Cleaning) (model.Cleaning, error) {
	if err := r.update(ctx, c); err != nil {
		return model.Cleaning{}, err
	}
	return r.Get(ctx, c.Key())
}

// InsertIfAbsent inserts c unless its key already exists. It reports
// whether a row was written.
func (r *CleaningRepo) InsertIfAbsent(ctx context.Context, c model.Cleaning) (bool, error) {
	err := r.insert(ctx, c)
	if errors.Is(err, ErrDuplicate) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes one row by key.
func (r *CleaningRepo) Delete(ctx context.Context, key model.CleaningKey) error {
	q := r.dialect.Rebind(`DELETE FROM cleanings WHERE cleaning_date = ? AND room_number = ?`)
	res, err := r.db.ExecContext(ctx, q, key.Date, key.RoomNumber)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCleaningNotFound
	}
	return nil
}

// ListRoomsWithCleaning joins every room with its type and, when present,
// its cleaning row for date. Rooms without a row get the default worksheet
// values and Recorded=false.
func (r *CleaningRepo) ListRoomsWithCleaning(ctx context.Context, date model.Date) ([]model.RoomWithCleaning, error) {
	q := r.dialect.Rebind(`SELECT r.room_number, r.capacity, r.room_type_id, rt.type_name,
		c.room_number, c.cleaning_status, c.cleaning_availability,
		c.check_in_time, c.guest_count, c.set_type, c.notes
		FROM rooms r
		JOIN room_types rt ON r.room_type_id = rt.room_type_id
		LEFT JOIN cleanings c ON r.room_number = c.room_number AND c.cleaning_date = ?
		ORDER BY r.room_number`)
	rows, err := r.db.QueryContext(ctx, q, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.RoomWithCleaning, 0)
	for rows.Next() {
		var (
			rw         model.RoomWithCleaning
			joinedRoom sql.NullString
			status     sql.Null[model.CleaningStatus]
			avail      sql.Null[model.CleaningAvailability]
			checkIn    sql.Null[model.ClockTime]
			guests     sql.NullInt64
			setType    sql.Null[model.SetType]
			notes      sql.NullString
		)
		if err := rows.Scan(&rw.RoomNumber, &rw.Capacity, &rw.RoomTypeID, &rw.TypeName,
			&joinedRoom, &status, &avail, &checkIn, &guests, &setType, &notes); err != nil {
			return nil, err
		}
		def := model.DefaultCleaning(date, rw.RoomNumber)
		rw.CleaningDate = date
		rw.CleaningStatus = def.CleaningStatus
		rw.CleaningAvailability = def.CleaningAvailability
		rw.SetType = def.SetType
		if joinedRoom.Valid {
			rw.Recorded = true
			if status.Valid {
				rw.CleaningStatus = status.V
			}
			if avail.Valid {
				rw.CleaningAvailability = avail.V
			}
			if setType.Valid {
				rw.SetType = setType.V
			}
			rw.CheckInTime = clockPtr(checkIn)
			rw.GuestCount = intPtr(guests)
			rw.Notes = stringPtr(notes)
		}
		out = append(out, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CleaningRepo) exists(ctx context.Context, key model.CleaningKey) (bool, error) {
	var one int
	q := r.dialect.Rebind(`SELECT 1 FROM cleanings WHERE cleaning_date = ? AND room_number = ?`)
	err := r.db.QueryRowContext(ctx, q, key.Date, key.RoomNumber).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *CleaningRepo) insert(ctx context.Context, c model.Cleaning) error {
	q := r.dialect.Rebind(`INSERT INTO cleanings (` + cleaningColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, q, cleaningArgs(c)...)
	if err != nil {
		switch {
		case r.dialect.IsUniqueViolation(err):
			return ErrDuplicate
		case r.dialect.IsForeignKeyViolation(err):
			return ErrRoomNotFound
		}
		return err
	}
	return nil
}

func (r *CleaningRepo) update(ctx context.Context, c model.Cleaning) error {
	q := r.dialect.Rebind(`UPDATE cleanings
		SET cleaning_status = ?, cleaning_availability = ?, check_in_time = ?,
		    guest_count = ?, set_type = ?, notes = ?
		WHERE cleaning_date = ? AND room_number = ?`)
	res, err := r.db.ExecContext(ctx, q,
		c.CleaningStatus, c.CleaningAvailability, clockArg(c.CheckInTime),
		intArg(c.GuestCount), c.SetType, stringArg(c.Notes),
		c.CleaningDate, c.RoomNumber,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// MySQL without clientFoundRows reports 0 for an unchanged row
		found, err := r.exists(ctx, c.Key())
		if err != nil {
			return err
		}
		if !found {
			return ErrCleaningNotFound
		}
	}
	return nil
}

func cleaningArgs(c model.Cleaning) []any {
	return []any{
		c.CleaningDate, c.RoomNumber, c.CleaningStatus, c.CleaningAvailability,
		clockArg(c.CheckInTime), intArg(c.GuestCount), c.SetType, stringArg(c.Notes),
	}
}

func scanCleaning(s rowScanner) (model.Cleaning, error) {
	var (
		c       model.Cleaning
		checkIn sql.Null[model.ClockTime]
		guests  sql.NullInt64
		notes   sql.NullString
	)
	if err := s.Scan(&c.CleaningDate, &c.RoomNumber, &c.CleaningStatus, &c.CleaningAvailability,
		&checkIn, &guests, &c.SetType, &notes); err != nil {
		return model.Cleaning{}, err
	}
	c.CheckInTime = clockPtr(checkIn)
	c.GuestCount = intPtr(guests)
	c.Notes = stringPtr(notes)
	return c, nil
}

// Nullable column helpers. A nil pointer is stored as SQL NULL.

func clockArg(v *model.ClockTime) any {
	if v == nil {
		return nil
	}
	return *v
}

func intArg(v *int) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func stringArg(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func clockPtr(v sql.Null[model.ClockTime]) *model.ClockTime {
	if !v.Valid {
		return nil
	}
	t := v.V
	return &t
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
