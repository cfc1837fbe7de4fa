// Package dbtest opens throwaway in-memory SQLite stores for tests.
package dbtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-housekeeping/internal/config"
	"github.com/iliyamo/hotel-housekeeping/internal/database"
)

// Open returns a migrated in-memory database that is closed when the test
// ends.
func Open(t testing.TB) (*sql.DB, database.Dialect) {
	t.Helper()
	db, d, err := database.Open(config.DBConfig{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(context.Background(), db, d))
	return db, d
}

// SeedRooms inserts one room type and the given rooms with capacity 2. It
// returns the room type id.
func SeedRooms(t testing.TB, db *sql.DB, typeName string, rooms ...string) int64 {
	t.Helper()
	ctx := context.Background()
	res, err := db.ExecContext(ctx, `INSERT INTO room_types (type_name) VALUES (?)`, typeName)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	for _, r := range rooms {
		_, err := db.ExecContext(ctx, `INSERT INTO rooms (room_number, capacity, room_type_id) VALUES (?, ?, ?)`, r, 2, id)
		require.NoError(t, err)
	}
	return id
}
