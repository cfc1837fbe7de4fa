package database

import (
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-housekeeping/internal/config"
)

func TestBuildDSN(t *testing.T) {
	cfg := config.DBConfig{Host: "db", User: "hk", Pass: "pw", Name: "housekeeping", SSLMode: "disable"}

	assert.Equal(t,
		"hk:pw@tcp(db:3306)/housekeeping?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true",
		buildDSN(MySQL, cfg))
	assert.Equal(t,
		"host=db port=5432 user=hk password=pw dbname=housekeeping sslmode=disable",
		buildDSN(Postgres, cfg))
	assert.Equal(t, "housekeeping.db", buildDSN(SQLite, cfg))
}

func TestMySQLDSN_ForcesFoundRows(t *testing.T) {
	for _, in := range []string{
		"hk:pw@tcp(db:3306)/housekeeping",
		"hk:pw@tcp(db:3306)/housekeeping?clientFoundRows=false&parseTime=false&loc=UTC",
	} {
		out, err := mysqlDSN(in)
		require.NoError(t, err, in)

		c, err := mysql.ParseDSN(out)
		require.NoError(t, err)
		assert.True(t, c.ClientFoundRows, in)
		assert.True(t, c.ParseTime, in)
		assert.Equal(t, "housekeeping", c.DBName)
		assert.Equal(t, "db:3306", c.Addr)
	}

	_, err := mysqlDSN("not a dsn")
	assert.Error(t, err)
}

func TestWithSQLitePragmas(t *testing.T) {
	assert.Equal(t, "hk.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", withSQLitePragmas("hk.db"))
	assert.Equal(t, "hk.db?mode=ro&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", withSQLitePragmas("hk.db?mode=ro"))
	assert.Equal(t, "hk.db?_pragma=journal_mode(WAL)", withSQLitePragmas("hk.db?_pragma=journal_mode(WAL)"))
}

func TestOpenAndMigrateSQLite(t *testing.T) {
	db, d, err := Open(config.DBConfig{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, SQLite, d)

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, d))
	// idempotent
	require.NoError(t, Migrate(ctx, db, d))

	var n int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('room_types', 'rooms', 'cleanings')`).Scan(&n))
	assert.Equal(t, 3, n)

	_, err = db.ExecContext(ctx, `INSERT INTO cleanings (cleaning_date, room_number) VALUES ('2024-06-01', 'nope')`)
	assert.True(t, d.IsForeignKeyViolation(err), "foreign keys must be enforced: %v", err)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, _, err := Open(config.DBConfig{Driver: "oracle"})
	assert.Error(t, err)
}
