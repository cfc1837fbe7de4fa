package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	for in, want := range map[string]Dialect{
		"mysql":      MySQL,
		" MySQL ":    MySQL,
		"postgres":   Postgres,
		"postgresql": Postgres,
		"sqlite":     SQLite,
		"sqlite3":    SQLite,
	} {
		got, err := ParseDialect(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDialect("oracle")
	assert.Error(t, err)
}

func TestRebind(t *testing.T) {
	q := "UPDATE cleanings SET notes = ? WHERE cleaning_date = ? AND room_number = ?"
	assert.Equal(t, q, MySQL.Rebind(q))
	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t,
		"UPDATE cleanings SET notes = $1 WHERE cleaning_date = $2 AND room_number = $3",
		Postgres.Rebind(q))

	lit := "SELECT room_number FROM cleanings WHERE notes = 'why?' AND notes <> 'it''s ?' AND room_number = ?"
	assert.Equal(t,
		"SELECT room_number FROM cleanings WHERE notes = 'why?' AND notes <> 'it''s ?' AND room_number = $1",
		Postgres.Rebind(lit))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, MySQL.IsUniqueViolation(fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062})))
	assert.False(t, MySQL.IsUniqueViolation(&mysql.MySQLError{Number: 1452}))
	assert.True(t, Postgres.IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, SQLite.IsUniqueViolation(errors.New("UNIQUE constraint failed: cleanings.cleaning_date")))
	assert.False(t, SQLite.IsUniqueViolation(nil))
	assert.False(t, SQLite.IsUniqueViolation(errors.New("disk I/O error")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, MySQL.IsForeignKeyViolation(&mysql.MySQLError{Number: 1451}))
	assert.True(t, Postgres.IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.True(t, SQLite.IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, Postgres.IsForeignKeyViolation(&pq.Error{Code: "23505"}))
}

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("-- header\nCREATE TABLE a (x INT);\n\nCREATE TABLE b (y INT);\n")
	assert.Equal(t, []string{"CREATE TABLE a (x INT)", "CREATE TABLE b (y INT)"}, stmts)
}

func TestMigrateSchemasExist(t *testing.T) {
	for _, d := range []Dialect{MySQL, Postgres, SQLite} {
		raw, err := schemaFS.ReadFile("schema/" + string(d) + ".sql")
		require.NoError(t, err)
		assert.Len(t, splitStatements(string(raw)), 3, d)
	}
}
