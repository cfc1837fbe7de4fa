package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/iliyamo/hotel-housekeeping/internal/config"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured store and verifies the connection. The
// returned Dialect must be handed to the repositories so they can bind
// parameters and classify constraint errors.
func Open(cfg config.DBConfig) (*sql.DB, Dialect, error) {
	d, err := ParseDialect(cfg.Driver)
	if err != nil {
		return nil, "", err
	}
	dsn := cfg.DSN
	if dsn == "" {
		dsn = buildDSN(d, cfg)
	}
	switch d {
	case SQLite:
		dsn = withSQLitePragmas(dsn)
	case MySQL:
		if dsn, err = mysqlDSN(dsn); err != nil {
			return nil, "", err
		}
	}

	db, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, "", err
	}

	// Pool settings
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	if d == SQLite && strings.Contains(dsn, ":memory:") {
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, "", err
	}
	return db, d, nil
}

func buildDSN(d Dialect, cfg config.DBConfig) string {
	switch d {
	case Postgres:
		port := cfg.Port
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, port, cfg.User, cfg.Pass, cfg.Name, cfg.SSLMode)
	case SQLite:
		return cfg.Name + ".db"
	case MySQL:
	}
	port := cfg.Port
	if port == "" {
		port = "3306"
	}
	auth := cfg.User
	if cfg.Pass != "" {
		auth = fmt.Sprintf("%s:%s", cfg.User, cfg.Pass)
	}
	// parseTime=true -> DATE -> time.Time | loc=UTC keeps dates stable
	// clientFoundRows=true -> RowsAffected counts matched rows, not changed ones
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true",
		auth, cfg.Host, port, cfg.Name)
}

// mysqlDSN forces the options the repositories rely on, also when DB_DSN is
// given verbatim. clientFoundRows makes an UPDATE that changes nothing still
// count the matched row.
func mysqlDSN(dsn string) (string, error) {
	c, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	c.ParseTime = true
	c.ClientFoundRows = true
	return c.FormatDSN(), nil
}

func withSQLitePragmas(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
