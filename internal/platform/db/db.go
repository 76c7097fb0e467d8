package db

import (
	"database/sql"
	"fmt"
	"time"
)

// OpenPostgres opens a pooled Postgres connection via the pgx stdlib driver
// and verifies it with a ping. The caller must import the driver:
//
//	_ "github.com/jackc/pgx/v5/stdlib"
func OpenPostgres(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("open postgres: verify connection: %w", err)
	}

	return db, nil
}

// OpenSqlite opens the SQLite database file at path, creating it if missing.
// The caller must import the driver:
//
//	_ "modernc.org/sqlite"
func OpenSqlite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("open sqlite %q: verify connection: %w", path, err)
	}

	return db, nil
}
