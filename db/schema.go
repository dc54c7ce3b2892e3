// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/Vinthiya3014/MBTI-project/cliparse"
)

// Open connects to the configured database. The sqlite driver takes a
// file path (or ":memory:"), the postgres driver a connection string.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	conn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DatabaseType, err)
	}
	if cfg.DatabaseType == "sqlite" {
		// A sqlite file is a single-writer store; one connection avoids
		// SQLITE_BUSY on concurrent registration.
		conn.SetMaxOpenConns(1)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The username primary key is what makes concurrent registration safe:
// duplicate detection happens in the storage engine, not caller logic.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    username TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL
);
`
