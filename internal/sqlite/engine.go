package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Engine is a private in-memory SQLite instance. Each request gets its
// own Engine; nothing is shared between instances and nothing survives
// Close.
type Engine struct {
	db *sql.DB
}

// Provision opens a fresh in-memory engine instance.
//
// The pool is pinned to a single connection: database/sql would
// otherwise hand each pooled connection its own :memory: database,
// and the seeded schema has to be visible to the user's statement.
func Provision() (*Engine, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory engine: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping in-memory engine: %w", err)
	}

	return &Engine{db: db}, nil
}

// DB returns the underlying database handle.
func (e *Engine) DB() *sql.DB {
	return e.db
}

// Close releases the engine instance and discards its contents.
func (e *Engine) Close() error {
	if e.db != nil {
		return e.db.Close()
	}
	return nil
}
