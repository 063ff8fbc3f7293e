// Copyright 2026 The go-misc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dbsession wraps database/sql for SQLite with the conventions the
// rest of this repo's tools expect: foreign keys enforced on open, a
// transaction scope that commits on success and rolls back on error or
// panic, and schema-version accessors over SQLite's user_version pragma.
package dbsession

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/ledona/go-misc/logging"
)

// DB is an open SQLite database.
type DB struct {
	db      *sql.DB
	path    string
	verbose bool
}

// Option adjusts database construction.
type Option func(*DB)

// Verbose logs every session boundary (begin, commit, rollback) at debug.
func Verbose() Option {
	return func(d *DB) { d.verbose = true }
}

// Open opens the SQLite database at path, creating it if needed. An empty
// path opens a private in-memory database. Foreign key enforcement is
// switched on for every connection.
func Open(ctx context.Context, path string, opts ...Option) (*DB, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}
	// The pragma rides on the DSN so it applies to every pooled connection,
	// not just the one an Exec would happen to land on.
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	dsn += sep + "_pragma=foreign_keys(1)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db %q: %w", path, err)
	}
	if path == "" {
		// A second connection to :memory: would be a different database.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("opening sqlite db %q: %w", path, err)
	}

	d := &DB{db: db, path: path}
	for _, opt := range opts {
		opt(d)
	}
	if d.verbose {
		logging.Debugf(ctx, "dbsession: opened %q", dsn)
	}
	return d, nil
}

// Wrap adopts an already-open handle. Foreign key setup and DSN handling are
// the caller's concern; tests use this to run against a mock driver.
func Wrap(db *sql.DB, opts ...Option) *DB {
	d := &DB{db: db}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle exposes the underlying *sql.DB for queries outside a session.
func (d *DB) Handle() *sql.DB { return d.db }

// Close closes the database.
func (d *DB) Close() error { return d.db.Close() }

// SessionScope runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back when fn returns an error or panics; panics are
// re-raised after the rollback.
func (d *DB) SessionScope(ctx context.Context, fn func(context.Context, *sql.Tx) error) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning session: %w", err)
	}
	if d.verbose {
		logging.Debugf(ctx, "dbsession: session started")
	}

	done := false
	defer func() {
		if done {
			return
		}
		// fn panicked. Roll back and let the panic continue.
		if rbErr := tx.Rollback(); rbErr != nil {
			logging.Errorf(ctx, "dbsession: rollback after panic failed: %s", rbErr)
		}
	}()

	err = fn(ctx, tx)
	done = true
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("session rollback failed: %w (after: %w)", rbErr, err)
		}
		if d.verbose {
			logging.Debugf(ctx, "dbsession: session rolled back: %s", err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("session commit failed: %w", err)
	}
	if d.verbose {
		logging.Debugf(ctx, "dbsession: session committed")
	}
	return nil
}

// UserVersion returns the database's user_version, the slot SQLite reserves
// for application schema versioning.
func (d *DB) UserVersion(ctx context.Context) (int, error) {
	var v int
	if err := d.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("reading user_version: %w", err)
	}
	return v, nil
}

// SetUserVersion stores v as the database's user_version.
func (d *DB) SetUserVersion(ctx context.Context, v int) error {
	if v < 0 {
		return errors.New("dbsession: user_version must be non-negative")
	}
	// PRAGMA does not take bind parameters.
	if _, err := d.db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", v)); err != nil {
		return fmt.Errorf("setting user_version: %w", err)
	}
	return nil
}
