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

package dbsession

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// The transaction-flow tests run against sqlmock so commit and rollback
// ordering is asserted exactly; the tests at the bottom hit a real SQLite
// database.

func newMock(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})
	return Wrap(raw, Verbose()), mock
}

func TestSessionScopeCommits(t *testing.T) {
	t.Parallel()
	d, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO runs").
		WithArgs("nightly").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := d.SessionScope(context.Background(), func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO runs (name) VALUES (?)", "nightly")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestSessionScopeRollsBackOnError(t *testing.T) {
	t.Parallel()
	d, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := d.SessionScope(context.Background(), func(context.Context, *sql.Tx) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("fn error should pass through, got %v", err)
	}
}

func TestSessionScopeRollsBackOnPanic(t *testing.T) {
	t.Parallel()
	d, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic should propagate")
			}
		}()
		_ = d.SessionScope(context.Background(), func(context.Context, *sql.Tx) error {
			panic("kaboom")
		})
	}()
}

func TestSessionScopeCommitFailure(t *testing.T) {
	t.Parallel()
	d, mock := newMock(t)
	commitErr := errors.New("disk full")
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(commitErr)

	err := d.SessionScope(context.Background(), func(context.Context, *sql.Tx) error {
		return nil
	})
	if !errors.Is(err, commitErr) {
		t.Fatalf("commit failure should surface, got %v", err)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	d, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	_, err = d.Handle().ExecContext(ctx, `
		CREATE TABLE parent (id INTEGER PRIMARY KEY);
		CREATE TABLE child (
			id INTEGER PRIMARY KEY,
			parent_id INTEGER NOT NULL REFERENCES parent(id)
		);`)
	if err != nil {
		t.Fatal(err)
	}

	err = d.SessionScope(ctx, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO parent (id) VALUES (1)")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}

	// Enforcement of the reference proves the foreign_keys pragma took.
	_, err = d.Handle().ExecContext(ctx, "INSERT INTO child (id, parent_id) VALUES (1, 99)")
	if err == nil {
		t.Fatal("dangling foreign key should be rejected")
	}

	// A rolled-back insert must not be visible afterwards.
	boom := errors.New("boom")
	err = d.SessionScope(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO parent (id) VALUES (2)"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatal(err)
	}
	var n int
	if err := d.Handle().QueryRowContext(ctx, "SELECT COUNT(*) FROM parent").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("parent row count %d, want 1", n)
	}
}

func TestOpenPathWithQueryString(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// A path already carrying DSN options must still get the foreign-keys
	// pragma appended in valid form.
	d, err := Open(ctx, "file:"+filepath.Join(t.TempDir(), "q.db")+"?cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	_, err = d.Handle().ExecContext(ctx, `
		CREATE TABLE parent (id INTEGER PRIMARY KEY);
		CREATE TABLE child (
			id INTEGER PRIMARY KEY,
			parent_id INTEGER NOT NULL REFERENCES parent(id)
		);`)
	if err != nil {
		t.Fatal(err)
	}
	_, err = d.Handle().ExecContext(ctx, "INSERT INTO child (id, parent_id) VALUES (1, 99)")
	if err == nil {
		t.Fatal("dangling foreign key should be rejected")
	}
}

func TestUserVersion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	d, err := Open(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	v, err := d.UserVersion(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 {
		t.Fatalf("fresh db user_version %d, want 0", v)
	}
	if err := d.SetUserVersion(ctx, 7); err != nil {
		t.Fatal(err)
	}
	if v, err = d.UserVersion(ctx); err != nil || v != 7 {
		t.Fatalf("user_version %d, %v, want 7", v, err)
	}
	if err := d.SetUserVersion(ctx, -1); err == nil {
		t.Fatal("negative user_version should be rejected")
	}
}
