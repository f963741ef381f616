// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// goose issues its own queries; none of them are expected by the mock
	err = Migrate(db, "pgx")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "sqlite3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil database")
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	err := Migrate(&sql.DB{}, "mysql")
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, "sqlite3"))
	// a second run has nothing left to apply
	require.NoError(t, Migrate(db, "sqlite3"))

	_, err = db.Exec(`INSERT INTO widgets (name, owner_id) VALUES ('gear', 1)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO widgets (name, owner_id) VALUES ('gear', 2)`)
	assert.Error(t, err, "widget names are unique")
}
