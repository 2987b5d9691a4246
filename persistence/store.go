// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package persistence keeps domain records in a local sqlite file.
// Records are stored as JSON blobs keyed by their id, which keeps the
// schema trivial while the entity types are still moving.
package persistence

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS applications (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS workspaces (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS preferences (
	key  TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
`

// Store owns the sqlite handle shared by the repositories.
type Store struct {
	db *sql.DB
}

// DefaultPath returns where the state db lives if no path is configured
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "driftwc", "state.db")
}

// OpenStore opens (creating if needed) the sqlite db at path and makes
// sure the schema exists.
func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	logrus.WithField("path", path).Debugln("Opened state db")
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Applications returns the application repository backed by this store.
func (s *Store) Applications() *ApplicationRepo {
	return &ApplicationRepo{db: s.db}
}

// Workspaces returns the workspace repository backed by this store.
func (s *Store) Workspaces() *WorkspaceRepo {
	return &WorkspaceRepo{db: s.db}
}

// Preferences returns the preference repository backed by this store.
func (s *Store) Preferences() *PreferenceRepo {
	return &PreferenceRepo{db: s.db}
}
