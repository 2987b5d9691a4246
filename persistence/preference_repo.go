// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mstarongithub/driftwc/domain"
)

// PreferenceRepo implements domain.PreferenceRepository on sqlite.
type PreferenceRepo struct {
	db *sql.DB
}

func (r *PreferenceRepo) Get(ctx context.Context, key string) (*domain.UserPreferenceSetting, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM preferences WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var setting domain.UserPreferenceSetting
	if err := json.Unmarshal([]byte(raw), &setting); err != nil {
		return nil, fmt.Errorf("decoding preference: %w", err)
	}
	return &setting, nil
}

func (r *PreferenceRepo) GetAll(ctx context.Context) ([]domain.UserPreferenceSetting, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM preferences ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("querying preferences: %w", err)
	}
	defer rows.Close()

	var settings []domain.UserPreferenceSetting
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var setting domain.UserPreferenceSetting
		if err := json.Unmarshal([]byte(raw), &setting); err != nil {
			return nil, fmt.Errorf("decoding preference: %w", err)
		}
		settings = append(settings, setting)
	}
	return settings, rows.Err()
}

// Set inserts or overwrites, matching how settings UIs expect saves to work.
func (r *PreferenceRepo) Set(ctx context.Context, setting *domain.UserPreferenceSetting) error {
	raw, err := json.Marshal(setting)
	if err != nil {
		return fmt.Errorf("encoding preference: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO preferences (key, data) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data`,
		setting.Key, string(raw))
	return err
}

func (r *PreferenceRepo) Remove(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
