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

	"github.com/google/uuid"

	"github.com/mstarongithub/driftwc/domain"
)

// ApplicationRepo implements domain.ApplicationRepository on sqlite.
type ApplicationRepo struct {
	db *sql.DB
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM applications WHERE id = ?`, id.String())
	return scanApplication(row)
}

func (r *ApplicationRepo) GetByName(ctx context.Context, name string) (*domain.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM applications WHERE name = ?`, name)
	return scanApplication(row)
}

func (r *ApplicationRepo) GetAll(ctx context.Context) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM applications ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying applications: %w", err)
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var app domain.Application
		if err := json.Unmarshal([]byte(raw), &app); err != nil {
			return nil, fmt.Errorf("decoding application: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepo) Add(ctx context.Context, app *domain.Application) error {
	raw, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("encoding application: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO applications (id, name, data) VALUES (?, ?, ?)`,
		app.ID.String(), app.Name, string(raw))
	return err
}

func (r *ApplicationRepo) Update(ctx context.Context, app *domain.Application) error {
	raw, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("encoding application: %w", err)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE applications SET name = ?, data = ? WHERE id = ?`,
		app.Name, string(raw), app.ID.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *ApplicationRepo) Remove(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanApplication(row *sql.Row) (*domain.Application, error) {
	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var app domain.Application
	if err := json.Unmarshal([]byte(raw), &app); err != nil {
		return nil, fmt.Errorf("decoding application: %w", err)
	}
	return &app, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
