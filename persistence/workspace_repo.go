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

// WorkspaceRepo implements domain.WorkspaceRepository on sqlite.
type WorkspaceRepo struct {
	db *sql.DB
}

func (r *WorkspaceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM workspaces WHERE id = ?`, id.String())
	return scanWorkspace(row)
}

func (r *WorkspaceRepo) GetByName(ctx context.Context, name string) (*domain.Workspace, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM workspaces WHERE name = ?`, name)
	return scanWorkspace(row)
}

func (r *WorkspaceRepo) GetAll(ctx context.Context) ([]domain.Workspace, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM workspaces ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying workspaces: %w", err)
	}
	defer rows.Close()

	var spaces []domain.Workspace
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var ws domain.Workspace
		if err := json.Unmarshal([]byte(raw), &ws); err != nil {
			return nil, fmt.Errorf("decoding workspace: %w", err)
		}
		spaces = append(spaces, ws)
	}
	return spaces, rows.Err()
}

func (r *WorkspaceRepo) Add(ctx context.Context, ws *domain.Workspace) error {
	raw, err := json.Marshal(ws)
	if err != nil {
		return fmt.Errorf("encoding workspace: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO workspaces (id, name, data) VALUES (?, ?, ?)`,
		ws.ID.String(), ws.Name, string(raw))
	return err
}

func (r *WorkspaceRepo) Update(ctx context.Context, ws *domain.Workspace) error {
	raw, err := json.Marshal(ws)
	if err != nil {
		return fmt.Errorf("encoding workspace: %w", err)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE workspaces SET name = ?, data = ? WHERE id = ?`,
		ws.Name, string(raw), ws.ID.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *WorkspaceRepo) Remove(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workspaces WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanWorkspace(row *sql.Row) (*domain.Workspace, error) {
	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var ws domain.Workspace
	if err := json.Unmarshal([]byte(raw), &ws); err != nil {
		return nil, fmt.Errorf("decoding workspace: %w", err)
	}
	return &ws, nil
}
