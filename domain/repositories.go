package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when no record matches.
var ErrNotFound = errors.New("not found")

// ApplicationRepository stores Application records. Implementations live
// in the persistence package.
type ApplicationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Application, error)
	GetByName(ctx context.Context, name string) (*Application, error)
	GetAll(ctx context.Context) ([]Application, error)
	Add(ctx context.Context, app *Application) error
	Update(ctx context.Context, app *Application) error
	Remove(ctx context.Context, id uuid.UUID) error
}

// WorkspaceRepository stores Workspace records.
type WorkspaceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Workspace, error)
	GetByName(ctx context.Context, name string) (*Workspace, error)
	GetAll(ctx context.Context) ([]Workspace, error)
	Add(ctx context.Context, ws *Workspace) error
	Update(ctx context.Context, ws *Workspace) error
	Remove(ctx context.Context, id uuid.UUID) error
}

// PreferenceRepository stores settings keyed by their dotted path.
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (*UserPreferenceSetting, error)
	GetAll(ctx context.Context) ([]UserPreferenceSetting, error)
	Set(ctx context.Context, setting *UserPreferenceSetting) error
	Remove(ctx context.Context, key string) error
}
