// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrValidation marks a rejected input (empty name, bad key, ...)
	ErrValidation = errors.New("validation failed")
	// ErrDuplicate marks a uniqueness violation
	ErrDuplicate = errors.New("already exists")
)

// Launcher starts an application's process. Implemented by proc.
type Launcher interface {
	Launch(ctx context.Context, app *Application) (pid int, err error)
}

// ApplicationService manages the catalogue of known applications.
type ApplicationService struct {
	repo     ApplicationRepository
	launcher Launcher
}

func NewApplicationService(repo ApplicationRepository, launcher Launcher) *ApplicationService {
	return &ApplicationService{repo: repo, launcher: launcher}
}

func (s *ApplicationService) Register(ctx context.Context, app *Application) error {
	if strings.TrimSpace(app.Name) == "" {
		return fmt.Errorf("%w: application name must not be empty", ErrValidation)
	}
	if strings.TrimSpace(app.ExecutablePath) == "" {
		return fmt.Errorf("%w: executable path must not be empty", ErrValidation)
	}
	if existing, err := s.repo.GetByName(ctx, app.Name); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	} else if existing != nil {
		return fmt.Errorf("%w: application %q", ErrDuplicate, app.Name)
	}
	logrus.WithFields(logrus.Fields{
		"app":        app.Name,
		"executable": app.ExecutablePath,
	}).Infoln("Registering application")
	return s.repo.Add(ctx, app)
}

func (s *ApplicationService) List(ctx context.Context) ([]Application, error) {
	return s.repo.GetAll(ctx)
}

func (s *ApplicationService) Get(ctx context.Context, id uuid.UUID) (*Application, error) {
	return s.repo.GetByID(ctx, id)
}

// LaunchByName looks an application up and starts it.
func (s *ApplicationService) LaunchByName(ctx context.Context, name string) (int, error) {
	app, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return 0, err
	}
	pid, err := s.launcher.Launch(ctx, app)
	if err != nil {
		return 0, err
	}
	logrus.WithFields(logrus.Fields{
		"app": app.Name,
		"pid": pid,
	}).Infoln("Launched application")
	return pid, nil
}

// WorkspaceService manages workspaces with unique names.
type WorkspaceService struct {
	repo WorkspaceRepository
}

func NewWorkspaceService(repo WorkspaceRepository) *WorkspaceService {
	return &WorkspaceService{repo: repo}
}

func (s *WorkspaceService) Create(ctx context.Context, name, primaryOutput string) (*Workspace, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: workspace name must not be empty", ErrValidation)
	}
	if existing, err := s.repo.GetByName(ctx, name); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: workspace %q", ErrDuplicate, name)
	}

	ws := NewWorkspace(name, primaryOutput)
	logrus.WithFields(logrus.Fields{
		"workspace": ws.Name,
		"id":        ws.ID,
	}).Infoln("Creating workspace")
	if err := s.repo.Add(ctx, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

func (s *WorkspaceService) List(ctx context.Context) ([]Workspace, error) {
	return s.repo.GetAll(ctx)
}

func (s *WorkspaceService) Get(ctx context.Context, id uuid.UUID) (*Workspace, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *WorkspaceService) Rename(ctx context.Context, id uuid.UUID, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return fmt.Errorf("%w: workspace name must not be empty", ErrValidation)
	}
	ws, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if other, err := s.repo.GetByName(ctx, newName); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	} else if other != nil && other.ID != id {
		return fmt.Errorf("%w: workspace %q", ErrDuplicate, newName)
	}
	ws.Name = newName
	return s.repo.Update(ctx, ws)
}

func (s *WorkspaceService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.Remove(ctx, id)
}

// PreferenceService manages user preference settings.
type PreferenceService struct {
	repo PreferenceRepository
}

func NewPreferenceService(repo PreferenceRepository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

func (s *PreferenceService) Set(ctx context.Context, setting *UserPreferenceSetting) error {
	key := strings.TrimSpace(setting.Key)
	if key == "" || strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") {
		return fmt.Errorf("%w: bad preference key %q", ErrValidation, setting.Key)
	}
	return s.repo.Set(ctx, setting)
}

func (s *PreferenceService) Get(ctx context.Context, key string) (*UserPreferenceSetting, error) {
	return s.repo.Get(ctx, key)
}

func (s *PreferenceService) All(ctx context.Context) ([]UserPreferenceSetting, error) {
	return s.repo.GetAll(ctx)
}
