// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package domain holds the higher-level desktop entities (applications,
// workspaces, user preferences) and the services managing them. It sits
// beside the compositor core; neither calls into the other.
package domain

import (
	"github.com/google/uuid"
)

// ApplicationKind tells the system how an application should be treated.
type ApplicationKind string

const (
	ApplicationKindDesktop    ApplicationKind = "desktop"
	ApplicationKindCli        ApplicationKind = "cli"
	ApplicationKindWebService ApplicationKind = "web-service"
	ApplicationKindBackground ApplicationKind = "background-service"
)

// Application is one launchable program known to the system.
type Application struct {
	ID uuid.UUID `json:"id"`
	// Technical name, e.g. "firefox" or "org.gnome.TextEditor"
	Name string `json:"name"`
	// Friendlier name for UIs; falls back to Name when empty
	DisplayName      string          `json:"display_name,omitempty"`
	ExecutablePath   string          `json:"executable_path"`
	Arguments        []string        `json:"arguments,omitempty"`
	WorkingDirectory string          `json:"working_directory,omitempty"`
	IconName         string          `json:"icon_name,omitempty"`
	Categories       []string        `json:"categories,omitempty"`
	Kind             ApplicationKind `json:"kind"`
}

func NewApplication(name, executablePath string, kind ApplicationKind) Application {
	return Application{
		ID:             uuid.New(),
		Name:           name,
		ExecutablePath: executablePath,
		Kind:           kind,
	}
}

// Workspace is a logical grouping of windows, a virtual desktop.
type Workspace struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	// Free-form layout description, interpreted by the UI layer
	LayoutConfiguration string `json:"layout_configuration"`
	// Output this workspace is mainly tied to, if any
	PrimaryOutput string            `json:"primary_output,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

func NewWorkspace(name, primaryOutput string) Workspace {
	return Workspace{
		ID:                  uuid.New(),
		Name:                name,
		LayoutConfiguration: "default",
		PrimaryOutput:       primaryOutput,
		Metadata:            map[string]string{},
	}
}

// PreferenceKind tags which field of a PreferenceValue is meaningful.
type PreferenceKind string

const (
	PreferenceKindString     PreferenceKind = "string"
	PreferenceKindInteger    PreferenceKind = "integer"
	PreferenceKindFloat      PreferenceKind = "float"
	PreferenceKindBoolean    PreferenceKind = "boolean"
	PreferenceKindColor      PreferenceKind = "color"
	PreferenceKindStringList PreferenceKind = "string-list"
)

// PreferenceValue is a tagged union over the value types a setting can
// hold. Only the field matching Kind is meaningful.
type PreferenceValue struct {
	Kind  PreferenceKind `json:"kind"`
	Str   string         `json:"str,omitempty"`
	Int   int64          `json:"int,omitempty"`
	Float float64        `json:"float,omitempty"`
	Bool  bool           `json:"bool,omitempty"`
	// Color as an RGBA string, e.g. "#RRGGBBAA"
	Color string   `json:"color,omitempty"`
	List  []string `json:"list,omitempty"`
}

func StringValue(v string) PreferenceValue {
	return PreferenceValue{Kind: PreferenceKindString, Str: v}
}

func IntegerValue(v int64) PreferenceValue {
	return PreferenceValue{Kind: PreferenceKindInteger, Int: v}
}

func BooleanValue(v bool) PreferenceValue {
	return PreferenceValue{Kind: PreferenceKindBoolean, Bool: v}
}

// UserPreferenceSetting is one configurable setting, keyed by a dotted
// path like "theme.dark_mode_enabled".
type UserPreferenceSetting struct {
	Key             string          `json:"key"`
	Value           PreferenceValue `json:"value"`
	DisplayName     string          `json:"display_name"`
	Description     string          `json:"description,omitempty"`
	RequiresRestart bool            `json:"requires_restart"`
}
