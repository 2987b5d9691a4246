// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package render defines the contract between the compositor core and a
// rendering backend. The core never touches a GPU itself; a backend
// implements Renderer and Frame, and the test suite substitutes the fake
// from render/rendertest.
package render

import (
	"context"

	"github.com/google/uuid"
)

// FrameOptions describes the output a new frame is prepared for.
type FrameOptions struct {
	// Identity of the output this frame targets. Backends use it to
	// enforce the one-active-frame-per-output rule.
	Output uint32
	// Output size in physical pixels
	PhysicalSize Size
	Scale        Scale
	Transform    Transform
	// Regions needing redraw, in physical pixels. nil means redraw
	// everything.
	Damage []Rect
}

// FrameInfo is the metadata a finished frame reports back.
type FrameInfo struct {
	// When the frame was (or will be) presented, if the backend knows
	PresentationNanos int64
	Flags             uint32
}

// Renderer is the per-backend entry point.
//
// Every method taking a context may suspend on backend work (GPU upload,
// buffer import, presentation wait). Context cancellation aborts the call
// with a KindBackendSpecific error wrapping ctx.Err(); a frame whose call
// was cancelled is dead and must not be finished.
//
// At most one frame may be active per output at a time: a new BeginFrame
// for the same output must wait for the prior frame's Finish. Frames for
// different outputs may be in flight concurrently.
type Renderer interface {
	// BeginFrame prepares a new frame for one output.
	BeginFrame(ctx context.Context, opts FrameOptions) (Frame, error)

	// CreateTextureFromShm uploads a shared-memory buffer into a new
	// texture.
	CreateTextureFromShm(ctx context.Context, buf *ShmBuffer) (Texture, error)

	// CreateTextureFromDmabuf imports a GPU-exported buffer, ideally
	// without a copy.
	CreateTextureFromDmabuf(ctx context.Context, buf *DmabufBuffer) (Texture, error)

	// ReleaseTexture destroys the backend resource behind a texture id.
	// Only this call frees the resource; dropping Texture references does
	// not.
	ReleaseTexture(ctx context.Context, id uuid.UUID) error

	// SupportedDmabufFormats lists the format/modifier pairs the backend
	// accepts, for negotiation with clients.
	SupportedDmabufFormats() []DmabufFormat

	// Info describes the backend (name, version, extensions), free-form.
	Info() string
}

// Frame is one in-progress frame for one output.
//
// The lifecycle is strictly BeginFrame, zero or more RenderElements calls,
// then Finish. Each RenderElements call appends to the frame in submission
// order.
type Frame interface {
	RenderElements(ctx context.Context, elements []Element) error

	// Finish finalizes the frame and submits it for presentation.
	Finish(ctx context.Context) (FrameInfo, error)
}
