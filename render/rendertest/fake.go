// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package rendertest provides a deterministic in-memory backend for tests.
// It records everything submitted to it and enforces the frame lifecycle
// rules a real backend would.
package rendertest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mstarongithub/driftwc/render"
)

// Fake implements render.Renderer without any GPU behind it.
//
// Failure injection: set one of the Fail* fields and the matching call
// returns that error until the field is cleared again.
type Fake struct {
	mu sync.Mutex

	textures map[uuid.UUID]*FakeTexture
	released []uuid.UUID
	// One active frame per output, keyed by FrameOptions.Output
	active    map[uint32]*FakeFrame
	completed []*FakeFrame

	Formats []render.DmabufFormat

	FailBeginFrame     error
	FailShmImport      error
	FailDmabufImport   error
	FailRenderElements error
	FailFinish         error
	FailRelease        error
	// Per-output Finish failures, for exercising frame isolation
	FailFinishOutputs map[uint32]error
}

// FakeTexture implements render.Texture.
type FakeTexture struct {
	id       uuid.UUID
	width    uint32
	height   uint32
	format   render.PixelFormat
	hasAlpha bool
	kind     render.BufferKind
}

func (t *FakeTexture) ID() uuid.UUID                     { return t.id }
func (t *FakeTexture) Width() uint32                     { return t.width }
func (t *FakeTexture) Height() uint32                    { return t.height }
func (t *FakeTexture) Format() (render.PixelFormat, bool) { return t.format, true }
func (t *FakeTexture) HasAlpha() bool                    { return t.hasAlpha }
func (t *FakeTexture) BufferKind() render.BufferKind     { return t.kind }

// FakeFrame implements render.Frame and records submitted elements in
// submission order.
type FakeFrame struct {
	fake     *Fake
	Output   uint32
	Options  render.FrameOptions
	Elements []render.Element
	finished bool
}

func NewFake() *Fake {
	return &Fake{
		textures: map[uuid.UUID]*FakeTexture{},
		active:   map[uint32]*FakeFrame{},
		Formats: []render.DmabufFormat{
			{Format: render.FormatARGB8888, Modifiers: []uint64{0}},
			{Format: render.FormatXRGB8888, Modifiers: []uint64{0}},
		},
	}
}

func hasAlpha(f render.PixelFormat) bool {
	return f == render.FormatARGB8888 || f == render.FormatRGBA8888
}

func (f *Fake) BeginFrame(ctx context.Context, opts render.FrameOptions) (render.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, render.NewBackendError("begin frame cancelled", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailBeginFrame != nil {
		return nil, f.FailBeginFrame
	}
	if _, busy := f.active[opts.Output]; busy {
		return nil, render.NewError(render.KindInvalidOperation, "frame already active for output")
	}
	frame := &FakeFrame{fake: f, Output: opts.Output, Options: opts}
	f.active[opts.Output] = frame
	return frame, nil
}

func (f *Fake) CreateTextureFromShm(ctx context.Context, buf *render.ShmBuffer) (render.Texture, error) {
	if err := ctx.Err(); err != nil {
		return nil, render.NewBackendError("shm upload cancelled", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailShmImport != nil {
		return nil, f.FailShmImport
	}
	if buf == nil || buf.Width == 0 || buf.Height == 0 {
		return nil, render.NewError(render.KindTextureUpload, "empty shm buffer")
	}
	tex := &FakeTexture{
		id:       uuid.New(),
		width:    buf.Width,
		height:   buf.Height,
		format:   buf.Format,
		hasAlpha: hasAlpha(buf.Format),
		kind:     render.BufferKindShm,
	}
	f.textures[tex.id] = tex
	return tex, nil
}

func (f *Fake) CreateTextureFromDmabuf(ctx context.Context, buf *render.DmabufBuffer) (render.Texture, error) {
	if err := ctx.Err(); err != nil {
		return nil, render.NewBackendError("dmabuf import cancelled", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailDmabufImport != nil {
		return nil, f.FailDmabufImport
	}
	if buf == nil || buf.PlaneCount == 0 {
		return nil, render.NewError(render.KindBufferImport, "dmabuf without planes")
	}
	tex := &FakeTexture{
		id:       uuid.New(),
		width:    buf.Width,
		height:   buf.Height,
		format:   buf.Format,
		hasAlpha: hasAlpha(buf.Format),
		kind:     render.BufferKindDmabuf,
	}
	f.textures[tex.id] = tex
	return tex, nil
}

func (f *Fake) ReleaseTexture(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return render.NewBackendError("release cancelled", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailRelease != nil {
		return f.FailRelease
	}
	// Releasing an already released id is fine, the call is meant to be
	// idempotent
	delete(f.textures, id)
	f.released = append(f.released, id)
	return nil
}

func (f *Fake) SupportedDmabufFormats() []render.DmabufFormat {
	return f.Formats
}

func (f *Fake) Info() string {
	return "rendertest fake renderer v1 (records, never draws)"
}

// TextureCount reports how many textures are currently alive.
func (f *Fake) TextureCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.textures)
}

// HasTexture reports whether a texture id is still alive.
func (f *Fake) HasTexture(id uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.textures[id]
	return ok
}

// Released returns the release calls seen so far, in order.
func (f *Fake) Released() []uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]uuid.UUID(nil), f.released...)
}

// CompletedFrames returns all finished frames, in completion order.
func (f *Fake) CompletedFrames() []*FakeFrame {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*FakeFrame(nil), f.completed...)
}

func (fr *FakeFrame) RenderElements(ctx context.Context, elements []render.Element) error {
	if err := ctx.Err(); err != nil {
		return render.NewBackendError("render cancelled", err)
	}
	fr.fake.mu.Lock()
	defer fr.fake.mu.Unlock()
	if fr.fake.FailRenderElements != nil {
		return fr.fake.FailRenderElements
	}
	if fr.finished {
		return render.NewError(render.KindInvalidOperation, "render into a finished frame")
	}
	// Painter's Algorithm: append in submission order, draw later over
	// earlier
	fr.Elements = append(fr.Elements, elements...)
	return nil
}

func (fr *FakeFrame) Finish(ctx context.Context) (render.FrameInfo, error) {
	if err := ctx.Err(); err != nil {
		return render.FrameInfo{}, render.NewBackendError("finish cancelled", err)
	}
	fr.fake.mu.Lock()
	defer fr.fake.mu.Unlock()
	if fr.finished {
		return render.FrameInfo{}, render.NewError(render.KindInvalidOperation, "frame finished twice")
	}
	fr.finished = true
	delete(fr.fake.active, fr.Output)
	if fr.fake.FailFinish != nil {
		return render.FrameInfo{}, fr.fake.FailFinish
	}
	if err, ok := fr.fake.FailFinishOutputs[fr.Output]; ok {
		return render.FrameInfo{}, err
	}
	fr.fake.completed = append(fr.fake.completed, fr)
	return render.FrameInfo{PresentationNanos: time.Now().UnixNano()}, nil
}
