// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package server

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mstarongithub/driftwc/compositor"
	"github.com/mstarongithub/driftwc/render"
)

// Placeholder fill for windows that never attached a texture.
var placeholderWindowColor = render.Color{R: 0.3, G: 0.3, B: 0.35, A: 1}

// ComposeOutputs renders one frame for every output. Element lists are
// built on the calling goroutine (the state collections are not safe to
// read concurrently); the per-output frame lifecycles then run in
// flight concurrently. A renderer failure aborts only that output's
// frame; the others finish normally. All failures come back joined.
func (s *Server) ComposeOutputs(ctx context.Context, renderer render.Renderer) error {
	type outputPlan struct {
		opts     render.FrameOptions
		elements []render.Element
	}

	plans := make([]outputPlan, 0, len(s.Compositor.Outputs))
	for _, output := range s.Compositor.Outputs {
		plans = append(plans, outputPlan{
			opts: render.FrameOptions{
				Output:       output.ID,
				PhysicalSize: render.Size{Width: int32(output.Width), Height: int32(output.Height)},
				Scale:        render.Scale{X: 1, Y: 1},
			},
			elements: s.buildElements(output),
		})
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, plan := range plans {
		wg.Add(1)
		go func(plan outputPlan) {
			defer wg.Done()
			if err := renderPlan(ctx, renderer, plan.opts, plan.elements); err != nil {
				logrus.WithError(err).WithField("output", plan.opts.Output).Errorln("Frame aborted")
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(plan)
	}
	wg.Wait()

	return errors.Join(errs...)
}

func renderPlan(ctx context.Context, renderer render.Renderer, opts render.FrameOptions, elements []render.Element) error {
	frame, err := renderer.BeginFrame(ctx, opts)
	if err != nil {
		return err
	}
	if err := frame.RenderElements(ctx, elements); err != nil {
		// The frame is dead; a Finish would only report a second error
		return err
	}
	_, err = frame.Finish(ctx)
	return err
}

// buildElements assembles the draw list for one output, back to front:
// background fill, mapped windows in collection order, cursor on top.
func (s *Server) buildElements(output compositor.Output) []render.Element {
	elements := []render.Element{
		render.SolidColorElement{
			Color: s.background,
			Geometry: render.Rect{
				X:      output.X,
				Y:      output.Y,
				Width:  int32(output.Width),
				Height: int32(output.Height),
			},
		},
	}

	for _, window := range s.Compositor.Windows {
		if !window.Mapped {
			continue
		}
		geometry := render.Rect{
			X:      window.X,
			Y:      window.Y,
			Width:  int32(window.Width),
			Height: int32(window.Height),
		}
		if tex, ok := s.textures[window.ID]; ok {
			elements = append(elements, render.SurfaceElement{
				Texture:  tex,
				Geometry: geometry,
				Alpha:    1,
			})
		} else {
			elements = append(elements, render.SolidColorElement{
				Color:    placeholderWindowColor,
				Geometry: geometry,
			})
		}
	}

	elements = append(elements, render.CursorElement{
		Texture: s.cursorTexture,
		Hotspot: render.Point{
			X: int32(s.Tracker.State.PointerX),
			Y: int32(s.Tracker.State.PointerY),
		},
		OutputScale: render.Scale{X: 1, Y: 1},
	})
	return elements
}
