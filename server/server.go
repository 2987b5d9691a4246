// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package server glues the input tracker, the compositor state and the
// clipboard into one event loop. It owns client registration and is the
// only place shortcuts get intercepted before dispatch.
package server

import (
	"github.com/sirupsen/logrus"

	"github.com/mstarongithub/driftwc/clipboard"
	"github.com/mstarongithub/driftwc/compositor"
	"github.com/mstarongithub/driftwc/input"
	"github.com/mstarongithub/driftwc/render"
)

// Payload used for the copy shortcut when no window holds focus.
const fallbackCopyPayload = "Simulated copied text from active window"

// Client is a known peer. Only ids on this list may create windows or
// touch the clipboard.
type Client struct {
	ID uint32
}

type Server struct {
	Compositor *compositor.State
	Tracker    *input.Tracker
	Clipboard  *clipboard.Clipboard

	clients      []Client
	nextClientID uint32

	seatName   string
	background render.Color

	// Latest texture per window id, fed by the render path
	textures map[uint32]render.Texture
	// Current cursor image; nil lets the backend draw its default
	cursorTexture render.Texture
}

// NewServer builds a server around a freshly seeded compositor state.
// The default seat "seat0" is used for all dispatch.
func NewServer() *Server {
	return NewServerForSeat("seat0")
}

// NewServerForSeat is NewServer with the dispatch seat named by the
// caller (the seat_name config field ends up here).
func NewServerForSeat(seatName string) *Server {
	return &Server{
		Compositor:   compositor.NewStateForSeat(seatName),
		Tracker:      input.NewTracker(),
		Clipboard:    clipboard.New(),
		nextClientID: 1,
		seatName:     seatName,
		background:   render.Color{R: 0.1, G: 0.1, B: 0.12, A: 1},
		textures:     map[uint32]render.Texture{},
	}
}

// SeatName is the seat all input dispatch runs against.
func (s *Server) SeatName() string {
	return s.seatName
}

// SetBackground changes the color drawn behind all windows.
func (s *Server) SetBackground(c render.Color) {
	s.background = c
}

// AddClient registers a new client and returns its id. Ids count up
// from 1 and are never reused.
func (s *Server) AddClient() uint32 {
	id := s.nextClientID
	s.nextClientID++
	s.clients = append(s.clients, Client{ID: id})
	logrus.WithField("client", id).Infoln("Client added")
	return id
}

func (s *Server) knownClient(id uint32) bool {
	for _, c := range s.clients {
		if c.ID == id {
			return true
		}
	}
	return false
}

// ProcessClientRequest handles one request from a client. Requests from
// unknown client ids produce no event, only a log line.
func (s *Server) ProcessClientRequest(req Request) Event {
	if !s.knownClient(req.RequestClient()) {
		logrus.WithFields(logrus.Fields{
			"client":  req.RequestClient(),
			"request": req,
		}).Warnln("Request from unknown client rejected")
		return nil
	}

	switch r := req.(type) {
	case CreateWindowRequest:
		windowID := s.Compositor.NextWindowID()
		// Cascade new windows so they don't stack exactly on top of
		// each other
		count := int32(len(s.Compositor.Windows))
		x := 50 + count*20
		y := 50 + count*20

		window := compositor.NewWindow(windowID, r.ClientID, r.Title, r.InitialWidth, r.InitialHeight, x, y)
		s.Compositor.AddWindow(window)
		logrus.WithFields(logrus.Fields{
			"window": windowID,
			"client": r.ClientID,
			"x":      window.X,
			"y":      window.Y,
			"width":  window.Width,
			"height": window.Height,
		}).Infoln("Window created")
		return WindowCreatedEvent{
			WindowID: windowID,
			ClientID: r.ClientID,
			X:        window.X,
			Y:        window.Y,
			Width:    window.Width,
			Height:   window.Height,
		}

	case CopyTextRequest:
		s.Clipboard.Set(r.Text)
		return TextCopiedEvent{ClientID: r.ClientID}

	case PasteTextRequest:
		text, ok := s.Clipboard.Get()
		return PasteTextResponseEvent{ClientID: r.ClientID, Text: text, Available: ok}

	case MapWindowRequest:
		if !s.Compositor.MapWindow(r.WindowID) {
			return nil
		}
		return WindowMappedEvent{WindowID: r.WindowID}

	case UnmapWindowRequest:
		if !s.Compositor.UnmapWindow(r.WindowID) {
			return nil
		}
		return WindowUnmappedEvent{WindowID: r.WindowID}

	case CloseWindowRequest:
		if !s.Compositor.RemoveWindow(r.WindowID) {
			return nil
		}
		delete(s.textures, r.WindowID)
		return WindowClosedEvent{WindowID: r.WindowID}

	default:
		logrus.WithField("request", req).Warnln("Unhandled request kind")
		return nil
	}
}

// RunLoopIteration processes one batch of input events. Each event is
// reduced through the tracker, shortcuts are intercepted here, and
// everything else is dispatched to the default seat's focused window.
// After the whole batch, every window's queue is drained in collection
// order.
func (s *Server) RunLoopIteration(events []input.Event) {
	logrus.WithField("events", len(events)).Debugln("Starting loop iteration")

	for _, raw := range events {
		processed := s.Tracker.Process(raw)

		if shortcut, ok := processed.(input.ShortcutEvent); ok {
			s.handleShortcut(shortcut)
			continue
		}

		if !s.Compositor.DispatchInputEvent(processed, s.seatName) {
			logrus.WithField("event", processed).Debugln("Event not dispatched, no focused window")
		}
	}

	for _, window := range s.Compositor.Windows {
		window.DrainEvents()
	}
}

func (s *Server) handleShortcut(ev input.ShortcutEvent) {
	switch ev.Kind {
	case input.ShortcutCopy:
		payload := fallbackCopyPayload
		if window := s.focusedWindow(); window != nil {
			payload = window.Title
		}
		s.Clipboard.Set(payload)
		logrus.Debugln("Copy shortcut, clipboard set")
	case input.ShortcutPaste:
		// Shortcuts never enter a window's queue. Delivering the pasted
		// text to the client is protocol work outside this core.
		if text, ok := s.Clipboard.Get(); ok {
			logrus.WithField("bytes", len(text)).Debugln("Paste shortcut, clipboard read")
		} else {
			logrus.Debugln("Paste shortcut, clipboard empty")
		}
	}
}

func (s *Server) focusedWindow() *compositor.Window {
	seat := s.Compositor.FindSeat(s.seatName)
	if seat == nil {
		return nil
	}
	target, ok := seat.FocusTarget()
	if !ok {
		return nil
	}
	return s.Compositor.FindWindow(target)
}

// SetWindowTexture associates a window with its current content
// texture. Windows without one render as a solid placeholder.
func (s *Server) SetWindowTexture(windowID uint32, tex render.Texture) {
	s.textures[windowID] = tex
}

// WindowTexture looks the current texture up, if any.
func (s *Server) WindowTexture(windowID uint32) (render.Texture, bool) {
	tex, ok := s.textures[windowID]
	return tex, ok
}

// SetCursorTexture swaps the cursor image submitted with every frame.
// Passing nil falls back to the backend's default cursor.
func (s *Server) SetCursorTexture(tex render.Texture) {
	s.cursorTexture = tex
}
