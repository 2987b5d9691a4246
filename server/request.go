// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package server

// Request is something a known client asks the server to do. Unknown
// client ids are rejected silently (logged, no event produced).
type Request interface {
	// RequestClient names the client making the request, for the
	// allow-list check.
	RequestClient() uint32
	isClientRequest()
}

type (
	// A request to create a new window
	CreateWindowRequest struct {
		// The ID of the client making the request
		ClientID uint32 `json:"client_id"`
		// The initial title for the new window
		Title string `json:"title"`
		// Requested initial width of the new window
		InitialWidth uint32 `json:"initial_width"`
		// Requested initial height of the new window
		InitialHeight uint32 `json:"initial_height"`
	}

	// A request to place text on the global clipboard
	CopyTextRequest struct {
		ClientID uint32 `json:"client_id"`
		Text     string `json:"text"`
	}

	// A request for the current clipboard content
	PasteTextRequest struct {
		ClientID uint32 `json:"client_id"`
	}

	// A request to make a window visible again
	MapWindowRequest struct {
		ClientID uint32 `json:"client_id"`
		WindowID uint32 `json:"window_id"`
	}

	// A request to hide a window without destroying it
	UnmapWindowRequest struct {
		ClientID uint32 `json:"client_id"`
		WindowID uint32 `json:"window_id"`
	}

	// A request to destroy a window
	CloseWindowRequest struct {
		ClientID uint32 `json:"client_id"`
		WindowID uint32 `json:"window_id"`
	}
)

func (r CreateWindowRequest) RequestClient() uint32 { return r.ClientID }
func (r CopyTextRequest) RequestClient() uint32     { return r.ClientID }
func (r PasteTextRequest) RequestClient() uint32    { return r.ClientID }
func (r MapWindowRequest) RequestClient() uint32    { return r.ClientID }
func (r UnmapWindowRequest) RequestClient() uint32  { return r.ClientID }
func (r CloseWindowRequest) RequestClient() uint32  { return r.ClientID }

func (CreateWindowRequest) isClientRequest() {}
func (CopyTextRequest) isClientRequest()     {}
func (PasteTextRequest) isClientRequest()    {}
func (MapWindowRequest) isClientRequest()    {}
func (UnmapWindowRequest) isClientRequest()  {}
func (CloseWindowRequest) isClientRequest()  {}

// Event is something the server reports back to a client.
type Event interface {
	isServerEvent()
}

type (
	// Acknowledges a created window with its assigned id and geometry
	WindowCreatedEvent struct {
		WindowID uint32 `json:"window_id"`
		ClientID uint32 `json:"client_id"`
		X        int32  `json:"x"`
		Y        int32  `json:"y"`
		Width    uint32 `json:"width"`
		Height   uint32 `json:"height"`
	}

	// Acknowledges a copy request
	TextCopiedEvent struct {
		ClientID uint32 `json:"client_id"`
	}

	// Answers a paste request. Available is false if the clipboard was
	// empty
	PasteTextResponseEvent struct {
		ClientID  uint32 `json:"client_id"`
		Text      string `json:"text"`
		Available bool   `json:"available"`
	}

	WindowMappedEvent struct {
		WindowID uint32 `json:"window_id"`
	}

	WindowUnmappedEvent struct {
		WindowID uint32 `json:"window_id"`
	}

	WindowClosedEvent struct {
		WindowID uint32 `json:"window_id"`
	}
)

func (WindowCreatedEvent) isServerEvent()     {}
func (TextCopiedEvent) isServerEvent()        {}
func (PasteTextResponseEvent) isServerEvent() {}
func (WindowMappedEvent) isServerEvent()      {}
func (WindowUnmappedEvent) isServerEvent()    {}
func (WindowClosedEvent) isServerEvent()      {}
