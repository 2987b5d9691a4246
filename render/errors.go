// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package render

import "fmt"

// ErrorKind classifies renderer failures.
//
// The taxonomy is deliberately fine-grained: callers need to tell
// permanent setup failures (context, shader) from per-resource failures
// (texture upload, buffer import) from per-frame failures (presentation).
type ErrorKind int

const (
	// Graphics context (e.g. EGL) could not be created
	KindContextCreation = ErrorKind(iota)
	// A shader failed to compile
	KindShaderCompilation
	// Uploading pixel data to a GPU texture failed
	KindTextureUpload
	// Importing a buffer (e.g. a dmabuf) failed
	KindBufferImport
	// GPU resource allocation failed
	KindResourceAllocation
	// An operation was attempted in the wrong renderer state, such as
	// rendering elements outside a begun frame
	KindInvalidOperation
	// Presenting the finished frame failed
	KindPresentation
	// Catch-all for backend errors that fit nowhere else
	KindBackendSpecific
)

func (k ErrorKind) String() string {
	switch k {
	case KindContextCreation:
		return "context creation failed"
	case KindShaderCompilation:
		return "shader compilation failed"
	case KindTextureUpload:
		return "texture upload failed"
	case KindBufferImport:
		return "buffer import failed"
	case KindResourceAllocation:
		return "resource allocation failed"
	case KindInvalidOperation:
		return "invalid operation"
	case KindPresentation:
		return "presentation failed"
	case KindBackendSpecific:
		return "backend-specific error"
	default:
		return "unknown renderer error"
	}
}

// Error is the structured error every renderer operation reports.
// The core never retries on these; recovery policy lives with the backend
// or above.
type Error struct {
	Kind ErrorKind
	// Which shader failed, only set for KindShaderCompilation
	ShaderKind string
	Details    string
	// Optional underlying cause, mostly for KindBackendSpecific
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Details)
	if e.Kind == KindShaderCompilation && e.ShaderKind != "" {
		msg = fmt.Sprintf("shader (%s) compilation failed: %s", e.ShaderKind, e.Details)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s (source: %s)", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match against a bare &Error{Kind: ...} probe.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

func NewError(kind ErrorKind, details string) *Error {
	return &Error{Kind: kind, Details: details}
}

func NewShaderError(shaderKind, details string) *Error {
	return &Error{Kind: KindShaderCompilation, ShaderKind: shaderKind, Details: details}
}

func NewBackendError(details string, cause error) *Error {
	return &Error{Kind: KindBackendSpecific, Details: details, Err: cause}
}
