package wrappers

import (
	"errors"
	"io"
)

var ErrClosed = errors.New("closed")

// ReaderWrapper makes any reader closable without closing the wrapped
// one. Used to hand stdin to a repl that closes its input on shutdown.
type ReaderWrapper struct {
	isClosed bool
	wrapped  io.Reader
}

func NewReaderWrapper(wraps io.Reader) *ReaderWrapper {
	return &ReaderWrapper{wrapped: wraps}
}

// Close only marks the wrapper; the wrapped reader stays open.
func (r *ReaderWrapper) Close() error {
	r.isClosed = true
	return nil
}

func (r *ReaderWrapper) Read(p []byte) (n int, err error) {
	if r.isClosed {
		return 0, ErrClosed
	}
	return r.wrapped.Read(p)
}
