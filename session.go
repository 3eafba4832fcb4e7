package nexus

import (
	"errors"
	"sync/atomic"
)

// ErrBusy is returned when a report generation is already in flight.
var ErrBusy = errors.New("a report generation is already in progress")

// Session guards the report pipeline against re-entrant invocations. The
// dashboard's generate button can be pressed again while a narrative call is
// still pending; the caller holds one Session and starts it before running
// the pipeline, so the second press is rejected deterministically instead of
// racing the first.
type Session struct {
	running atomic.Bool
}

// Start claims the session. It fails with ErrBusy if a previous Start has
// not been released yet.
func (s *Session) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrBusy
	}
	return nil
}

// Finish releases the session. Safe to call on a session that is not
// running.
func (s *Session) Finish() {
	s.running.Store(false)
}

// Busy reports whether a generation is in flight.
func (s *Session) Busy() bool {
	return s.running.Load()
}
