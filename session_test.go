package nexus

import (
	"errors"
	"testing"
)

func TestSessionRejectsReentry(t *testing.T) {
	var s Session

	if err := s.Start(); err != nil {
		t.Fatalf("first Start() failed: %v", err)
	}
	if err := s.Start(); !errors.Is(err, ErrBusy) {
		t.Errorf("second Start() = %v, want ErrBusy", err)
	}
	if !s.Busy() {
		t.Error("Busy() = false while running")
	}

	s.Finish()
	if err := s.Start(); err != nil {
		t.Errorf("Start() after Finish() failed: %v", err)
	}
}

func TestSessionFinishIdempotent(t *testing.T) {
	var s Session
	s.Finish()
	s.Finish()
	if err := s.Start(); err != nil {
		t.Errorf("Start() after redundant Finish() failed: %v", err)
	}
}
