package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDeliverPrimaryPath(t *testing.T) {
	document := BuildLiquidityAlert(testDate)

	saves := 0
	err := Deliver(document, "alerta.pdf", func(name string, data []byte) error {
		saves++
		if name != "alerta.pdf" {
			t.Errorf("save called with %q, want alerta.pdf", name)
		}
		if len(data) == 0 {
			t.Error("save called with an empty document")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Deliver() failed: %v", err)
	}
	if saves != 1 {
		t.Errorf("save invoked %d times, want 1", saves)
	}
}

func TestDeliverFallsBackToDirectWrite(t *testing.T) {
	document := BuildLiquidityAlert(testDate)
	target := filepath.Join(t.TempDir(), "alerta.pdf")

	err := Deliver(document, target, func(string, []byte) error {
		return errors.New("host save rejected")
	})
	if err != nil {
		t.Fatalf("Deliver() failed despite the fallback path: %v", err)
	}
	info, statErr := os.Stat(target)
	if statErr != nil {
		t.Fatalf("fallback did not write the file: %v", statErr)
	}
	if info.Size() == 0 {
		t.Error("fallback wrote an empty file")
	}
}

func TestDeliverReportsDoubleFailure(t *testing.T) {
	document := BuildLiquidityAlert(testDate)
	// An unwritable directory fails the direct-write fallback too.
	target := filepath.Join(t.TempDir(), "missing", "nested", "alerta.pdf")

	err := Deliver(document, target, func(string, []byte) error {
		return errors.New("host save rejected")
	})
	if err == nil {
		t.Fatal("Deliver() succeeded, want an error when both paths fail")
	}
}

func TestDeliverDefaultSaveWritesFile(t *testing.T) {
	document := BuildLiquidityAlert(testDate)
	target := filepath.Join(t.TempDir(), "alerta.pdf")

	if err := Deliver(document, target, nil); err != nil {
		t.Fatalf("Deliver() with the default save failed: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("default save did not write the file: %v", err)
	}
}
