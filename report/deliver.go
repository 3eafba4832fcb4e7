package report

import (
	"fmt"
	"os"
)

// SaveFunc is the host's save-file capability: it receives the finished
// binary document and persists it under the given name.
type SaveFunc func(filename string, data []byte) error

// Deliver hands the document to the save capability. The primary path
// serializes to a blob first; only if that path fails does delivery fall
// back to the engine's own direct write. At most one save attempt is
// user-visible per call, and an error surfaces only when both paths fail.
func Deliver(document *Document, filename string, save SaveFunc) error {
	if save == nil {
		save = func(name string, data []byte) error {
			return os.WriteFile(name, data, 0o644)
		}
	}

	data, err := document.Bytes()
	if err == nil {
		if err = save(filename, data); err == nil {
			return nil
		}
	}

	if ferr := document.pdf.OutputFileAndClose(filename); ferr != nil {
		return fmt.Errorf("could not deliver %s: %w (direct write also failed: %v)", filename, err, ferr)
	}
	return nil
}
