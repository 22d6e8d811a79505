package mirror

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Writer duplicates uploaded blobs onto the local filesystem, keyed by the
// object store id. The mirror is a best-effort copy: it is never the source
// of truth and a failed write does not roll back the store write.
type Writer struct {
	baseDir string
}

func NewWriter(baseDir string) (*Writer, error) {
	if baseDir == "" {
		return nil, errors.New("base directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create mirror directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) Write(id string, data []byte) error {
	// Directory creation is idempotent; safe to repeat on every write.
	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return fmt.Errorf("failed to create mirror directory: %w", err)
	}
	if err := os.WriteFile(w.Path(id), data, 0o644); err != nil {
		return fmt.Errorf("failed to write mirror file: %w", err)
	}
	return nil
}

// Delete removes the mirrored file. A missing file is not an error.
func (w *Writer) Delete(id string) error {
	if err := os.Remove(w.Path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete mirror file: %w", err)
	}
	return nil
}

// Path returns the filesystem location for an id. Base is applied so an id
// can never escape the mirror directory.
func (w *Writer) Path(id string) string {
	return filepath.Join(w.baseDir, filepath.Base(id))
}
