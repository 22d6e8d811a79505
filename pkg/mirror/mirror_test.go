package mirror

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWriter_CreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "media")

	w, err := NewWriter(dir)
	assert.NoError(t, err)
	assert.NotNil(t, w)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewWriter_EmptyDir(t *testing.T) {
	_, err := NewWriter("")
	assert.Error(t, err)
}

func TestWriteAndDelete(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	assert.NoError(t, err)

	err = w.Write("media-1", []byte("payload"))
	assert.NoError(t, err)

	data, err := os.ReadFile(w.Path("media-1"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	assert.NoError(t, w.Delete("media-1"))
	_, err = os.Stat(w.Path("media-1"))
	assert.True(t, os.IsNotExist(err))
}

func TestDelete_MissingFileIsNoop(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	assert.NoError(t, err)

	// Deleting twice must stay silent: the second call is a no-op
	assert.NoError(t, w.Delete("never-written"))
	assert.NoError(t, w.Delete("never-written"))
}

func TestPath_StripsDirectoryComponents(t *testing.T) {
	base := t.TempDir()
	w, err := NewWriter(base)
	assert.NoError(t, err)

	p := w.Path("../../etc/passwd")
	assert.Equal(t, filepath.Join(base, "passwd"), p)
}
