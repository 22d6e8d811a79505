package memory

import (
	"context"
	"io"
	"testing"

	"skillsphere/pkg/storage"

	"github.com/stretchr/testify/assert"
)

func TestPutAndGet(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	id, err := store.Put(ctx, []byte("hello"), "photo.png", "image/png", storage.ClassImage)
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	rc, contentType, err := store.Get(ctx, id)
	assert.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	assert.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
	assert.Equal(t, "image/png", contentType)
}

func TestPut_UniqueIDs(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	id1, err := store.Put(ctx, []byte("a"), "a.png", "image/png", storage.ClassImage)
	assert.NoError(t, err)
	id2, err := store.Put(ctx, []byte("b"), "b.png", "image/png", storage.ClassImage)
	assert.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, store.Len())
}

func TestPut_RecordsClassLabel(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	id, err := store.Put(ctx, []byte("movie"), "clip.mp4", "video/mp4", storage.ClassVideo)
	assert.NoError(t, err)

	class, ok := store.Class(id)
	assert.True(t, ok)
	assert.Equal(t, storage.ClassVideo, class)
}

func TestGet_NotFound(t *testing.T) {
	store := NewStore()

	_, _, err := store.Get(context.Background(), "missing-id")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDelete(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	id, err := store.Put(ctx, []byte("bye"), "bye.png", "image/png", storage.ClassImage)
	assert.NoError(t, err)

	assert.NoError(t, store.Delete(ctx, id))

	// Second delete reports not found; callers treat this as a logged no-op
	assert.ErrorIs(t, store.Delete(ctx, id), storage.ErrNotFound)
}
