package memory

import (
	"bytes"
	"context"
	"io"
	"sync"

	"skillsphere/pkg/storage"

	"github.com/google/uuid"
)

type object struct {
	data        []byte
	contentType string
	class       storage.MediaClass
	name        string
}

// Store is an in-memory ObjectStore used by tests and local development.
type Store struct {
	mu      sync.RWMutex
	objects map[string]object
}

var _ storage.ObjectStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{objects: make(map[string]object)}
}

func (s *Store) Put(ctx context.Context, data []byte, originalName, contentType string, class storage.MediaClass) (string, error) {
	id := uuid.New().String()

	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[id] = object{data: buf, contentType: contentType, class: class, name: originalName}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (io.ReadCloser, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[id]
	if !ok {
		return nil, "", storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(obj.data)), obj.contentType, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.objects, id)
	return nil
}

// Class reports the media class label recorded for a stored blob. Tests use
// it to verify store-side tagging.
func (s *Store) Class(id string) (storage.MediaClass, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[id]
	return obj.class, ok
}

// Len reports the number of stored blobs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
