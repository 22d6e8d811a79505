package storage

import (
	"context"
	"errors"
	"io"
)

// MediaClass labels a stored blob as image or video. The label is kept as
// store-side metadata alongside the bytes.
type MediaClass string

const (
	ClassImage MediaClass = "image"
	ClassVideo MediaClass = "video"
)

// ErrNotFound is returned by Get and Delete when no blob exists for the id.
var ErrNotFound = errors.New("object not found")

// ObjectStore persists binary blobs under opaque, store-assigned ids.
// Put never overwrites an existing id: every call generates a fresh one.
type ObjectStore interface {
	Put(ctx context.Context, data []byte, originalName, contentType string, class MediaClass) (string, error)
	Get(ctx context.Context, id string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, id string) error
}
