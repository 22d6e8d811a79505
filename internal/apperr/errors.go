// Package apperr defines the sentinel errors shared by usecases and HTTP
// handlers. Wrap them with fmt.Errorf("...: %w", ...) and branch with
// errors.Is at the transport boundary.
package apperr

import "errors"

var (
	// ErrInvalidRequest covers client mistakes: missing content and media,
	// unsupported file types, size limits, duplicate group names.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound marks a missing post, group, plan or user.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks a mutation attempted by a non-owner, non-admin caller.
	ErrForbidden = errors.New("forbidden")

	// ErrStorage marks an object store or mirror failure on the create/update
	// path. Cleanup-path storage failures are logged, never returned.
	ErrStorage = errors.New("storage failure")
)
