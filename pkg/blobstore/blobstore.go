// Package blobstore provides the string-keyed blob persistence port the
// portal collections are layered on. Every value is an opaque byte slice;
// encoding and collection semantics live with the callers.
package blobstore

import "context"

// Store is the persistence port. Implementations are synchronous and local;
// there is no transaction scope across keys.
type Store interface {
	// Get returns the blob stored under key. The boolean reports whether the
	// key was present at all.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores the blob under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key if present. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
