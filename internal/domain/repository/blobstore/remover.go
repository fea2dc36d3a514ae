package blobstore

import "context"

// Remover deletes blobs by id. Removing an id that is already gone returns
// ErrBlobNotFound so callers can tell a no-op from a transport-level fault;
// they are expected to treat it as success.
type Remover interface {
	Remove(ctx context.Context, id string) error
}
