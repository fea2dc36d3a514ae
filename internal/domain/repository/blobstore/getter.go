package blobstore

import (
	"context"
	"io"

	"github.com/CSCI4830-UNO/PetChart/internal/domain/entity"
)

// Getter opens stored blobs and probes their metadata without reading the
// full stream.
type Getter interface {
	Open(ctx context.Context, id string) (io.ReadCloser, entity.ObjectInfo, error)
	Stat(ctx context.Context, id string) (entity.ObjectInfo, error)
}
