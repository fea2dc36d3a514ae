package abstraction

import (
	"context"
	"io"

	"github.com/CSCI4830-UNO/PetChart/internal/domain/entity"
)

// Streamer serves stored blobs on the download path.
type Streamer interface {
	Stream(ctx context.Context, id string) (io.ReadCloser, entity.ObjectInfo, error)
	Probe(ctx context.Context, id string) (entity.ObjectInfo, error)
}
