package blobstore

import (
	"context"
	"io"

	"github.com/CSCI4830-UNO/PetChart/internal/domain/entity"
)

type Uploader interface {
	Put(ctx context.Context, body io.Reader, size int64, declaredType, filename string,
		metadata map[string]string,
	) (entity.BlobPutResult, error)
}
