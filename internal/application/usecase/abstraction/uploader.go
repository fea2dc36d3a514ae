package abstraction

import (
	"context"
	"io"

	"github.com/CSCI4830-UNO/PetChart/internal/domain/entity"
)

type Uploader interface {
	UploadAndSwap(ctx context.Context, body io.Reader, size int64,
		contentType, filename, previousRef string) (entity.SwapResult, error)
}
