package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/CSCI4830-UNO/PetChart/internal/domain/entity"
	"github.com/CSCI4830-UNO/PetChart/internal/domain/refid"
	"github.com/CSCI4830-UNO/PetChart/internal/domain/repository/blobstore"
	"github.com/CSCI4830-UNO/PetChart/pkg/logger"
)

const DefaultMaxUploadBytes = 8 * 1024 * 1024

// Uploader mediates between upload requests, the blob store, and the
// reference a record previously held. It enforces the replace-and-cleanup
// policy: the new blob is durably stored before any delete of the old one
// is attempted, and cleanup trouble never fails a succeeded upload.
type Uploader struct {
	store     blobstore.Uploader
	remover   blobstore.Remover
	publicURL string
	maxBytes  int64
	typeOK    func(string) bool
}

func NewUploader(store blobstore.Uploader, remover blobstore.Remover, publicURL string, maxBytes int64) *Uploader {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}

	return &Uploader{
		store:     store,
		remover:   remover,
		publicURL: strings.TrimRight(publicURL, "/"),
		maxBytes:  maxBytes,
		typeOK: func(contentType string) bool {
			return strings.HasPrefix(contentType, "image/")
		},
	}
}

// SetTypePredicate overrides the allowed-content-type policy.
func (u *Uploader) SetTypePredicate(pred func(string) bool) {
	if pred != nil {
		u.typeOK = pred
	}
}

func (u *Uploader) UploadAndSwap(ctx context.Context, body io.Reader, size int64,
	contentType, filename, previousRef string,
) (entity.SwapResult, error) {
	if body == nil || size == 0 {
		return entity.SwapResult{}, ErrNoContent
	}
	if !u.typeOK(contentType) {
		return entity.SwapResult{}, ErrInvalidType
	}
	if size > u.maxBytes {
		return entity.SwapResult{}, ErrTooLarge
	}

	result, err := u.store.Put(ctx, body, size, contentType, filename, map[string]string{
		"Source": "pet-photo",
	})
	if err != nil {
		return entity.SwapResult{}, err
	}

	// cleanup only ever targets well-formed store ids; opaque previous
	// references are ignored rather than sent to the store as keys
	deletedPrevious := false
	previousID := refid.Normalize(previousRef)
	if refid.Valid(previousID) && previousID != result.ID {
		switch err := u.remover.Remove(ctx, previousID); {
		case err == nil:
			deletedPrevious = true
			logger.Info("deleted previous upload", "id", previousID)
		case errors.Is(err, blobstore.ErrBlobNotFound):
			logger.Info("previous upload already gone", "id", previousID)
		default:
			logger.Warn("could not delete previous upload", "id", previousID, "err", err.Error())
		}
	}

	return entity.SwapResult{
		FileID:          result.ID,
		URL:             fmt.Sprintf("%s/api/images/%s", u.publicURL, result.ID),
		DeletedPrevious: deletedPrevious,
	}, nil
}
