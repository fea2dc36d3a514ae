package usecase

import (
	"context"
	"io"

	"github.com/CSCI4830-UNO/PetChart/internal/domain/entity"
	"github.com/CSCI4830-UNO/PetChart/internal/domain/refid"
	"github.com/CSCI4830-UNO/PetChart/internal/domain/repository/blobstore"
)

// Streamer serves stored blobs on the download path.
type Streamer struct {
	store blobstore.Getter
}

func NewStreamer(store blobstore.Getter) *Streamer {
	return &Streamer{store: store}
}

// Stream validates the id, probes existence, then opens the stream.
func (s *Streamer) Stream(ctx context.Context, id string) (io.ReadCloser, entity.ObjectInfo, error) {
	info, err := s.Probe(ctx, id)
	if err != nil {
		return nil, entity.ObjectInfo{}, err
	}

	body, _, err := s.store.Open(ctx, id)
	if err != nil {
		return nil, entity.ObjectInfo{}, err
	}

	return body, info, nil
}

// Probe checks the id and the blob's existence without opening the stream.
func (s *Streamer) Probe(ctx context.Context, id string) (entity.ObjectInfo, error) {
	if !refid.Valid(id) {
		return entity.ObjectInfo{}, ErrInvalidID
	}

	return s.store.Stat(ctx, id)
}
