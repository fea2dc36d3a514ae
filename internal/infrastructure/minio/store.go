package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/CSCI4830-UNO/PetChart/internal/domain/entity"
	"github.com/CSCI4830-UNO/PetChart/internal/domain/repository/blobstore"
)

const (
	sniffLen    = 3072
	filenameKey = "Filename"
)

// BlobStore stores immutable binary objects under store-generated UUID keys.
type BlobStore struct {
	minioClient *minio.Client
	cfg         StoreConfig
}

func NewBlobStore(minioClient *minio.Client, cfg StoreConfig) *BlobStore {
	return &BlobStore{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Put writes the stream under a fresh identifier and returns it. The leading
// bytes are sniffed; a mismatch with the declared media type fails before
// anything is written.
func (s *BlobStore) Put(ctx context.Context, body io.Reader, size int64, declaredType, filename string,
	metadata map[string]string,
) (entity.BlobPutResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return entity.BlobPutResult{}, fmt.Errorf("read error: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return entity.BlobPutResult{}, errors.New("read error: empty file")
	}

	detected := mimetype.Detect(head)
	if declaredType != "" && !detected.Is(declaredType) {
		return entity.BlobPutResult{}, fmt.Errorf("%w: detected %s, declared %s",
			blobstore.ErrTypeMismatch, detected.String(), declaredType)
	}

	userMeta := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		userMeta[k] = v
	}
	if filename != "" {
		userMeta[filenameKey] = filename
	}

	id := uuid.New().String()
	info, err := s.minioClient.PutObject(ctx, s.cfg.Bucket, id,
		io.MultiReader(bytes.NewReader(head), body), size,
		minio.PutObjectOptions{
			ContentType:  detected.String(),
			UserMetadata: userMeta,
		})
	if err != nil {
		return entity.BlobPutResult{}, fmt.Errorf("blob upload failed: %w", err)
	}

	return entity.BlobPutResult{
		ID:       id,
		Size:     info.Size,
		Type:     detected.String(),
		Location: fmt.Sprintf("%s/%s/%s", s.minioClient.EndpointURL(), s.cfg.Bucket, id),
	}, nil
}

// Open returns a readable stream for the blob along with its metadata.
func (s *BlobStore) Open(ctx context.Context, id string) (io.ReadCloser, entity.ObjectInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	obj, err := s.minioClient.GetObject(ctx, s.cfg.Bucket, id, minio.GetObjectOptions{})
	if err != nil {
		return nil, entity.ObjectInfo{}, mapStoreError(err)
	}

	st, err := obj.Stat()
	if err != nil {
		_ = obj.Close()

		return nil, entity.ObjectInfo{}, mapStoreError(err)
	}

	return obj, objectInfo(id, st), nil
}

// Stat probes a blob's existence and metadata without opening its stream.
func (s *BlobStore) Stat(ctx context.Context, id string) (entity.ObjectInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	st, err := s.minioClient.StatObject(ctx, s.cfg.Bucket, id, minio.StatObjectOptions{})
	if err != nil {
		return entity.ObjectInfo{}, mapStoreError(err)
	}

	return objectInfo(id, st), nil
}

// Remove deletes the blob. The store answers deletes of missing keys with
// success, so existence is probed first; an id that is already gone
// surfaces as ErrBlobNotFound for callers to treat as a no-op. Transport
// faults are returned as-is.
func (s *BlobStore) Remove(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	if _, err := s.minioClient.StatObject(ctx, s.cfg.Bucket, id, minio.StatObjectOptions{}); err != nil {
		return mapStoreError(err)
	}

	err := s.minioClient.RemoveObject(ctx, s.cfg.Bucket, id, minio.RemoveObjectOptions{})
	if err != nil {
		return mapStoreError(err)
	}

	return nil
}

func objectInfo(id string, st minio.ObjectInfo) entity.ObjectInfo {
	return entity.ObjectInfo{
		ID:          id,
		Size:        st.Size,
		ContentType: st.ContentType,
		Filename:    st.UserMetadata[filenameKey],
		UploadTime:  st.LastModified,
		Metadata:    st.UserMetadata,
	}
}

func mapStoreError(err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == 404 {
		return blobstore.ErrBlobNotFound
	}

	return err
}
