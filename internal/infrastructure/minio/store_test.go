package minio

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/CSCI4830-UNO/PetChart/internal/domain/refid"
	"github.com/CSCI4830-UNO/PetChart/internal/domain/repository/blobstore"
)

const (
	TestAccessKey = "minioadmin"
	TestSecretKey = "minioadmin"
	BucketName    = "temp-bucket-for-tests"
)

func setupMinio(t *testing.T) (testcontainers.Container, *minio.Client) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     TestAccessKey,
			"MINIO_ROOT_PASSWORD": TestSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start container:", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:           credentials.NewStaticV4(TestAccessKey, TestSecretKey, ""),
		Secure:          false,
		TrailingHeaders: true,
	})
	if err != nil {
		t.Fatal("Failed to create minio client:", err)
	}

	err = client.MakeBucket(ctx, BucketName, minio.MakeBucketOptions{})
	if err != nil {
		t.Fatal("Failed to create bucket:", err)
	}

	return container, client
}

func pngBytes(payloadLen int) []byte {
	header := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

	return append(header, bytes.Repeat([]byte{0x01}, payloadLen)...)
}

func TestBlobStoreLifecycle(t *testing.T) {
	container, client := setupMinio(t)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	store := NewBlobStore(client, StoreConfig{
		Timeout: 30000,
		Bucket:  BucketName,
	})

	ctx := context.Background()
	content := pngBytes(2 * 1024 * 1024)

	result, err := store.Put(ctx, bytes.NewReader(content), int64(len(content)),
		"image/png", "rex.png", map[string]string{"Source": "pet-photo"})
	require.NoError(t, err)
	assert.True(t, refid.Valid(result.ID), "store must generate a well-formed id")
	assert.Equal(t, int64(len(content)), result.Size)
	assert.Equal(t, "image/png", result.Type)

	info, err := store.Stat(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), info.Size)
	assert.Equal(t, "image/png", info.ContentType)
	assert.Equal(t, "rex.png", info.Filename)

	body, openInfo, err := store.Open(ctx, result.ID)
	require.NoError(t, err)
	readBack, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, body.Close())
	assert.Equal(t, content, readBack)
	assert.Equal(t, info.Size, openInfo.Size)

	require.NoError(t, store.Remove(ctx, result.ID))

	_, err = store.Stat(ctx, result.ID)
	require.ErrorIs(t, err, blobstore.ErrBlobNotFound)

	// a second delete must observe the id is gone, not report success,
	// even though the store itself answers 204 for missing keys
	require.ErrorIs(t, store.Remove(ctx, result.ID), blobstore.ErrBlobNotFound)
}

func TestBlobStoreRemove_MissingID(t *testing.T) {
	container, client := setupMinio(t)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	store := NewBlobStore(client, StoreConfig{
		Timeout: 30000,
		Bucket:  BucketName,
	})

	err := store.Remove(context.Background(), "0b9f255f-2e24-4bcf-9d39-f6ad26cb585f")
	require.ErrorIs(t, err, blobstore.ErrBlobNotFound)
}

func TestBlobStorePut_TypeMismatch(t *testing.T) {
	container, client := setupMinio(t)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	store := NewBlobStore(client, StoreConfig{
		Timeout: 30000,
		Bucket:  BucketName,
	})

	content := []byte("plain text pretending to be a picture")
	_, err := store.Put(context.Background(), bytes.NewReader(content), int64(len(content)),
		"image/png", "fake.png", nil)

	require.ErrorIs(t, err, blobstore.ErrTypeMismatch)
}

func TestBlobStorePut_EmptyBody(t *testing.T) {
	container, client := setupMinio(t)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	store := NewBlobStore(client, StoreConfig{
		Timeout: 30000,
		Bucket:  BucketName,
	})

	_, err := store.Put(context.Background(), bytes.NewReader(nil), 0, "image/png", "empty.png", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty file")
}

func TestBlobStoreOpen_NotFound(t *testing.T) {
	container, client := setupMinio(t)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	store := NewBlobStore(client, StoreConfig{
		Timeout: 30000,
		Bucket:  BucketName,
	})

	_, _, err := store.Open(context.Background(), "0b9f255f-2e24-4bcf-9d39-f6ad26cb585f")
	require.ErrorIs(t, err, blobstore.ErrBlobNotFound)
}
