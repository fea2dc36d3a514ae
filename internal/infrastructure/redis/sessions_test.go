package redis

import (
	"context"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	return "redis://" + endpoint
}

func TestSessionStoreExists(t *testing.T) {
	uri := setupRedis(t)
	ctx := context.Background()

	client, err := NewClient(Config{
		URI:          uri,
		KeyPrefix:    "session:",
		QueryTimeout: 3000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})

	opts, err := goredis.ParseURL(uri)
	require.NoError(t, err)
	raw := goredis.NewClient(opts)
	require.NoError(t, raw.Set(ctx, "session:sess-live", "alice@example.com", 0).Err())

	sessions := NewSessionStore(client)

	live, err := sessions.Exists(ctx, "sess-live")
	require.NoError(t, err)
	assert.True(t, live)

	live, err = sessions.Exists(ctx, "sess-unknown")
	require.NoError(t, err)
	assert.False(t, live)

	// logout deletes the key and revokes the session
	require.NoError(t, raw.Del(ctx, "session:sess-live").Err())

	live, err = sessions.Exists(ctx, "sess-live")
	require.NoError(t, err)
	assert.False(t, live)
}
