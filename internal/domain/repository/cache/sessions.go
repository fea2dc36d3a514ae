package cache

import (
	"context"
	"errors"
)

var ErrSessionNotFound = errors.New("session not found")

// Sessions checks whether a session issued by the identity provider is
// still live.
type Sessions interface {
	Exists(ctx context.Context, sessionID string) (bool, error)
}
