package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore answers whether a session issued by the identity provider is
// still live. Sessions are written by the auth frontend; this service only
// reads them.
type SessionStore struct {
	client *Client
}

func NewSessionStore(client *Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.client.cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	err := s.client.redis.Get(ctx, s.client.cfg.KeyPrefix+sessionID).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
