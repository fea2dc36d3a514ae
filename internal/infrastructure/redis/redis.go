package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CSCI4830-UNO/PetChart/pkg/logger"
)

type Client struct {
	redis *redis.Client
	cfg   Config
}

func NewClient(cfg Config) (*Client, error) {
	logger.Info("connecting to redis")

	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Client{
		redis: rdb,
		cfg:   cfg,
	}, nil
}

func (c *Client) Close() error {
	return c.redis.Close()
}
