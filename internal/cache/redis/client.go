// Package redis caches assembled responses and chunk embeddings. The cache
// is strictly optional: when redis is unreachable the assistant runs without
// it.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/placement-bot/backend/pkg/logger"
)

type Client struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClient(host string, port int, password string, db int, ttl time.Duration) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if ttl <= 0 {
		ttl = time.Hour
	}

	logger.Info("Redis cache initialized", zap.String("addr", fmt.Sprintf("%s:%d", host, port)))
	return &Client{client: client, ttl: ttl}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// SetResponse caches the serialized response under the normalized-question
// hash. Cache errors are logged and swallowed; caching is best effort.
func (c *Client) SetResponse(ctx context.Context, key string, response interface{}) {
	data, err := json.Marshal(response)
	if err != nil {
		logger.Warn("Failed to marshal response for cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, "response:"+key, data, c.ttl).Err(); err != nil {
		logger.Warn("Failed to cache response", zap.Error(err))
	}
}

func (c *Client) GetResponse(ctx context.Context, key string, response interface{}) bool {
	data, err := c.client.Get(ctx, "response:"+key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		logger.Warn("Response cache lookup failed", zap.Error(err))
		return false
	}
	if err := json.Unmarshal(data, response); err != nil {
		logger.Warn("Failed to unmarshal cached response", zap.Error(err))
		return false
	}
	return true
}

func (c *Client) SetEmbedding(ctx context.Context, key string, vector []float32) {
	data, err := json.Marshal(vector)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, "embedding:"+key, data, 0).Err(); err != nil {
		logger.Warn("Failed to cache embedding", zap.Error(err))
	}
}

func (c *Client) GetEmbedding(ctx context.Context, key string) ([]float32, bool) {
	data, err := c.client.Get(ctx, "embedding:"+key).Bytes()
	if err != nil {
		return nil, false
	}
	var vector []float32
	if err := json.Unmarshal(data, &vector); err != nil {
		return nil, false
	}
	return vector, true
}

// InvalidateResponses drops every cached response; called when the knowledge
// base reloads so stale answers cannot be served.
func (c *Client) InvalidateResponses(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, "response:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn("Failed to delete cache key", zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		logger.Warn("Response cache invalidation failed", zap.Error(err))
		return
	}
	logger.Info("Response cache invalidated")
}
