package content

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 5 * time.Minute

// Cache provides Redis-backed caching of whole collections to offload the DB.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

var _ ListCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl, prefix: "content"}
}

func (c *Cache) key(collection string) string {
	return c.prefix + ":" + collection
}

// Get decodes the cached collection into dst. A miss reports false, nil.
func (c *Cache) Get(ctx context.Context, collection string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, c.key(collection)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) Set(ctx context.Context, collection string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(collection), data, c.ttl).Err()
}

func (c *Cache) Invalidate(ctx context.Context, collections ...string) error {
	if len(collections) == 0 {
		return nil
	}
	keys := make([]string, len(collections))
	for i, col := range collections {
		keys[i] = c.key(col)
	}
	return c.client.Del(ctx, keys...).Err()
}
