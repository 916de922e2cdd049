package redisclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trackflow/internal/models"

	"github.com/go-redis/redis/v8"
)

const cacheTTL = 5 * time.Minute

// Client is a read-through cache for lead and order lookups. The database
// stays the source of truth; every write path invalidates the entry.
type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// CacheLead stores a lead snapshot with a short TTL
func (c *Client) CacheLead(ctx context.Context, lead *models.Lead) error {
	return c.setJSON(ctx, leadKey(lead.ID), lead)
}

// GetCachedLead retrieves a cached lead; a miss returns (nil, nil)
func (c *Client) GetCachedLead(ctx context.Context, id int64) (*models.Lead, error) {
	var lead models.Lead
	ok, err := c.getJSON(ctx, leadKey(id), &lead)
	if err != nil || !ok {
		return nil, err
	}
	return &lead, nil
}

// InvalidateLead drops the cached lead entry
func (c *Client) InvalidateLead(ctx context.Context, id int64) error {
	return c.rdb.Del(ctx, leadKey(id)).Err()
}

// CacheOrder stores an order snapshot with a short TTL
func (c *Client) CacheOrder(ctx context.Context, order *models.Order) error {
	return c.setJSON(ctx, orderKey(order.ID), order)
}

// GetCachedOrder retrieves a cached order; a miss returns (nil, nil)
func (c *Client) GetCachedOrder(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	ok, err := c.getJSON(ctx, orderKey(id), &order)
	if err != nil || !ok {
		return nil, err
	}
	return &order, nil
}

// InvalidateOrder drops the cached order entry
func (c *Client) InvalidateOrder(ctx context.Context, id int64) error {
	return c.rdb.Del(ctx, orderKey(id)).Err()
}

func (c *Client) setJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return c.rdb.Set(ctx, key, data, cacheTTL).Err()
}

func (c *Client) getJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func leadKey(id int64) string {
	return fmt.Sprintf("lead:%d", id)
}

func orderKey(id int64) string {
	return fmt.Sprintf("order:%d", id)
}
