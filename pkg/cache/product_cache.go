package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ProductCacheTTL is the time-to-live for cached products.
	ProductCacheTTL = 24 * time.Hour

	productCacheKeyPrefix = "product"
)

// CachedProduct is the denormalized product read model stored in Redis.
// Fields are stored as a Redis hash.
type CachedProduct struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	MinLevel  int       `json:"min_level"`
	Price     float64   `json:"price"`
	Cost      float64   `json:"cost"`
	Status    string    `json:"status"`
	Supplier  string    `json:"supplier"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductCache provides structured read/write operations for product cache
// entries. Keys are scoped by the owning user so entries never leak across
// tenants. Key format: "product:{userID}:{productID}"
type ProductCache struct {
	client *RedisClient
}

// NewProductCache creates a ProductCache backed by the given RedisClient.
func NewProductCache(r *RedisClient) *ProductCache {
	return &ProductCache{client: r}
}

// Get retrieves a cached product by user + product ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ProductCache) Get(ctx context.Context, userID, productID uuid.UUID) (*CachedProduct, error) {
	key := c.key(userID, productID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	uid, err := uuid.Parse(vals["user_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse user_id: %w", err)
	}
	quantity, err := strconv.Atoi(vals["quantity"])
	if err != nil {
		return nil, fmt.Errorf("cache parse quantity: %w", err)
	}
	minLevel, err := strconv.Atoi(vals["min_level"])
	if err != nil {
		return nil, fmt.Errorf("cache parse min_level: %w", err)
	}
	price, err := strconv.ParseFloat(vals["price"], 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	cost, err := strconv.ParseFloat(vals["cost"], 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse cost: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, vals["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse updated_at: %w", err)
	}

	return &CachedProduct{
		ID:        id,
		UserID:    uid,
		Name:      vals["name"],
		SKU:       vals["sku"],
		Category:  vals["category"],
		Quantity:  quantity,
		MinLevel:  minLevel,
		Price:     price,
		Cost:      cost,
		Status:    vals["status"],
		Supplier:  vals["supplier"],
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// Set writes a cached product as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ProductCache) Set(ctx context.Context, product *CachedProduct) error {
	key := c.key(product.UserID, product.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", product.ID.String(),
		"user_id", product.UserID.String(),
		"name", product.Name,
		"sku", product.SKU,
		"category", product.Category,
		"quantity", strconv.Itoa(product.Quantity),
		"min_level", strconv.Itoa(product.MinLevel),
		"price", strconv.FormatFloat(product.Price, 'f', -1, 64),
		"cost", strconv.FormatFloat(product.Cost, 'f', -1, 64),
		"status", product.Status,
		"supplier", product.Supplier,
		"created_at", product.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at", product.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ProductCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached product.
func (c *ProductCache) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(userID, productID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "product:{userID}:{productID}"
func (c *ProductCache) key(userID, productID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", productCacheKeyPrefix, userID, productID)
}
