package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"marketplace-backend/models"
)

const (
	productKeyPrefix = "product:"
	productTTL       = 10 * time.Minute
)

// ProductCache is a read-through cache for product lookups backed by Redis.
// Every cache failure degrades to a miss; the store stays authoritative.
type ProductCache struct {
	client *redis.Client
	logger *zap.Logger
}

func NewProductCache(client *redis.Client, logger *zap.Logger) *ProductCache {
	return &ProductCache{client: client, logger: logger}
}

func (c *ProductCache) key(id primitive.ObjectID) string {
	return productKeyPrefix + id.Hex()
}

func (c *ProductCache) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, bool) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("product cache read failed", zap.String("product_id", id.Hex()), zap.Error(err))
		return nil, false
	}
	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		c.logger.Warn("product cache entry corrupt", zap.String("product_id", id.Hex()), zap.Error(err))
		return nil, false
	}
	return &product, true
}

func (c *ProductCache) Set(ctx context.Context, product *models.Product) {
	data, err := json.Marshal(product)
	if err != nil {
		c.logger.Warn("product cache encode failed", zap.String("product_id", product.ID.Hex()), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.key(product.ID), data, productTTL).Err(); err != nil {
		c.logger.Warn("product cache write failed", zap.String("product_id", product.ID.Hex()), zap.Error(err))
	}
}

func (c *ProductCache) Invalidate(ctx context.Context, id primitive.ObjectID) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.logger.Warn("product cache invalidation failed", zap.String("product_id", id.Hex()), zap.Error(err))
	}
}
