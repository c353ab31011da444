package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eventgrid/eventgrid/config"
	"github.com/eventgrid/eventgrid/internal/domain"
)

// CatalogCache keeps the marketplace's hot read paths (category counts,
// featured vendors) out of Postgres. A miss is (nil, nil); callers fall
// through to the database.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(cfg config.RedisConfig, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

const (
	categoriesKey = "cache:catalog:categories"
	featuredKey   = "cache:catalog:featured"
)

func (c *CatalogCache) GetCategories(ctx context.Context) ([]domain.CategoryCount, error) {
	data, err := c.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var counts []domain.CategoryCount
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *CatalogCache) SetCategories(ctx context.Context, counts []domain.CategoryCount) error {
	payload, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, categoriesKey, payload, c.ttl).Err()
}

func (c *CatalogCache) GetFeatured(ctx context.Context) ([]domain.Vendor, error) {
	data, err := c.client.Get(ctx, featuredKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var vendors []domain.Vendor
	if err := json.Unmarshal(data, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (c *CatalogCache) SetFeatured(ctx context.Context, vendors []domain.Vendor) error {
	payload, err := json.Marshal(vendors)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, featuredKey, payload, c.ttl).Err()
}
