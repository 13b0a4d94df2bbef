package catalog

import (
	"context"
	"time"

	"github.com/guttosm/cart-service/internal/domain/model"
)

// Default cache dimensions for the product cache.
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

// CachedCatalog decorates a Catalog with an in-process product cache. Single
// product lookups are served from the cache; list and search responses prime
// it, so a product detail lookup after browsing a page is usually free.
type CachedCatalog struct {
	next  Catalog
	cache *productCache
}

// NewCachedCatalog wraps the given catalog. size <= 0 and ttl <= 0 fall back
// to the defaults.
func NewCachedCatalog(next Catalog, size int, ttl time.Duration) *CachedCatalog {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedCatalog{
		next:  next,
		cache: newProductCache(size, ttl),
	}
}

// Get serves a product from the cache, falling back to the upstream catalog.
func (c *CachedCatalog) Get(ctx context.Context, id int64) (*model.Product, error) {
	if product, ok := c.cache.Get(id); ok {
		return &product, nil
	}

	product, err := c.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.Set(id, *product)
	return product, nil
}

// List returns one page of products and primes the cache with them.
func (c *CachedCatalog) List(ctx context.Context, limit, skip int) (*model.ProductsPage, error) {
	page, err := c.next.List(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	c.prime(page.Products)
	return page, nil
}

// Search returns matching products and primes the cache with them.
func (c *CachedCatalog) Search(ctx context.Context, query string) (*model.ProductsPage, error) {
	page, err := c.next.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	c.prime(page.Products)
	return page, nil
}

// Categories passes through to the upstream catalog.
func (c *CachedCatalog) Categories(ctx context.Context) ([]string, error) {
	return c.next.Categories(ctx)
}

// ByCategory returns the products in one category and primes the cache.
func (c *CachedCatalog) ByCategory(ctx context.Context, category string) (*model.ProductsPage, error) {
	page, err := c.next.ByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	c.prime(page.Products)
	return page, nil
}

// Stats returns the product cache counters for health reporting.
func (c *CachedCatalog) Stats() CacheStats {
	return c.cache.Stats()
}

// Close stops the cache cleanup goroutine.
func (c *CachedCatalog) Close() {
	c.cache.Stop()
}

func (c *CachedCatalog) prime(products []model.Product) {
	for _, p := range products {
		c.cache.Set(p.ID, p)
	}
}
