// Package catalog provides the product catalog client backed by the public
// dummyjson product API, with an optional in-process product cache.
package catalog

import (
	"context"

	"github.com/guttosm/cart-service/internal/domain/model"
)

// Catalog is the product lookup boundary used by the storefront handlers.
type Catalog interface {
	// List returns one page of products. limit <= 0 uses the API default.
	List(ctx context.Context, limit, skip int) (*model.ProductsPage, error)
	// Get returns a single product by id.
	Get(ctx context.Context, id int64) (*model.Product, error)
	// Search returns products matching the query string.
	Search(ctx context.Context, query string) (*model.ProductsPage, error)
	// Categories returns the list of category slugs.
	Categories(ctx context.Context) ([]string, error)
	// ByCategory returns the products in one category.
	ByCategory(ctx context.Context, category string) (*model.ProductsPage, error)
}
