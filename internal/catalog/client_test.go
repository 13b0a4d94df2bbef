package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() map[string]interface{} {
	return map[string]interface{}{
		"products": []model.Product{
			{ID: 1, Title: "Essence Mascara Lash Princess", Price: 9.99, Category: "beauty"},
			{ID: 7, Title: "Chanel Coco Noir Eau De", Price: 129.99, Category: "fragrances"},
		},
		"total": 2,
		"skip":  0,
		"limit": 30,
	}
}

func newCatalogServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.RequestURI())
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/products/category-list":
			_ = json.NewEncoder(w).Encode([]string{"beauty", "fragrances"})
		case r.URL.Path == "/products/1":
			_ = json.NewEncoder(w).Encode(model.Product{ID: 1, Title: "Essence Mascara Lash Princess", Price: 9.99})
		case r.URL.Path == "/products/404":
			w.WriteHeader(http.StatusNotFound)
		default:
			_ = json.NewEncoder(w).Encode(catalogFixture())
		}
	}))
	return srv, &paths
}

// TestClient_List covers pagination parameters and page decoding.
func TestClient_List(t *testing.T) {
	srv, paths := newCatalogServer(t)
	defer srv.Close()

	c := NewClient(srv.URL)
	page, err := c.List(context.Background(), 10, 20)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Products, 2)
	assert.Equal(t, "Essence Mascara Lash Princess", page.Products[0].Title)
	assert.Equal(t, []string{"/products?limit=10&skip=20"}, *paths)
}

// TestClient_ListDefaults omits pagination parameters when unset.
func TestClient_ListDefaults(t *testing.T) {
	srv, paths := newCatalogServer(t)
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.List(context.Background(), 0, 0)

	require.NoError(t, err)
	assert.Equal(t, []string{"/products"}, *paths)
}

// TestClient_Get decodes a single product.
func TestClient_Get(t *testing.T) {
	srv, _ := newCatalogServer(t)
	defer srv.Close()

	c := NewClient(srv.URL)
	product, err := c.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
	assert.Equal(t, 9.99, product.Price)
}

// TestClient_GetNotFound surfaces the upstream status.
func TestClient_GetNotFound(t *testing.T) {
	srv, _ := newCatalogServer(t)
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Get(context.Background(), 404)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

// TestClient_Search escapes the query string.
func TestClient_Search(t *testing.T) {
	srv, paths := newCatalogServer(t)
	defer srv.Close()

	c := NewClient(srv.URL)
	page, err := c.Search(context.Background(), "coco noir")

	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, []string{"/products/search?q=coco+noir"}, *paths)
}

// TestClient_Categories decodes the slug list.
func TestClient_Categories(t *testing.T) {
	srv, _ := newCatalogServer(t)
	defer srv.Close()

	c := NewClient(srv.URL)
	categories, err := c.Categories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"beauty", "fragrances"}, categories)
}

// TestClient_ByCategory hits the category route.
func TestClient_ByCategory(t *testing.T) {
	srv, paths := newCatalogServer(t)
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ByCategory(context.Background(), "beauty")

	require.NoError(t, err)
	assert.Equal(t, []string{"/products/category/beauty"}, *paths)
}

// TestClient_DefaultBaseURL verifies the zero-config constructor.
func TestClient_DefaultBaseURL(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, DefaultBaseURL, c.baseURL)
}

// fakeCatalog counts upstream calls for the caching decorator tests.
type fakeCatalog struct {
	gets  int
	lists int
}

func (f *fakeCatalog) List(ctx context.Context, limit, skip int) (*model.ProductsPage, error) {
	f.lists++
	return &model.ProductsPage{
		Products: []model.Product{{ID: 1, Title: "Primed", Price: 9.99}},
		Total:    1,
	}, nil
}

func (f *fakeCatalog) Get(ctx context.Context, id int64) (*model.Product, error) {
	f.gets++
	return &model.Product{ID: id, Title: "Fetched", Price: 9.99}, nil
}

func (f *fakeCatalog) Search(ctx context.Context, query string) (*model.ProductsPage, error) {
	return &model.ProductsPage{}, nil
}

func (f *fakeCatalog) Categories(ctx context.Context) ([]string, error) {
	return []string{"beauty"}, nil
}

func (f *fakeCatalog) ByCategory(ctx context.Context, category string) (*model.ProductsPage, error) {
	return &model.ProductsPage{}, nil
}

// TestCachedCatalog_GetCaches verifies repeated lookups hit upstream once.
func TestCachedCatalog_GetCaches(t *testing.T) {
	upstream := &fakeCatalog{}
	c := NewCachedCatalog(upstream, 16, time.Minute)
	defer c.Close()

	ctx := context.Background()
	first, err := c.Get(ctx, 5)
	require.NoError(t, err)
	second, err := c.Get(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, upstream.gets)
}

// TestCachedCatalog_ListPrimes verifies list responses fill the cache.
func TestCachedCatalog_ListPrimes(t *testing.T) {
	upstream := &fakeCatalog{}
	c := NewCachedCatalog(upstream, 16, time.Minute)
	defer c.Close()

	ctx := context.Background()
	_, err := c.List(ctx, 30, 0)
	require.NoError(t, err)

	product, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Primed", product.Title)
	assert.Equal(t, 0, upstream.gets, "primed product should not hit upstream")
	assert.Equal(t, int64(1), c.Stats().Hits)
}
