package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/cart-service/internal/domain/model"
)

// DefaultBaseURL is the public dummyjson product API.
const DefaultBaseURL = "https://dummyjson.com"

const defaultTimeout = 10 * time.Second

// Client is the HTTP implementation of Catalog.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a catalog client. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns one page of products.
func (c *Client) List(ctx context.Context, limit, skip int) (*model.ProductsPage, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if skip > 0 {
		q.Set("skip", strconv.Itoa(skip))
	}

	path := "/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var page model.ProductsPage
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns a single product by id.
func (c *Client) Get(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	if err := c.get(ctx, "/products/"+strconv.FormatInt(id, 10), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Search returns products matching the query string.
func (c *Client) Search(ctx context.Context, query string) (*model.ProductsPage, error) {
	var page model.ProductsPage
	if err := c.get(ctx, "/products/search?q="+url.QueryEscape(query), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Categories returns the list of category slugs.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "/products/category-list", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ByCategory returns the products in one category.
func (c *Client) ByCategory(ctx context.Context, category string) (*model.ProductsPage, error) {
	var page model.ProductsPage
	if err := c.get(ctx, "/products/category/"+url.PathEscape(category), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// get issues one GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read catalog response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog responded with status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}
	return nil
}
