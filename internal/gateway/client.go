package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/domain/model"
)

const defaultTimeout = 10 * time.Second

// Client is the HTTP implementation of Gateway against the mock cart API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient injects a custom http.Client (tests, custom transports).
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

// NewClient creates a gateway client for the API rooted at baseURL
// (e.g. "http://localhost:8080/api").
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchCart retrieves the remote cart snapshot.
func (c *Client) FetchCart(ctx context.Context) (*model.CartData, error) {
	return c.do(ctx, http.MethodGet, "/cart", nil)
}

// AddItem confirms an add of quantity units of a product.
func (c *Client) AddItem(ctx context.Context, productID int64, quantity int) (*model.CartData, error) {
	body := dto.AddToCartRequest{ProductID: productID, Quantity: quantity}
	return c.do(ctx, http.MethodPost, "/cart/add", body)
}

// UpdateItem confirms a quantity change for a cart line item.
func (c *Client) UpdateItem(ctx context.Context, lineID int64, quantity int) (*model.CartData, error) {
	body := dto.UpdateCartItemRequest{Quantity: quantity}
	return c.do(ctx, http.MethodPut, "/cart/update/"+strconv.FormatInt(lineID, 10), body)
}

// RemoveItem confirms the removal of a cart line item.
func (c *Client) RemoveItem(ctx context.Context, lineID int64) (*model.CartData, error) {
	return c.do(ctx, http.MethodDelete, "/cart/remove/"+strconv.FormatInt(lineID, 10), nil)
}

// do issues one request and decodes the {success,data,message} envelope.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*model.CartData, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cart api request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read cart api response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp.StatusCode, raw)
	}

	var envelope dto.CartResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode cart api response: %w", err)
	}
	if !envelope.Success {
		return nil, decodeError(resp.StatusCode, raw)
	}

	data := envelope.Data
	return &data, nil
}

// decodeError turns a non-success response into an APIError, keeping the
// server message when the body carries the error envelope.
func decodeError(status int, raw []byte) error {
	apiErr := &APIError{StatusCode: status, Message: http.StatusText(status)}

	var envelope dto.ErrorResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		apiErr.Message = envelope.Message
		if envelope.Error != nil {
			apiErr.Code = envelope.Error.Code
		}
	}
	return apiErr
}
