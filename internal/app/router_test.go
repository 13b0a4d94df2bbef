package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpx "github.com/guttosm/cart-service/internal/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeRouter(t *testing.T) {
	engine, err := InitializeEngine(testConfig(t))
	require.NoError(t, err)
	defer engine.Close(t.Context())

	components := InitializeRouter(engine, testConfig(t))

	require.NotNil(t, components)
	assert.NotNil(t, components.CartHandler)
	assert.NotNil(t, components.ProductHandler)
	assert.NotNil(t, components.HealthHandler)
	assert.Equal(t, 100, components.Config.RateLimit)
}

// TestInitializeRouter_GatewayBreakerInReadiness verifies the gateway circuit
// breaker state shows up on the readiness probe.
func TestInitializeRouter_GatewayBreakerInReadiness(t *testing.T) {
	cfg := testConfig(t)
	engine, err := InitializeEngine(cfg)
	require.NoError(t, err)
	defer engine.Close(t.Context())

	c := InitializeRouter(engine, cfg)
	router := httpx.NewRouter(c.CartHandler, c.ProductHandler, c.HealthHandler, c.Config)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Status string                 `json:"status"`
		Checks map[string]interface{} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "closed", body.Checks["cart_gateway_circuit"])
}
