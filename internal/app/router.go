// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/http"
	"github.com/guttosm/cart-service/internal/storage"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	CartHandler    *http.CartHandler
	ProductHandler *http.ProductHandler
	HealthHandler  *http.HealthHandler
	Config         http.RouterConfig
}

// mongoChecker adapts MongoStorage to the HealthChecker interface.
type mongoChecker struct {
	storage *storage.MongoStorage
	timeout time.Duration
}

func (c *mongoChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	return c.storage.HealthCheck(ctx)
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(engine *Engine, cfg config.Config) *RouterComponents {
	cartHandler := http.NewCartHandler()
	productHandler := http.NewProductHandler(engine.Catalog)
	healthHandler := http.NewHealthHandler()

	// Register dependencies for health monitoring
	healthHandler.RegisterCircuitBreaker("cart_gateway", engine.Gateway.Breaker())
	if ms := engine.MongoStorage(); ms != nil {
		healthHandler.RegisterChecker("mongodb", &mongoChecker{storage: ms, timeout: 5 * time.Second})
	}

	routerCfg := http.RouterConfig{
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		CORSOrigins: cfg.Server.CORSOrigins,
		SwaggerUser: cfg.Server.SwaggerUser,
		SwaggerPass: cfg.Server.SwaggerPass,
	}

	return &RouterComponents{
		CartHandler:    cartHandler,
		ProductHandler: productHandler,
		HealthHandler:  healthHandler,
		Config:         routerCfg,
	}
}
