package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
// The returned Engine owns background resources and must be closed on
// shutdown.
func InitializeApp(cfg config.Config) (*gin.Engine, *Engine, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize the cart engine (store, storage, gateway, sync, catalog)
	engine, err := InitializeEngine(cfg)
	if err != nil {
		return nil, nil, err
	}

	// Initialize router components (handlers and configuration)
	c := InitializeRouter(engine, cfg)

	router := http.NewRouter(c.CartHandler, c.ProductHandler, c.HealthHandler, c.Config)
	return router, engine, nil
}
