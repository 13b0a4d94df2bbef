// Package main is the entry point for the cart-service application.
//
// @title           Cart Service API
// @version         1.0.0
// @description     Cart state engine for the demo storefront.
//
//	The service owns the cart state machine (optimistic local updates with
//	debounced remote sync), serves the demo cart snapshot and proxies the
//	product catalog.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/cart-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Cart
// @tag.description Cart snapshot and mutation endpoints
//
// @tag.name        Products
// @tag.description Product catalog proxy endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	_ "github.com/guttosm/cart-service/docs" // swagger docs

	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router, engine, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		engine.Close(ctx)
	}()

	server := app.NewServer(router, cfg.Server.Port)
	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
