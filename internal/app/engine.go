package app

import (
	"context"

	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/cartsync"
	"github.com/guttosm/cart-service/internal/catalog"
	"github.com/guttosm/cart-service/internal/circuitbreaker"
	"github.com/guttosm/cart-service/internal/gateway"
	"github.com/guttosm/cart-service/internal/storage"
	"github.com/guttosm/cart-service/internal/store"
	"github.com/rs/zerolog/log"
)

// Engine bundles the cart state machine with its persistence adapter, remote
// gateway and sync layer. It is constructed once at startup and passed by
// reference to every consumer; there is no package-level instance.
type Engine struct {
	Store   *store.Store
	Gateway *gateway.BreakerGateway
	Syncer  *cartsync.Syncer
	Catalog *catalog.CachedCatalog

	mongoStorage *storage.MongoStorage
}

// InitializeEngine wires the cart engine from configuration. Snapshot storage
// is MongoDB when enabled, otherwise a local file; either way hydration
// failures fall back to an empty cart inside store.New.
func InitializeEngine(cfg config.Config) (*Engine, error) {
	var (
		st      storage.Storage
		mongoSt *storage.MongoStorage
	)

	if cfg.Database.Enabled {
		mongoCfg := storage.DefaultMongoConfig()
		mongoCfg.URI = cfg.Database.URI
		mongoCfg.DatabaseName = cfg.Database.DatabaseName

		ms, err := storage.NewMongoStorage(mongoCfg, storage.DefaultSlotID)
		if err != nil {
			return nil, err
		}
		mongoSt = ms
		st = ms
		log.Info().Str("database", cfg.Database.DatabaseName).Msg("Cart snapshot storage: MongoDB")
	} else {
		st = storage.NewFileStorage(cfg.Engine.StoragePath)
		log.Info().Str("path", cfg.Engine.StoragePath).Msg("Cart snapshot storage: file")
	}

	cartStore := store.New(st)

	client := gateway.NewClient(cfg.Gateway.BaseURL, gateway.WithTimeout(cfg.Gateway.Timeout))
	breaker := circuitbreaker.New(circuitbreaker.Config{
		Name:             "cart-gateway",
		FailureThreshold: cfg.Gateway.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Gateway.CircuitBreakerSuccessThreshold,
		Cooldown:         cfg.Gateway.CircuitBreakerCooldown,
	})
	gw := gateway.NewBreakerGateway(client, breaker)

	syncer := cartsync.New(cartStore, gw, cartsync.WithWindow(cfg.Engine.DebounceWindow))

	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, catalog.WithTimeout(cfg.Catalog.Timeout))
	cachedCatalog := catalog.NewCachedCatalog(catalogClient, cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL)

	return &Engine{
		Store:        cartStore,
		Gateway:      gw,
		Syncer:       syncer,
		Catalog:      cachedCatalog,
		mongoStorage: mongoSt,
	}, nil
}

// Close flushes pending sync work and releases engine resources.
func (e *Engine) Close(ctx context.Context) {
	if e.Syncer != nil {
		e.Syncer.Close()
	}
	if e.Catalog != nil {
		e.Catalog.Close()
	}
	if e.mongoStorage != nil {
		if err := e.mongoStorage.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB storage")
		}
	}
}

// MongoStorage returns the MongoDB adapter when one is configured, for
// health check registration.
func (e *Engine) MongoStorage() *storage.MongoStorage {
	return e.mongoStorage
}
