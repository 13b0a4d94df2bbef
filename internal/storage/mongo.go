package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// cartsCollection is the collection holding cart snapshot documents.
	cartsCollection = "carts"
	// DefaultSlotID identifies the single snapshot document for one session.
	DefaultSlotID = "session"
)

// MongoConfig holds MongoDB connection settings for cart snapshot storage.
type MongoConfig struct {
	URI          string
	DatabaseName string
	// ConnectTimeout bounds the initial connect and ping.
	ConnectTimeout time.Duration
	// OpTimeout bounds each Load/Save/Delete round trip.
	OpTimeout time.Duration
}

// DefaultMongoConfig returns connection settings suitable for local use.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		URI:            "mongodb://localhost:27017",
		DatabaseName:   "cart_service",
		ConnectTimeout: 10 * time.Second,
		OpTimeout:      5 * time.Second,
	}
}

// cartDocument is the persisted shape of one cart snapshot slot.
type cartDocument struct {
	SlotID    string           `bson:"_id"`
	Items     []model.LineItem `bson:"items"`
	Summary   model.Summary    `bson:"summary"`
	UpdatedAt time.Time        `bson:"updated_at"`
}

// MongoStorage persists the cart snapshot as a single document in MongoDB,
// for deployments where the engine runs server-side and a browser-local slot
// is not available. It satisfies the same advisory-cache contract as
// FileStorage: storage is never the source of truth for a live session.
type MongoStorage struct {
	client     *mongo.Client
	collection *mongo.Collection
	slotID     string
	opTimeout  time.Duration
}

// NewMongoStorage connects to MongoDB and returns a MongoStorage bound to the
// given slot id. The connection is verified with a ping before returning.
func NewMongoStorage(cfg MongoConfig, slotID string) (*MongoStorage, error) {
	if slotID == "" {
		slotID = DefaultSlotID
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)
	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	opTimeout := cfg.OpTimeout
	if opTimeout <= 0 {
		opTimeout = 5 * time.Second
	}

	return &MongoStorage{
		client:     client,
		collection: client.Database(cfg.DatabaseName).Collection(cartsCollection),
		slotID:     slotID,
		opTimeout:  opTimeout,
	}, nil
}

// Load reads the snapshot document for this slot. A missing document yields
// (nil, nil); a document that cannot be decoded is dropped and treated as
// absent, mirroring the corrupt-file recovery path.
func (s *MongoStorage) Load() (*model.CartData, error) {
	ctx, cancel := s.opContext()
	defer cancel()

	raw, err := s.collection.FindOne(ctx, bson.M{"_id": s.slotID}).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}

	var doc cartDocument
	if err := bson.Unmarshal(raw, &doc); err != nil {
		log.Warn().
			Err(err).
			Str("slot_id", s.slotID).
			Msg("Discarding corrupt cart snapshot document")
		_, _ = s.collection.DeleteOne(ctx, bson.M{"_id": s.slotID})
		return nil, nil
	}

	return &model.CartData{Items: doc.Items, Summary: doc.Summary}, nil
}

// Save upserts the snapshot document for this slot.
func (s *MongoStorage) Save(data model.CartData) error {
	ctx, cancel := s.opContext()
	defer cancel()

	doc := cartDocument{
		SlotID:    s.slotID,
		Items:     data.Items,
		Summary:   data.Summary,
		UpdatedAt: time.Now().UTC(),
	}

	_, err := s.collection.ReplaceOne(
		ctx,
		bson.M{"_id": s.slotID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}

// Delete removes the snapshot document. Deleting an absent slot is not an error.
func (s *MongoStorage) Delete() error {
	ctx, cancel := s.opContext()
	defer cancel()

	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": s.slotID}); err != nil {
		return fmt.Errorf("delete cart snapshot: %w", err)
	}
	return nil
}

// Close disconnects the underlying client.
func (s *MongoStorage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (s *MongoStorage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx, nil)
}

func (s *MongoStorage) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.opTimeout)
}
