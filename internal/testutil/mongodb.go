//go:build integration

// Package testutil provides testcontainers helpers for integration tests.
// Packages that hit MongoDB share one container per test binary via TestMain
// instead of paying the container startup cost per test.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoDBContainer wraps a running MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// StartMongoDB creates and starts a MongoDB testcontainer.
func StartMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("start MongoDB container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("get connection string: %w", err)
	}

	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Terminate stops the container.
func (m *MongoDBContainer) Terminate(ctx context.Context) error {
	if m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate container: %w", err)
	}
	return nil
}

var (
	shared     *MongoDBContainer
	sharedErr  error
	sharedOnce sync.Once
	sharedMu   sync.RWMutex
)

// RunWithSharedMongoDB is a TestMain helper: it starts one shared MongoDB
// container, runs the package tests, and tears the container down.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithSharedMongoDB(context.Background(), m))
//	}
func RunWithSharedMongoDB(ctx context.Context, m *testing.M) int {
	sharedOnce.Do(func() {
		sharedMu.Lock()
		defer sharedMu.Unlock()
		shared, sharedErr = StartMongoDB(ctx)
	})
	if sharedErr != nil {
		panic(sharedErr)
	}

	code := m.Run()

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if err := shared.Terminate(ctx); err != nil {
		// Docker reaps the container eventually; don't fail the run over it.
		_, _ = os.Stderr.WriteString("warning: failed to terminate shared MongoDB container: " + err.Error() + "\n")
	}

	return code
}

// SharedMongoDBURI returns the connection URI of the shared container.
// Panics when called outside a RunWithSharedMongoDB test binary.
func SharedMongoDBURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if shared == nil {
		panic("shared MongoDB container not initialized - use RunWithSharedMongoDB in TestMain")
	}
	return shared.URI
}

// DatabaseNameForTest derives a unique, valid MongoDB database name from a
// test name, so tests sharing one container stay isolated.
func DatabaseNameForTest(testName string) string {
	name := strings.NewReplacer("/", "_", "\\", "_").Replace(testName)
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
