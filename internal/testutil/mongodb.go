//go:build integration

// Package testutil starts the containers and seeds the documents used by integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const defaultMongoImage = "mongo:7.0"

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB starts a MongoDB container. TEST_MONGO_IMAGE overrides the image.
// Packages with many tests should share one container through RunWithSharedMongoDB.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	image := os.Getenv("TEST_MONGO_IMAGE")
	if image == "" {
		image = defaultMongoImage
	}

	container, err := mongodb.Run(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("start %s container: %w", image, err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}

	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate mongodb container: %w", err)
	}
	return nil
}
