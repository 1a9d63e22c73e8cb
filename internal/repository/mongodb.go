// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-optimized MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// Collection names.
const (
	PartitionsCollection = "partitions"
	ReceptionsCollection = "receptions"
	AuditLogsCollection  = "audit_logs"
)

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client     *mongo.Client
	Database   *mongo.Database
	Partitions *mongo.Collection
	Receptions *mongo.Collection
	AuditLogs  *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:     client,
		Database:   db,
		Partitions: db.Collection(PartitionsCollection),
		Receptions: db.Collection(ReceptionsCollection),
		AuditLogs:  db.Collection(AuditLogsCollection),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, fmt.Errorf("create indexes: %w", err)
	}

	return mongoDB, nil
}

// createIndexes creates the indexes the partition and lookup queries rely on.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// one partition per reception and tenant
	_, err := m.Partitions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "tenantId", Value: 1}, {Key: "receptionId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("tenant_reception_unique"),
		},
		{
			Keys:    bson.D{{Key: "tenantId", Value: 1}, {Key: "pallets.reference", Value: 1}},
			Options: options.Index().SetName("tenant_pallet_reference"),
		},
		{
			Keys:    bson.D{{Key: "tenantId", Value: 1}, {Key: "pallets.number", Value: 1}},
			Options: options.Index().SetName("tenant_pallet_number"),
		},
	})
	if err != nil {
		return err
	}

	// receptions are owned by another workflow, index failures there are not fatal
	_, _ = m.Receptions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "pallets.reference", Value: 1}}},
		{Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "pallets.number", Value: 1}}},
	})

	_, _ = m.AuditLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "tenant_id", Value: 1}, {Key: "reception_id", Value: 1}},
	})

	return nil
}

// SetAuditTTL replaces the TTL index on the audit log collection.
func (m *MongoDB) SetAuditTTL(ctx context.Context, ttl time.Duration) error {
	_, _ = m.AuditLogs.Indexes().DropOne(ctx, "timestamp_ttl")

	_, err := m.AuditLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())).SetName("timestamp_ttl"),
	})
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
