package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

const palletIndexPrefix = "pallet-index"

// RedisConfig holds the connection settings of the pallet index.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// TTL bounds how long an indexed reference survives without being refreshed.
	TTL time.Duration
}

// RedisPalletIndex maps pallet references to their owning reception.
// It is a cache in front of the partitions collection, never the source of truth.
type RedisPalletIndex struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPalletIndex connects to Redis and verifies the connection.
func NewRedisPalletIndex(cfg RedisConfig) (*RedisPalletIndex, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisPalletIndexWithClient(client, cfg.TTL), nil
}

// NewRedisPalletIndexWithClient wraps an existing client.
func NewRedisPalletIndexWithClient(client *redis.Client, ttl time.Duration) *RedisPalletIndex {
	return &RedisPalletIndex{client: client, ttl: ttl}
}

// PalletIndexKey returns the Redis key of a reference within a tenant.
func PalletIndexKey(tenantID, reference string) string {
	return palletIndexPrefix + ":" + tenantID + ":" + reference
}

// Get returns the indexed location of a reference, or nil when it is not indexed.
func (i *RedisPalletIndex) Get(ctx context.Context, tenantID, reference string) (*model.PalletLocation, error) {
	data, err := i.client.Get(ctx, PalletIndexKey(tenantID, reference)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var loc model.PalletLocation
	if err := json.Unmarshal(data, &loc); err != nil {
		return nil, fmt.Errorf("decode pallet index entry: %w", err)
	}
	if loc.TenantID != tenantID || loc.Pallet.Reference != reference {
		return nil, nil
	}
	return &loc, nil
}

// Put indexes one pallet location. Locations without a reference are skipped.
func (i *RedisPalletIndex) Put(ctx context.Context, loc model.PalletLocation) error {
	return i.PutMany(ctx, []model.PalletLocation{loc})
}

// PutMany indexes pallet locations in a single pipeline.
func (i *RedisPalletIndex) PutMany(ctx context.Context, locs []model.PalletLocation) error {
	pipe := i.client.Pipeline()
	queued := 0
	for _, loc := range locs {
		if loc.Pallet.Reference == "" || loc.TenantID == "" {
			continue
		}
		data, err := json.Marshal(loc)
		if err != nil {
			return fmt.Errorf("encode pallet index entry: %w", err)
		}
		pipe.Set(ctx, PalletIndexKey(loc.TenantID, loc.Pallet.Reference), data, i.ttl)
		queued++
	}
	if queued == 0 {
		return nil
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Delete removes references from the index.
func (i *RedisPalletIndex) Delete(ctx context.Context, tenantID string, references ...string) error {
	if len(references) == 0 {
		return nil
	}
	keys := make([]string, len(references))
	for n, ref := range references {
		keys[n] = PalletIndexKey(tenantID, ref)
	}
	return i.client.Del(ctx, keys...).Err()
}

// Ping checks the Redis connection.
func (i *RedisPalletIndex) Ping(ctx context.Context) error {
	return i.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (i *RedisPalletIndex) Close() error {
	return i.client.Close()
}
