// Package redis provides a Redis-backed FunnelRepository.
//
// Each funnel is stored as a single JSON record under "<prefix>funnel_<id>"
// and indexed in a ZSET so List does not have to scan the keyspace.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/insyncinternational/funnelflow/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Repository implements ports.FunnelRepository using Redis.
type Repository struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Repository)

// WithTTL sets an expiration for funnel records. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(r *Repository) {
		r.ttl = ttl
	}
}

// WithPrefix sets the key prefix for funnel records.
func WithPrefix(prefix string) Option {
	return func(r *Repository) {
		r.prefix = prefix
	}
}

// New creates a new Redis repository with options.
func New(address, password string, db int, opts ...Option) *Repository {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis repository from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Repository {
	repo := &Repository{
		client: client,
		prefix: "funnelflow:",
		ttl:    0,
	}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// key builds the record key. The "funnel_" segment matches the record
// naming the rest of the product uses for this store.
func (r *Repository) key(id string) string {
	return r.prefix + "funnel_" + id
}

func (r *Repository) indexKey() string {
	return r.prefix + "funnels"
}

// Save serializes and writes the funnel, and registers it in the index.
func (r *Repository) Save(ctx context.Context, funnel *domain.Funnel) error {
	data, err := domain.EncodeFunnel(funnel)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(funnel.ID), data, r.ttl)

	// Index score = expiry time; records without TTL get a far-future
	// score so lazy pruning never removes them.
	score := float64(time.Now().Add(r.ttl).Unix())
	if r.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}
	pipe.ZAdd(ctx, r.indexKey(), backend.Z{
		Score:  score,
		Member: funnel.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save funnel to redis: %w", err)
	}
	return nil
}

// Load retrieves and decodes the funnel record.
func (r *Repository) Load(ctx context.Context, id string) (*domain.Funnel, error) {
	val, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrFunnelNotFound
		}
		return nil, fmt.Errorf("failed to get funnel from redis: %w", err)
	}
	return domain.DecodeFunnel([]byte(val))
}

// Delete removes the funnel record and its index entry.
func (r *Repository) Delete(ctx context.Context, id string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.ZRem(ctx, r.indexKey(), id)
	_, err := pipe.Exec(ctx)
	return err
}

// List returns stored funnel IDs, lazily pruning expired index entries.
func (r *Repository) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	if err := r.client.ZRemRangeByScore(ctx, r.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune expired funnels: %w", err)
	}

	ids, err := r.client.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list funnels: %w", err)
	}
	return ids, nil
}

// Close closes the redis client.
func (r *Repository) Close() error {
	return r.client.Close()
}
