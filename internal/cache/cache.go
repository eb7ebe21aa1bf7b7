// Package cache stores serialized resource collections keyed by collection name.
// Entries are grouped per collection so a mutation invalidates the whole
// collection at once; there is no per-item patching.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/datalab-ge/datalab-api/internal/config"
	"github.com/valkey-io/valkey-go"
	"go.uber.org/zap"
)

// Collection keys
const (
	CollectionServiceRequests = "service-requests"
	CollectionContact         = "contact"
	CollectionTestimonials    = "testimonials"
)

// Cache is a collection-keyed byte cache
type Cache interface {
	// Get returns the cached entry for field within collection; ok is false on a miss
	Get(ctx context.Context, collection, field string) (value []byte, ok bool, err error)
	Set(ctx context.Context, collection, field string, value []byte) error
	// Invalidate drops every entry of the given collections
	Invalidate(ctx context.Context, collections ...string) error
	// Ping checks that the backing store is reachable
	Ping(ctx context.Context) error
	Close()
}

// New builds the configured cache; disabled configuration yields a no-op cache
func New(cfg *config.CacheConfig, logger *zap.Logger) (Cache, error) {
	if !cfg.Enabled {
		return Noop{}, nil
	}
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{cfg.Address},
		Password:    cfg.Password,
		SelectDB:    cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to valkey: %w", err)
	}
	logger.Info("Collection cache enabled",
		zap.String("address", cfg.Address),
		zap.Duration("ttl", cfg.TTLDuration()),
	)
	return NewValkey(client, cfg.TTLDuration()), nil
}

// Valkey keeps one hash per collection
type Valkey struct {
	client valkey.Client
	ttl    time.Duration
}

// NewValkey wraps an existing client
func NewValkey(client valkey.Client, ttl time.Duration) *Valkey {
	return &Valkey{client: client, ttl: ttl}
}

func key(collection string) string {
	return "datalab:collection:" + collection
}

// Get reads one field of a collection hash
func (c *Valkey) Get(ctx context.Context, collection, field string) ([]byte, bool, error) {
	value, err := c.client.Do(ctx, c.client.B().Hget().Key(key(collection)).Field(field).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache %s/%s: %w", collection, field, err)
	}
	return []byte(value), true, nil
}

// Set writes one field and refreshes the collection's expiry
func (c *Valkey) Set(ctx context.Context, collection, field string, value []byte) error {
	k := key(collection)
	cmds := valkey.Commands{
		c.client.B().Hset().Key(k).FieldValue().FieldValue(field, string(value)).Build(),
	}
	if c.ttl > 0 {
		cmds = append(cmds, c.client.B().Expire().Key(k).Seconds(int64(c.ttl/time.Second)).Build())
	}
	for _, res := range c.client.DoMulti(ctx, cmds...) {
		if err := res.Error(); err != nil {
			return fmt.Errorf("failed to write cache %s/%s: %w", collection, field, err)
		}
	}
	return nil
}

// Invalidate deletes the collection hashes
func (c *Valkey) Invalidate(ctx context.Context, collections ...string) error {
	if len(collections) == 0 {
		return nil
	}
	keys := make([]string, len(collections))
	for i, col := range collections {
		keys[i] = key(col)
	}
	if err := c.client.Do(ctx, c.client.B().Del().Key(keys...).Build()).Error(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}

// Ping sends PING to the server
func (c *Valkey) Ping(ctx context.Context) error {
	return c.client.Do(ctx, c.client.B().Ping().Build()).Error()
}

// Close releases the client
func (c *Valkey) Close() {
	c.client.Close()
}

// Noop never stores anything
type Noop struct{}

func (Noop) Get(context.Context, string, string) ([]byte, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, string, string, []byte) error         { return nil }
func (Noop) Invalidate(context.Context, ...string) error               { return nil }
func (Noop) Ping(context.Context) error                                { return nil }
func (Noop) Close()                                                    {}
