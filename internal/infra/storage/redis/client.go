// Package redis provides a Redis-backed signature ledger and the
// cross-instance pass lease used by the monitoring engine.
package redis

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultKeyPrefix namespaces every key written by this package.
const defaultKeyPrefix = "alertforge"

type client struct {
	conn   *redis.Client
	prefix string
	now    func() time.Time
}

// Option configures the Redis client.
type Option func(*client)

// WithKeyPrefix overrides the key namespace. Empty values are ignored.
func WithKeyPrefix(prefix string) Option {
	return func(c *client) {
		if prefix = strings.Trim(prefix, ":"); prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithClock overrides the time source used to score and prune ledger entries.
func WithClock(now func() time.Time) Option {
	return func(c *client) {
		if now != nil {
			c.now = now
		}
	}
}

func (c *client) key(parts ...string) string {
	return c.prefix + ":" + strings.Join(parts, ":")
}

func (c *client) Close() error {
	return c.conn.Close()
}

func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	c := &client{
		conn:   conn,
		prefix: defaultKeyPrefix,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
