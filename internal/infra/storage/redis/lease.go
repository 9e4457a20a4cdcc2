package redis

import (
	"context"
	"time"

	"github.com/gabapcia/alertforge/internal/pkg/logger"
	"github.com/gabapcia/alertforge/internal/txmonitor"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lease only while it still holds the caller's
// token, so an instance whose lease expired cannot release another's.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (c *client) leaseKey() string {
	return c.key("pass", "lease")
}

// Acquire takes the pass lease for ttl using SET NX PX with a random token.
//
// When the lease is held by another instance it returns acquired=false and a
// nil error. The returned release function is safe to call at most once.
func (c *client) Acquire(ctx context.Context, ttl time.Duration) (func(context.Context), bool, error) {
	token := uuid.NewString()
	key := c.leaseKey()

	ok, err := c.conn.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, err
	}

	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) {
		if err := releaseScript.Run(ctx, c.conn, []string{key}, token).Err(); err != nil {
			logger.Warn(ctx, "failed to release pass lease", "lease.key", key, "error", err)
		}
	}

	return release, true, nil
}

// Ensure the client satisfies the PassGuard interface at compile time.
var _ txmonitor.PassGuard = new(client)
