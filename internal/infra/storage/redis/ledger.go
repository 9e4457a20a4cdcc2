package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gabapcia/alertforge/internal/txmonitor"

	"github.com/redis/go-redis/v9"
)

// signaturesKey is a sorted set of seen signatures scored by the unix
// millisecond at which each was first recorded.
func (c *client) signaturesKey() string {
	return c.key("signatures")
}

// attributionKey is a hash mapping each signature to the wallet it was first
// observed on.
func (c *client) attributionKey() string {
	return c.key("signatures", "wallet")
}

// IsSeen reports whether signature is present in the ledger.
func (c *client) IsSeen(ctx context.Context, signature string) (bool, error) {
	err := c.conn.ZScore(ctx, c.signaturesKey(), signature).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// MarkSeen records signature and its wallet. Both writes are no-ops when the
// signature already exists, so the original timestamp and attribution are kept.
func (c *client) MarkSeen(ctx context.Context, signature, wallet string) error {
	score := float64(c.now().UnixMilli())

	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAddNX(ctx, c.signaturesKey(), redis.Z{Score: score, Member: signature})
		pipe.HSetNX(ctx, c.attributionKey(), signature, wallet)
		return nil
	})

	return err
}

// Prune removes every signature recorded at or before now minus retention.
func (c *client) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := strconv.FormatInt(c.now().Add(-retention).UnixMilli(), 10)

	members, err := c.conn.ZRangeByScore(ctx, c.signaturesKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: cutoff,
	}).Result()
	if err != nil {
		return 0, err
	}

	if len(members) == 0 {
		return 0, nil
	}

	args := make([]any, len(members))
	for i, m := range members {
		args[i] = m
	}

	var removed *redis.IntCmd
	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.ZRem(ctx, c.signaturesKey(), args...)
		pipe.HDel(ctx, c.attributionKey(), members...)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return removed.Val(), nil
}

// Ensure the client satisfies the SignatureLedger interface at compile time.
var _ txmonitor.SignatureLedger = new(client)
