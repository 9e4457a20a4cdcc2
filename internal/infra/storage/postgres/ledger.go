package postgres

import (
	"context"
	"time"

	"github.com/gabapcia/alertforge/internal/txmonitor"
)

// Ledger is the PostgreSQL implementation of txmonitor.SignatureLedger backed
// by the seen_signatures table.
type Ledger struct {
	pool *Pool
	now  func() time.Time
}

// Ensure Ledger implements the txmonitor.SignatureLedger interface at compile time.
var _ txmonitor.SignatureLedger = (*Ledger)(nil)

// LedgerOption configures a Ledger.
type LedgerOption func(*Ledger)

// WithClock overrides the time source used to stamp and prune entries.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLedger creates a new PostgreSQL signature ledger.
func NewLedger(pool *Pool, opts ...LedgerOption) *Ledger {
	l := &Ledger{pool: pool, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// IsSeen reports whether signature has been recorded.
func (l *Ledger) IsSeen(ctx context.Context, signature string) (bool, error) {
	var exists bool
	err := l.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM seen_signatures WHERE signature = $1)
	`, signature).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// MarkSeen records signature. An existing entry is left untouched.
func (l *Ledger) MarkSeen(ctx context.Context, signature, wallet string) error {
	_, err := l.pool.Exec(ctx, `
		INSERT INTO seen_signatures (signature, wallet_address, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (signature) DO NOTHING
	`, signature, wallet, l.now().UTC())

	return err
}

// Prune deletes entries created at or before now minus retention.
func (l *Ledger) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := l.now().UTC().Add(-retention)

	tag, err := l.pool.Exec(ctx, `
		DELETE FROM seen_signatures WHERE created_at <= $1
	`, cutoff)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
