package txmonitor

import (
	"context"
	"fmt"

	"github.com/gabapcia/alertforge/internal/pkg/logger"
)

// Prune removes ledger entries older than the configured retention.
func (s *service) Prune(ctx context.Context) (int64, error) {
	deleted, err := s.ledger.Prune(ctx, s.cfg.retention)
	if err != nil {
		return 0, fmt.Errorf("%w: prune: %w", ErrPersistence, err)
	}

	s.inst.signaturesPruned.Add(ctx, deleted)
	logger.Info(ctx, "signature ledger pruned", "prune.deleted", deleted)
	return deleted, nil
}
