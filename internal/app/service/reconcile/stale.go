package reconcile

import (
	"context"
	"time"

	"github.com/fatflowers/gemcashier/internal/models"
)

// StalePending lists pending payments created more than olderThan ago. Zero
// arguments fall back to the configured horizon and limit.
func (e *Engine) StalePending(ctx context.Context, olderThan time.Duration, limit int) ([]*models.Payment, error) {
	if olderThan <= 0 {
		olderThan = e.horizon
	}
	if limit <= 0 {
		limit = e.limit
	}
	rows, err := e.payments.ListStalePending(ctx, e.now().Add(-olderThan), limit)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		e.log.Warnw("stale_pending_payments", "count", len(rows), "older_than", olderThan.String())
	}
	return rows, nil
}
