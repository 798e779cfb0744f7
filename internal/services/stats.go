package services

import (
	"context"

	"github.com/sbilibin2017/gw-notes/internal/logger"
)

// StatsRecalculator keeps the stored per-user counters in line with the
// notes and associations they summarize.
type StatsRecalculator struct {
	stats StatsStore
}

// NewStatsRecalculator creates a StatsRecalculator.
func NewStatsRecalculator(stats StatsStore) *StatsRecalculator {
	return &StatsRecalculator{stats: stats}
}

// Recalculate recomputes the counters of ownerID from the source tables. It
// runs inside the caller's transaction and is idempotent.
func (r *StatsRecalculator) Recalculate(ctx context.Context, ownerID int64) error {
	if _, err := r.stats.Recalculate(ctx, ownerID); err != nil {
		logger.Log.Errorw("failed to recalculate stats", "user_id", ownerID, "error", err)
		return err
	}
	return nil
}
