package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/trazai/lojista-service/internal/usecase"
)

// CommissionScheduler drives the blocking policy. One tick runs the blocking
// sweep and then the unblocking sweep, in that order: both sweeps touch the
// same store rows, and serializing them in a single tick removes any chance
// of the two racing each other.
type CommissionScheduler struct {
	commissionUC usecase.CommissionUsecase
	interval     time.Duration
	logger       *slog.Logger
}

func NewCommissionScheduler(commissionUC usecase.CommissionUsecase, interval time.Duration, logger *slog.Logger) *CommissionScheduler {
	return &CommissionScheduler{
		commissionUC: commissionUC,
		interval:     interval,
		logger:       logger,
	}
}

// Start runs the scheduler until ctx is canceled. A failed tick is logged and
// retried on the next tick; the sweeps re-derive everything from the order
// table, so nothing is lost.
func (s *CommissionScheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Starting commission policy scheduler", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Stopping commission policy scheduler")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes one full policy tick. Exposed so the admin endpoint and
// tests can trigger a sweep without waiting on the timer.
func (s *CommissionScheduler) RunOnce(ctx context.Context) {
	if err := s.commissionUC.RunBlockingSweep(ctx); err != nil {
		s.logger.Error("blocking sweep failed", "error", err)
	}
	if err := s.commissionUC.RunUnblockingSweep(ctx); err != nil {
		s.logger.Error("unblocking sweep failed", "error", err)
	}
}
