package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/trazai/lojista-service/internal/domain"
)

// SweepMetrics is the slice of instrumentation the policy sweeps record.
type SweepMetrics interface {
	RecordStoreBlocked()
	RecordStoreUnblocked()
	RecordBlockWarning()
	RecordSweepError(sweep string)
	RecordSweepDuration(sweep string, seconds float64)
	RecordPendingStores(count int)
}

type CommissionUsecase interface {
	PendingCommissionByStore() ([]*domain.PendingCommission, error)
	RunBlockingSweep(ctx context.Context) error
	RunUnblockingSweep(ctx context.Context) error
}

type DefaultCommissionUsecase struct {
	orderRepo      domain.OrderRepository
	storeRepo      domain.StoreRepository
	notifier       domain.AdminNotifier
	publisher      domain.StoreEventPublisher
	metrics        SweepMetrics
	warnAfterDays  int
	blockAfterDays int
	logger         *slog.Logger
	now            func() time.Time
}

func NewDefaultCommissionUsecase(
	orderRepo domain.OrderRepository,
	storeRepo domain.StoreRepository,
	notifier domain.AdminNotifier,
	publisher domain.StoreEventPublisher,
	metrics SweepMetrics,
	warnAfterDays, blockAfterDays int,
	logger *slog.Logger,
) *DefaultCommissionUsecase {
	return &DefaultCommissionUsecase{
		orderRepo:      orderRepo,
		storeRepo:      storeRepo,
		notifier:       notifier,
		publisher:      publisher,
		metrics:        metrics,
		warnAfterDays:  warnAfterDays,
		blockAfterDays: blockAfterDays,
		logger:         logger,
		now:            time.Now,
	}
}

// PendingCommissionByStore returns one row per store with at least one
// finalized, commission-unpaid, non-processor order, with DaysPending
// computed against the current clock.
func (uc *DefaultCommissionUsecase) PendingCommissionByStore() ([]*domain.PendingCommission, error) {
	rows, err := uc.orderRepo.PendingCommissionByStore()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate pending commission: %w", err)
	}

	now := uc.now()
	for _, row := range rows {
		row.DaysPending = int(now.Sub(row.OldestPending).Hours() / 24)
	}

	return rows, nil
}

// RunBlockingSweep blocks stores whose oldest pending commission crossed the
// block threshold and warns stores inside the warning band. A failed store
// update is logged and does not abort the sweep; the condition persists, so
// the next tick retries it.
func (uc *DefaultCommissionUsecase) RunBlockingSweep(ctx context.Context) error {
	started := uc.now()

	rows, err := uc.PendingCommissionByStore()
	if err != nil {
		return err
	}
	uc.metrics.RecordPendingStores(len(rows))

	for _, row := range rows {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		switch {
		case row.DaysPending >= uc.blockAfterDays && !row.Blocked:
			if err := uc.blockStore(row); err != nil {
				uc.logger.Error("failed to block store",
					"store_id", row.StoreID, "days_pending", row.DaysPending, "error", err)
				uc.metrics.RecordSweepError("block")
			}
		case row.DaysPending >= uc.warnAfterDays && row.DaysPending < uc.blockAfterDays:
			uc.notifier.NotifyAdmin(domain.AdminNotification{
				Kind:        domain.NotificationBlockWarning,
				StoreID:     row.StoreID,
				StoreName:   row.StoreName,
				DaysPending: row.DaysPending,
			})
			uc.metrics.RecordBlockWarning()
		}
	}

	uc.metrics.RecordSweepDuration("block", uc.now().Sub(started).Seconds())
	return nil
}

func (uc *DefaultCommissionUsecase) blockStore(row *domain.PendingCommission) error {
	if err := uc.storeRepo.SetBlocked(row.StoreID, true); err != nil {
		return err
	}

	uc.metrics.RecordStoreBlocked()
	uc.logger.Warn("store blocked for overdue commission",
		"store_id", row.StoreID, "store_name", row.StoreName, "days_pending", row.DaysPending)

	uc.notifier.NotifyAdmin(domain.AdminNotification{
		Kind:        domain.NotificationStoreBlocked,
		StoreID:     row.StoreID,
		StoreName:   row.StoreName,
		DaysPending: row.DaysPending,
	})

	if err := uc.publisher.PublishStoreEvent(domain.StoreEvent{
		StoreID:     row.StoreID,
		StoreName:   row.StoreName,
		Event:       domain.StoreEventBlocked,
		DaysPending: row.DaysPending,
		OccurredAt:  uc.now(),
	}); err != nil {
		uc.logger.Error("failed to publish store blocked event", "store_id", row.StoreID, "error", err)
	}

	return nil
}

// RunUnblockingSweep releases every blocked store that no longer has a
// qualifying pending order.
func (uc *DefaultCommissionUsecase) RunUnblockingSweep(ctx context.Context) error {
	started := uc.now()

	stores, err := uc.storeRepo.GetBlockedStores()
	if err != nil {
		return fmt.Errorf("failed to list blocked stores: %w", err)
	}

	for _, store := range stores {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		count, err := uc.orderRepo.CountPendingCommission(store.ID)
		if err != nil {
			uc.logger.Error("failed to count pending commission", "store_id", store.ID, "error", err)
			uc.metrics.RecordSweepError("unblock")
			continue
		}
		if count > 0 {
			continue
		}

		if err := uc.storeRepo.SetBlocked(store.ID, false); err != nil {
			uc.logger.Error("failed to unblock store", "store_id", store.ID, "error", err)
			uc.metrics.RecordSweepError("unblock")
			continue
		}

		uc.metrics.RecordStoreUnblocked()
		uc.logger.Info("store unblocked", "store_id", store.ID, "store_name", store.Name)

		uc.notifier.NotifyAdmin(domain.AdminNotification{
			Kind:      domain.NotificationStoreUnlocked,
			StoreID:   store.ID,
			StoreName: store.Name,
		})

		if err := uc.publisher.PublishStoreEvent(domain.StoreEvent{
			StoreID:    store.ID,
			StoreName:  store.Name,
			Event:      domain.StoreEventUnblocked,
			OccurredAt: uc.now(),
		}); err != nil {
			uc.logger.Error("failed to publish store unblocked event", "store_id", store.ID, "error", err)
		}
	}

	uc.metrics.RecordSweepDuration("unblock", uc.now().Sub(started).Seconds())
	return nil
}
