package background

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trazai/lojista-service/internal/domain"
)

type countingCommissionUC struct {
	order []string
	ticks chan struct{}
}

func (c *countingCommissionUC) PendingCommissionByStore() ([]*domain.PendingCommission, error) {
	return nil, nil
}

func (c *countingCommissionUC) RunBlockingSweep(context.Context) error {
	c.order = append(c.order, "block")
	return nil
}

func (c *countingCommissionUC) RunUnblockingSweep(context.Context) error {
	c.order = append(c.order, "unblock")
	if c.ticks != nil {
		select {
		case c.ticks <- struct{}{}:
		default:
		}
	}
	return nil
}

func TestRunOnce_RunsBothSweepsInOrder(t *testing.T) {
	uc := &countingCommissionUC{}
	scheduler := NewCommissionScheduler(uc, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))

	scheduler.RunOnce(context.Background())

	assert.Equal(t, []string{"block", "unblock"}, uc.order)
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	uc := &countingCommissionUC{ticks: make(chan struct{}, 1)}
	scheduler := NewCommissionScheduler(uc, time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		scheduler.Start(ctx)
		close(done)
	}()

	// Wait for the first full cycle instead of sleeping so the test does
	// not depend on scheduler timing.
	select {
	case <-uc.ticks:
	case <-time.After(time.Second):
		t.Fatal("scheduler never completed a cycle")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}

	assert.NotEmpty(t, uc.order)
}
