package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/esprit/eventsproject/internal/domain"
)

const DefaultCostInterval = 60 * time.Second

type CostCalculator interface {
	CalculateCost(ctx context.Context, organizer domain.Organizer) error
}

// CostWorker periodically recomputes the cost of the organizer's events.
type CostWorker struct {
	svc CostCalculator

	mu        sync.RWMutex
	organizer domain.Organizer
	interval  time.Duration
	ticker    *time.Ticker
}

func NewCostWorker(svc CostCalculator, organizer domain.Organizer, interval time.Duration) *CostWorker {
	if interval <= 0 {
		interval = DefaultCostInterval
	}

	return &CostWorker{
		svc:       svc,
		organizer: organizer,
		interval:  interval,
	}
}

func (w *CostWorker) Organizer() domain.Organizer {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.organizer
}

func (w *CostWorker) SetOrganizer(organizer domain.Organizer) {
	w.mu.Lock()
	w.organizer = organizer
	w.mu.Unlock()
}

func (w *CostWorker) Interval() time.Duration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.interval
}

// SetInterval changes the period of a running worker from its next tick on.
// Non-positive values are ignored.
func (w *CostWorker) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.interval = interval
	if w.ticker != nil {
		w.ticker.Reset(interval)
	}
}

// Run blocks until ctx is done. Failed runs are logged and retried on the
// next tick.
func (w *CostWorker) Run(ctx context.Context) {
	w.mu.Lock()
	ticker := time.NewTicker(w.interval)
	w.ticker = ticker
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		ticker.Stop()
		w.ticker = nil
		w.mu.Unlock()
	}()

	w.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *CostWorker) runOnce(ctx context.Context) {
	organizer := w.Organizer()
	if err := w.svc.CalculateCost(ctx, organizer); err != nil {
		zap.L().Error("failed to calculate event costs",
			zap.String("organizer", organizer.FirstName+" "+organizer.LastName),
			zap.Error(err))
	}
}
