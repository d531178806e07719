package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/littlelemon/internal/domain/model"
)

// RestaurantFacade exposes the subset of application functionality required by the monitor.
type RestaurantFacade interface {
	StaleUnassignedOrders(ctx context.Context, age time.Duration) ([]model.Order, error)
}

// OrderMonitor periodically scans for orders stuck without a delivery crew
// and reports them for manager attention. It never mutates state.
type OrderMonitor struct {
	facade       RestaurantFacade
	pollInterval time.Duration
	staleAge     time.Duration
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOrderMonitor constructs the monitor worker pool.
func NewOrderMonitor(facade RestaurantFacade, pollInterval, staleAge time.Duration, workers int, logger *slog.Logger) *OrderMonitor {
	if workers <= 0 {
		workers = 1
	}
	return &OrderMonitor{
		facade:       facade,
		pollInterval: pollInterval,
		staleAge:     staleAge,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, workers*4),
	}
}

// Start launches background scanning.
func (m *OrderMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	for i := 0; i < m.workers; i++ {
		m.wg.Add(1)
		go m.worker(runCtx)
	}

	m.wg.Add(1)
	go m.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (m *OrderMonitor) Stop() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *OrderMonitor) dispatch(ctx context.Context) {
	defer m.wg.Done()
	defer close(m.jobs)
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.fetchAndDispatch(ctx)
		}
	}
}

func (m *OrderMonitor) fetchAndDispatch(ctx context.Context) {
	orders, err := m.facade.StaleUnassignedOrders(ctx, m.staleAge)
	if err != nil {
		m.logger.Error("fetch stale unassigned orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case m.jobs <- order:
		}
	}
}

func (m *OrderMonitor) worker(ctx context.Context) {
	defer m.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-m.jobs:
			if !ok {
				return
			}
			m.report(order)
		}
	}
}

func (m *OrderMonitor) report(order model.Order) {
	m.logger.Warn("order awaiting delivery crew assignment",
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", order.UserID),
		slog.Time("date", order.Date),
		slog.Duration("waiting", time.Since(order.Date)),
	)
}
