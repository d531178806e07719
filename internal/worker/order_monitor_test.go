package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/polkiloo/littlelemon/internal/domain/model"
	testhelpers "github.com/polkiloo/littlelemon/internal/test"
)

func TestNewOrderMonitorDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	mon := NewOrderMonitor(&testhelpers.MonitorFacadeStub{}, time.Second, time.Hour, 0, logger)
	if mon.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", mon.workers)
	}
}

func TestOrderMonitorReportsStaleOrders(t *testing.T) {
	var buf safeBuffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	facade := &testhelpers.MonitorFacadeStub{
		Batches: [][]model.Order{{{ID: 1, UserID: 7, Status: model.OrderStatusUnassigned, Date: time.Now().Add(-time.Hour)}}},
	}
	mon := NewOrderMonitor(facade, 10*time.Millisecond, 45*time.Minute, 2, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mon.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		if buf.Contains("order awaiting delivery crew assignment") {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for stale order report")
		case <-time.After(10 * time.Millisecond):
		}
	}

	mon.Stop()

	facade.Lock()
	defer facade.Unlock()
	if len(facade.AgeSeen) == 0 {
		t.Fatal("expected facade to be scanned")
	}
	for _, age := range facade.AgeSeen {
		if age != 45*time.Minute {
			t.Fatalf("expected stale age 45m passed through, got %v", age)
		}
	}
}

func TestOrderMonitorLogsScanFailures(t *testing.T) {
	var buf safeBuffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	facade := &testhelpers.MonitorFacadeStub{
		StaleFn: func(ctx context.Context, age time.Duration) ([]model.Order, error) {
			return nil, errors.New("db unavailable")
		},
	}
	mon := NewOrderMonitor(facade, 5*time.Millisecond, time.Hour, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mon.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		if buf.Contains("fetch stale unassigned orders failed") {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for scan failure log")
		case <-time.After(10 * time.Millisecond):
		}
	}

	mon.Stop()
}

func TestOrderMonitorStopBeforeTick(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.MonitorFacadeStub{}
	mon := NewOrderMonitor(facade, time.Hour, time.Hour, 1, logger)

	mon.Start(context.Background())
	mon.Stop()

	facade.Lock()
	defer facade.Unlock()
	if len(facade.AgeSeen) != 0 {
		t.Fatalf("expected no scans before first tick, got %d", len(facade.AgeSeen))
	}
}

type safeBuffer struct {
	mu  sync.Mutex
	buf []byte
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *safeBuffer) Contains(s string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Contains(string(b.buf), s)
}
