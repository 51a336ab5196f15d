package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"socialpulse/internal/core/analytics"

	"go.uber.org/zap"
)

type countingRefresher struct {
	full  atomic.Int32
	light atomic.Int32
	err   error
}

func (r *countingRefresher) FullRefresh(ctx context.Context) (analytics.RefreshReport, error) {
	r.full.Add(1)
	return analytics.RefreshReport{Kind: analytics.RefreshFull}, r.err
}

func (r *countingRefresher) LightRefresh(ctx context.Context) (analytics.RefreshReport, error) {
	r.light.Add(1)
	return analytics.RefreshReport{Kind: analytics.RefreshLight}, r.err
}

func runWorker(t *testing.T, w *RefreshWorker, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()

	select {
	case <-done:
	case <-time.After(d + 2*time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestRefreshWorker_StartupFullRefresh(t *testing.T) {
	r := &countingRefresher{}
	w := NewRefreshWorker(r, time.Hour, time.Hour, zap.NewNop())

	runWorker(t, w, 50*time.Millisecond)

	if got := r.full.Load(); got != 1 {
		t.Errorf("expected exactly one startup full refresh, got %d", got)
	}
	if got := r.light.Load(); got != 0 {
		t.Errorf("expected no light refresh, got %d", got)
	}
}

func TestRefreshWorker_Ticks(t *testing.T) {
	r := &countingRefresher{}
	w := NewRefreshWorker(r, 40*time.Millisecond, 10*time.Millisecond, zap.NewNop())

	runWorker(t, w, 200*time.Millisecond)

	if got := r.full.Load(); got < 2 {
		t.Errorf("expected startup and periodic full refreshes, got %d", got)
	}
	if got := r.light.Load(); got < 3 {
		t.Errorf("expected several light refreshes, got %d", got)
	}
	if r.light.Load() <= r.full.Load() {
		t.Errorf("light refresh should run more often than full: light=%d full=%d", r.light.Load(), r.full.Load())
	}
}

func TestRefreshWorker_KeepsRunningOnErrors(t *testing.T) {
	r := &countingRefresher{err: errors.New("remote down")}
	w := NewRefreshWorker(r, time.Hour, 10*time.Millisecond, zap.NewNop())

	runWorker(t, w, 100*time.Millisecond)

	if got := r.light.Load(); got < 2 {
		t.Errorf("worker should keep scheduling after failures, got %d light refreshes", got)
	}
}
