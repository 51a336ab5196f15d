package workers

import (
	"context"
	"sync"
	"time"

	"socialpulse/internal/core/analytics"
	"socialpulse/internal/metrics"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Refresher همان AggregatorService؛ برای تست قابل جایگزینی است
type Refresher interface {
	FullRefresh(ctx context.Context) (analytics.RefreshReport, error)
	LightRefresh(ctx context.Context) (analytics.RefreshReport, error)
}

type RefreshWorker struct {
	Refresher     Refresher
	FullInterval  time.Duration
	LightInterval time.Duration
	Logger        *zap.Logger
}

func NewRefreshWorker(refresher Refresher, fullInterval, lightInterval time.Duration, logger *zap.Logger) *RefreshWorker {
	return &RefreshWorker{
		Refresher:     refresher,
		FullInterval:  fullInterval,
		LightInterval: lightInterval,
		Logger:        logger,
	}
}

// Run یک full refresh فوری اجرا می‌کند و سپس دو تایمر مستقل را دنبال می‌کند.
// رفرش‌ها در goroutine جدا اجرا می‌شوند و ممکن است هم‌پوشانی داشته باشند.
func (w *RefreshWorker) Run(ctx context.Context) {
	w.Logger.Info("🚀 Refresh worker started",
		zap.Duration("fullInterval", w.FullInterval),
		zap.Duration("lightInterval", w.LightInterval))

	var wg sync.WaitGroup
	w.spawn(ctx, &wg, analytics.RefreshFull, w.Refresher.FullRefresh)

	full := time.NewTicker(w.FullInterval)
	defer full.Stop()
	light := time.NewTicker(w.LightInterval)
	defer light.Stop()

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			w.Logger.Info("🛑 Refresh worker stopped")
			return
		case <-full.C:
			w.spawn(ctx, &wg, analytics.RefreshFull, w.Refresher.FullRefresh)
		case <-light.C:
			w.spawn(ctx, &wg, analytics.RefreshLight, w.Refresher.LightRefresh)
		}
	}
}

func (w *RefreshWorker) spawn(ctx context.Context, wg *sync.WaitGroup, kind string, run func(context.Context) (analytics.RefreshReport, error)) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.runCycle(ctx, kind, run)
	}()
}

func (w *RefreshWorker) runCycle(ctx context.Context, kind string, run func(context.Context) (analytics.RefreshReport, error)) {
	w.Logger.Info("➡ Performing data refresh", zap.String("kind", kind))

	report, err := run(ctx)
	metrics.RefreshDurationSeconds.WithLabelValues(kind).Observe(report.Duration.Seconds())

	fields := []zap.Field{
		zap.String("kind", kind),
		zap.Int("users", report.Users),
		zap.Int("posts", report.Posts),
		zap.Int("comments", report.Comments),
		zap.Int("failures", report.Failures),
		zap.Duration("duration", report.Duration),
	}
	if err != nil {
		metrics.RefreshRunsTotal.WithLabelValues(kind, "partial").Inc()
		w.Logger.Warn("⚠️ Data refresh completed with errors",
			append(fields, zap.Int("errors", len(multierr.Errors(err))), zap.Error(err))...)
		return
	}
	metrics.RefreshRunsTotal.WithLabelValues(kind, "ok").Inc()
	w.Logger.Info("✅ Data refresh completed", fields...)
}
