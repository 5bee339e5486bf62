package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
	"github.com/jwalitptl/clinic-tracker/pkg/metrics"
)

// Sweeper creates due-soon notifications for every assignee.
type Sweeper interface {
	SweepDueSoon(ctx context.Context, today model.Date) (int, error)
}

// DueSoonWorker runs the due-soon sweep at most once per calendar day. The
// date of the last completed run is kept in app_settings so restarts do not
// repeat it.
type DueSoonWorker struct {
	sweeper  Sweeper
	settings repository.SettingRepository
	metrics  *metrics.Metrics
	clock    clock.Clock
	interval time.Duration
}

func NewDueSoonWorker(sweeper Sweeper, settings repository.SettingRepository, m *metrics.Metrics, clk clock.Clock, interval time.Duration) *DueSoonWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &DueSoonWorker{
		sweeper:  sweeper,
		settings: settings,
		metrics:  m,
		clock:    clk,
		interval: interval,
	}
}

// Start runs once immediately and then on every tick until ctx is done.
func (w *DueSoonWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *DueSoonWorker) tick(ctx context.Context) {
	if _, err := w.RunOnce(ctx); err != nil {
		log.Error().Err(err).Msg("Due-soon sweep failed")
	}
}

// RunOnce sweeps unless today's run already happened. It reports whether a
// sweep ran.
func (w *DueSoonWorker) RunOnce(ctx context.Context) (bool, error) {
	today := model.DateOf(w.clock.Now())

	last, err := w.settings.Get(ctx, model.SettingDueSoonLastRun)
	if err != nil && !errors.IsNotFound(err) {
		w.metrics.DueSoonSweeps.WithLabelValues("failed").Inc()
		return false, fmt.Errorf("failed to read last sweep date: %w", err)
	}
	if last == today.String() {
		w.metrics.DueSoonSweeps.WithLabelValues("skipped").Inc()
		return false, nil
	}

	start := time.Now()
	sent, err := w.sweeper.SweepDueSoon(ctx, today)
	w.metrics.SweepDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		w.metrics.DueSoonSweeps.WithLabelValues("failed").Inc()
		return false, fmt.Errorf("failed to sweep due-soon tasks: %w", err)
	}

	if err := w.settings.Set(ctx, model.SettingDueSoonLastRun, today.String()); err != nil {
		w.metrics.DueSoonSweeps.WithLabelValues("failed").Inc()
		return true, fmt.Errorf("failed to record sweep date: %w", err)
	}

	w.metrics.DueSoonSweeps.WithLabelValues("ran").Inc()
	log.Info().Str("date", today.String()).Int("notifications", sent).Msg("Due-soon sweep completed")
	return true, nil
}
