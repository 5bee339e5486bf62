package worker

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository/mocks"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
	"github.com/jwalitptl/clinic-tracker/pkg/metrics"
)

type countingSweeper struct {
	mu   sync.Mutex
	days []model.Date
	err  error
}

func (s *countingSweeper) SweepDueSoon(ctx context.Context, today model.Date) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.days = append(s.days, today)
	return 2, s.err
}

func (s *countingSweeper) runs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.days)
}

func memorySettings() *mocks.SettingRepositoryMock {
	values := map[string]string{}
	return &mocks.SettingRepositoryMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			v, ok := values[key]
			if !ok {
				return "", errors.NotFound("setting", nil)
			}
			return v, nil
		},
		SetFunc: func(ctx context.Context, key, value string) error {
			values[key] = value
			return nil
		},
	}
}

func TestRunOnceAtMostOncePerDay(t *testing.T) {
	clk := clock.NewManaged(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	sweeper := &countingSweeper{}
	settings := memorySettings()
	m := metrics.NewNop()
	w := NewDueSoonWorker(sweeper, settings, m, clk, time.Hour)

	ran, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, ran)

	clk.WarpForward(3 * time.Hour)
	ran, err = w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.False(t, ran)

	clk.WarpForward(24 * time.Hour)
	ran, err = w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, ran)

	require.Len(t, sweeper.days, 2)
	assert.Equal(t, "2025-06-01", sweeper.days[0].String())
	assert.Equal(t, "2025-06-02", sweeper.days[1].String())

	v, err := settings.Get(context.Background(), model.SettingDueSoonLastRun)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", v)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.DueSoonSweeps.WithLabelValues("ran")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DueSoonSweeps.WithLabelValues("skipped")))
}

func TestRunOnceFailureDoesNotRecordDate(t *testing.T) {
	clk := clock.NewManaged(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	sweeper := &countingSweeper{err: stderrors.New("db down")}
	settings := memorySettings()
	w := NewDueSoonWorker(sweeper, settings, metrics.NewNop(), clk, time.Hour)

	_, err := w.RunOnce(context.Background())
	assert.Error(t, err)
	assert.Empty(t, settings.SetCalls())

	sweeper.err = nil
	ran, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestStartRunsImmediatelyAndStops(t *testing.T) {
	clk := clock.NewManaged(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	sweeper := &countingSweeper{}
	w := NewDueSoonWorker(sweeper, memorySettings(), metrics.NewNop(), clk, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return sweeper.runs() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
