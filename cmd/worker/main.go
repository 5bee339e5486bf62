package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-tracker/internal/config"
	"github.com/jwalitptl/clinic-tracker/internal/email"
	"github.com/jwalitptl/clinic-tracker/internal/repository/postgres"
	"github.com/jwalitptl/clinic-tracker/internal/service/notification"
	"github.com/jwalitptl/clinic-tracker/internal/worker"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/logger"
	"github.com/jwalitptl/clinic-tracker/pkg/messaging"
	"github.com/jwalitptl/clinic-tracker/pkg/messaging/redis"
	"github.com/jwalitptl/clinic-tracker/pkg/metrics"
)

// The worker runs the due-soon sweep on its own, for deployments that set
// due_soon.enabled=false on the API processes.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.SetGlobal(logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty}))
	wlog := logger.WithComponent(log.Logger, "due-soon-worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(ctx, cfg.Database)
	if err != nil {
		wlog.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry, cfg.Server.MetricsPrefix)

	var broker messaging.Broker = messaging.NewNopBroker()
	if cfg.Redis.Enabled() {
		rb, err := redis.NewRedisBroker(ctx, cfg.Redis.ToBrokerConfig(), logger.WithComponent(log.Logger, "broker"), m)
		if err != nil {
			wlog.Warn().Err(err).Msg("redis unavailable, notification events will not be published")
		} else {
			broker = rb
		}
	}
	defer broker.Close()

	clk := clock.New()
	repos := postgres.NewRepositories(db)
	notifier := notification.NewService(
		repos.Notifications, repos.Users, repos.Tasks, broker, email.NewService(cfg.SMTP), m, clk,
		notification.Options{
			WindowDays:   cfg.DueSoon.WindowDays,
			DedupeWindow: time.Duration(cfg.DueSoon.DedupeHours) * time.Hour,
			Channel:      cfg.Redis.Channel,
		},
	)

	srv := setupHealthCheck(cfg.DueSoon.HealthPort, db, registry)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			wlog.Error().Err(err).Msg("health check server failed")
			stop()
		}
	}()

	wlog.Info().
		Dur("interval", cfg.DueSoon.Interval).
		Int("window_days", cfg.DueSoon.WindowDays).
		Msg("starting worker")

	w := worker.NewDueSoonWorker(notifier, repos.Settings, m, clk, cfg.DueSoon.Interval)
	w.Start(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		wlog.Error().Err(err).Msg("health check server shutdown failed")
	}
	wlog.Info().Msg("worker stopped")
}

func setupHealthCheck(port int, db *sqlx.DB, gatherer prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
