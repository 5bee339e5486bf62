package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/clinic-tracker/internal/config"
	"github.com/jwalitptl/clinic-tracker/internal/email"
	attachmentHandler "github.com/jwalitptl/clinic-tracker/internal/handler/attachment"
	authHandler "github.com/jwalitptl/clinic-tracker/internal/handler/auth"
	"github.com/jwalitptl/clinic-tracker/internal/handler/catalog"
	clinicHandler "github.com/jwalitptl/clinic-tracker/internal/handler/clinic"
	"github.com/jwalitptl/clinic-tracker/internal/handler/health"
	notificationHandler "github.com/jwalitptl/clinic-tracker/internal/handler/notification"
	promHandler "github.com/jwalitptl/clinic-tracker/internal/handler/prometheus"
	taskHandler "github.com/jwalitptl/clinic-tracker/internal/handler/task"
	templateHandler "github.com/jwalitptl/clinic-tracker/internal/handler/template"
	userHandler "github.com/jwalitptl/clinic-tracker/internal/handler/user"
	"github.com/jwalitptl/clinic-tracker/internal/middleware"
	"github.com/jwalitptl/clinic-tracker/internal/repository/postgres"
	"github.com/jwalitptl/clinic-tracker/internal/router"
	"github.com/jwalitptl/clinic-tracker/internal/seed"
	"github.com/jwalitptl/clinic-tracker/internal/service/activity"
	"github.com/jwalitptl/clinic-tracker/internal/service/attachment"
	authService "github.com/jwalitptl/clinic-tracker/internal/service/auth"
	clinicService "github.com/jwalitptl/clinic-tracker/internal/service/clinic"
	"github.com/jwalitptl/clinic-tracker/internal/service/export"
	"github.com/jwalitptl/clinic-tracker/internal/service/note"
	"github.com/jwalitptl/clinic-tracker/internal/service/notification"
	taskService "github.com/jwalitptl/clinic-tracker/internal/service/task"
	templateService "github.com/jwalitptl/clinic-tracker/internal/service/template"
	userService "github.com/jwalitptl/clinic-tracker/internal/service/user"
	"github.com/jwalitptl/clinic-tracker/internal/storage"
	"github.com/jwalitptl/clinic-tracker/internal/worker"
	"github.com/jwalitptl/clinic-tracker/pkg/auth"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/logger"
	"github.com/jwalitptl/clinic-tracker/pkg/messaging"
	"github.com/jwalitptl/clinic-tracker/pkg/messaging/redis"
	"github.com/jwalitptl/clinic-tracker/pkg/metrics"
	"github.com/jwalitptl/clinic-tracker/pkg/security"
)

const bcryptCost = 12

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.SetGlobal(logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, db.DB); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry, cfg.Server.MetricsPrefix)

	clk := clock.New()
	hasher := security.NewBcryptHasher(bcryptCost)
	repos := postgres.NewRepositories(db)

	if err := seed.NewSeeder(repos.Users, repos.Clinics, hasher, cfg.Seed, clk).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	broker := newBroker(ctx, cfg, m)
	defer broker.Close()

	store, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	// Services
	activitySvc := activity.NewService(repos.Activity, clk)
	notificationSvc := notification.NewService(
		repos.Notifications, repos.Users, repos.Tasks, broker, email.NewService(cfg.SMTP), m, clk,
		notification.Options{
			WindowDays:   cfg.DueSoon.WindowDays,
			DedupeWindow: time.Duration(cfg.DueSoon.DedupeHours) * time.Hour,
			Channel:      cfg.Redis.Channel,
		},
	)
	authSvc := authService.NewService(repos.Users, auth.NewJWTService(cfg.Session.Secret, cfg.Session.TTL()), hasher, clk)
	userSvc := userService.NewService(repos.Users, hasher, clk)
	clinicSvc := clinicService.NewService(repos.Clinics, repos.Tasks, activitySvc, store, m, clk)
	taskSvc := taskService.NewService(repos.Tasks, repos.Clinics, repos.Notes, repos.Attachments, repos.Users, activitySvc, notificationSvc, m, clk)
	noteSvc := note.NewService(repos.Tasks, repos.Notes, repos.Users, activitySvc, notificationSvc, m, clk)
	attachmentSvc := attachment.NewService(repos.Tasks, repos.Attachments, store, activitySvc, m, clk)
	templateSvc := templateService.NewService(repos.Clinics, repos.Tasks, clk)
	exportSvc := export.NewService(repos.Clinics, repos.Tasks, repos.Users)

	// HTTP
	if err := middleware.RegisterValidators(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validators")
	}
	authMiddleware := middleware.NewAuthMiddleware(authSvc, middleware.AuthConfig{
		CookieName: cfg.Session.CookieName,
		UserTTL:    30 * time.Second,
	})
	securityCfg := middleware.DefaultSecurityConfig()
	securityCfg.HSTS = cfg.Session.SecureCookie
	sessions := authHandler.NewHandler(authSvc, authMiddleware, authHandler.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.SecureCookie,
	})

	r := router.NewRouter(
		authMiddleware,
		promHandler.New(registry, cfg.Server.MetricsPrefix),
		health.NewHandler(registry,
			health.PingCheck("database", db),
			health.Check{Name: "uploads", Probe: func(context.Context) error {
				_, err := os.Stat(cfg.Upload.Dir)
				return err
			}},
		),
		sessions,
		router.RouterConfig{
			Mode:           cfg.Server.Mode,
			RateLimit:      rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:      cfg.RateLimit.Burst,
			LoginPerMinute: cfg.RateLimit.LoginPerMinute,
			LoginBurst:     cfg.RateLimit.LoginBurst,
			Timeout:        time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
			CORSConfig:     middleware.DefaultCORSConfig(cfg.Server.AllowedOrigins),
			Security:       securityCfg,
		},
		sessions,
		catalog.NewHandler(),
		clinicHandler.NewHandler(clinicSvc, activitySvc, exportSvc),
		taskHandler.NewHandler(taskSvc, noteSvc),
		attachmentHandler.NewHandler(attachmentSvc, middleware.BodyLimit(cfg.Upload.MaxBytes)),
		notificationHandler.NewHandler(notificationSvc),
		userHandler.NewHandler(userSvc),
		templateHandler.NewHandler(templateSvc),
	)
	r.Setup()

	if cfg.DueSoon.Enabled {
		w := worker.NewDueSoonWorker(notificationSvc, repos.Settings, m, clk, cfg.DueSoon.Interval)
		go w.Start(ctx)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server exited properly")
}

// newBroker connects to redis when configured. Notifications are still
// written to inboxes without it.
func newBroker(ctx context.Context, cfg *config.Config, m *metrics.Metrics) messaging.Broker {
	if !cfg.Redis.Enabled() {
		return messaging.NewNopBroker()
	}
	broker, err := redis.NewRedisBroker(ctx, cfg.Redis.ToBrokerConfig(), logger.WithComponent(log.Logger, "broker"), m)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, notification events will not be published")
		return messaging.NewNopBroker()
	}
	return broker
}
