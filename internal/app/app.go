// Package app wires the configuration, logger, metrics, stores and
// transport together and runs the process until shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/YDahdah/Nectar/internal/config"
	"github.com/YDahdah/Nectar/internal/notify"
	"github.com/YDahdah/Nectar/internal/repository"
	"github.com/YDahdah/Nectar/internal/service"
	httpt "github.com/YDahdah/Nectar/internal/transport/http"
	"github.com/YDahdah/Nectar/pkg/logger"
	"github.com/YDahdah/Nectar/pkg/metric"
	"github.com/YDahdah/Nectar/pkg/storage/postgres"

	"golang.org/x/sync/errgroup"
)

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(eg, &cfg.Metrics, log)

	store, db, storeErr := initSubscriberStore(cfg, log)
	if storeErr != nil {
		return storeErr
	}
	defer closeDB(db)

	mailer := initMailer(cfg, log)
	dispatcher := initDispatcher(cfg, mailer, log, metrics)

	orderService := service.NewOrderService(
		dispatcher,
		log.With("component", "order service"),
		metrics.Order(),
	)
	newsletterService := service.NewNewsletterService(
		store,
		mailer,
		cfg.Notify.OrderEmail,
		cfg.Notify.ShopName,
		log.With("component", "newsletter service"),
	)

	limiter, limiterErr := initRateLimiter(cfg, log, metrics)
	if limiterErr != nil {
		return limiterErr
	}

	if serverErr := initHTTPServer(
		ctx, eg, cfg,
		orderService, newsletterService,
		notify.NewEmailNotifier(mailer, cfg.Notify.OrderEmail),
		limiter, log, metrics,
	); serverErr != nil {
		return serverErr
	}

	return waitForShutdown(eg)
}

func initMetrics(
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory()

	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	metricsServer := &http.Server{
		Addr:              hostPort,
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})

	return metrics
}

// initSubscriberStore picks the newsletter store. The database handle is
// non-nil only for the postgres store and must be closed by the caller.
func initSubscriberStore(
	cfg *config.Config,
	log logger.Logger,
) (service.SubscriberStore, *postgres.Postgres, error) {
	if cfg.Newsletter.Store != config.StorePostgres {
		log.Infow("using in-memory newsletter store")
		return repository.NewMemorySubscriberStore(), nil, nil
	}

	db, err := postgres.NewPostgres(
		&cfg.Postgres,
		log.With("component", "database"),
		postgres.MaxPoolSize(cfg.Postgres.PoolMax),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("app.initSubscriberStore: %w", err)
	}

	log.Infow("using postgres newsletter store")
	return repository.NewPostgresSubscriberStore(db), db, nil
}

func closeDB(db *postgres.Postgres) {
	if db != nil {
		db.Close()
	}
}

func initMailer(cfg *config.Config, log logger.Logger) notify.Mailer {
	if !cfg.MailEnabled() {
		log.Warnw("SMTP credentials not configured, email notifications disabled")
		return notify.NewDisabledMailer()
	}

	mailer, err := notify.NewSMTPMailer(&cfg.SMTP, cfg.Notify.ShopName)
	if err != nil {
		log.Errorw("SMTP client creation failed, email notifications disabled", "error", err)
		return notify.NewDisabledMailer()
	}

	log.Infow("SMTP mailer configured", "host", cfg.SMTP.Host, "user", cfg.SMTP.User)
	return mailer
}

func initDispatcher(
	cfg *config.Config,
	mailer notify.Mailer,
	log logger.Logger,
	metrics metric.Factory,
) *notify.Dispatcher {
	return notify.NewDispatcher(
		notify.NewConsoleWhatsApp(log.With("component", "whatsapp")),
		notify.NewEmailNotifier(mailer, cfg.Notify.OrderEmail),
		cfg.Notify.OwnerPhone,
		log.With("component", "notifications"),
		metrics.Notification(),
	)
}

func initRateLimiter(
	cfg *config.Config,
	log logger.Logger,
	metrics metric.Factory,
) (*httpt.RateLimiter, error) {
	visits, err := httpt.NewVisitCache(
		cfg.RateLimit.CacheCapacity,
		log.With("component", "rate limiter"),
		metrics.Cache(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initRateLimiter: %w", err)
	}

	return httpt.NewRateLimiter(
		visits,
		&cfg.RateLimit,
		log.With("component", "rate limiter"),
		metrics.RateLimit(),
	), nil
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Config,
	orderService *service.OrderService,
	newsletterService *service.NewsletterService,
	email *notify.EmailNotifier,
	limiter *httpt.RateLimiter,
	log logger.Logger,
	metrics metric.Factory,
) error {
	handler := httpt.NewHandler(
		orderService,
		newsletterService,
		email,
		limiter,
		cfg,
		log,
		metrics.HTTP(),
	)

	httpServer, err := httpt.NewHTTPServer(handler, &cfg.HTTP, log.With("component", "http server"))
	if err != nil {
		return fmt.Errorf("app.initHTTPServer: %w", err)
	}

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
	return nil
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}
