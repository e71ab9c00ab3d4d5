package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"paybox/internal/config"
	"paybox/internal/repository"
	"paybox/internal/service"
	httpt "paybox/internal/transport/http"
	kafkat "paybox/internal/transport/kafka"
	"paybox/pkg/cache"
	"paybox/pkg/kafka"
	"paybox/pkg/kafka/publisher"
	"paybox/pkg/logger"
	"paybox/pkg/metric"
	"paybox/pkg/storage/postgres"
	"paybox/pkg/storage/postgres/transaction"

	"golang.org/x/sync/errgroup"
)

const _metricsShutdownTimeout = 5 * time.Second

type repositories struct {
	orders    *repository.OrderRepository
	items     *repository.ItemRepository
	addresses *repository.AddressRepository
	settings  *repository.SettingRepository
}

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(ctx, eg, &cfg.Metrics, log)

	db, dbErr := initDatabase(&cfg.Postgres, cfg.App.Name, log)
	if dbErr != nil {
		return dbErr
	}
	defer closeDB(db)

	txManager, txErr := initTransactionManager(&cfg.Postgres, db, log, metrics)
	if txErr != nil {
		return txErr
	}

	repos := repositories{
		orders:    repository.NewOrderRepository(db),
		items:     repository.NewItemRepository(db),
		addresses: repository.NewAddressRepository(db),
		settings:  repository.NewSettingRepository(db),
	}

	settingsCache, cacheErr := initCache(&cfg.Cache, log, metrics)
	if cacheErr != nil {
		return cacheErr
	}
	defer settingsCache.StopCleanup()

	settings := service.NewSettingsService(
		repos.settings,
		log.With("component", "settings"),
		settingsCache,
		cfg.Cache.TTL,
	)
	if err := settings.Warmup(ctx); err != nil {
		log.Errorw("failed to warm up settings cache", "error", err)
	}

	events, pubErr := initPublisher(&cfg.Notifier, log, metrics)
	if pubErr != nil {
		return pubErr
	}
	defer closePublisher(events, log)

	handler, handlerErr := initPaymentHandler(cfg, repos, settings, txManager, events, log, metrics)
	if handlerErr != nil {
		return handlerErr
	}

	if serverErr := initHTTPServer(ctx, eg, &cfg.HTTP, handler, log); serverErr != nil {
		return serverErr
	}

	return waitForShutdown(eg)
}

func initMetrics(
	ctx context.Context,
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

	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), _metricsShutdownTimeout)
		defer cancel()
		return metricsServer.Shutdown(shutdownCtx)
	})

	return metrics
}

func initDatabase(cfg *config.Postgres, appName string, log logger.Logger) (*postgres.Postgres, error) {
	db, err := postgres.NewPostgres(
		cfg,
		log.With("component", "database"),
		postgres.MaxPoolSize(cfg.PoolMax),
		postgres.MaxConnAttempts(cfg.ConnAttempts),
		postgres.BaseRetryDelay(cfg.BaseRetryDelay),
		postgres.MaxRetryDelay(cfg.MaxRetryDelay),
		postgres.PingTimeout(cfg.PingTimeout),
		postgres.ApplicationName(appName),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initDatabase: %w", err)
	}
	return db, nil
}

func closeDB(db *postgres.Postgres) {
	if db != nil {
		db.Close()
	}
}

func initTransactionManager(
	cfg *config.Postgres,
	db *postgres.Postgres,
	log logger.Logger,
	metrics metric.Factory,
) (transaction.Manager, error) {
	txManager, err := transaction.NewManager(
		db,
		log.With("component", "transaction manager"),
		metrics.Transaction(),
		transaction.IsolationLevel(cfg.TxIsolation),
		transaction.MaxAttempts(cfg.TxMaxAttempts),
		transaction.BaseRetryDelay(cfg.TxBaseRetryDelay),
		transaction.MaxRetryDelay(cfg.TxMaxRetryDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initTransactionManager: %w", err)
	}
	return txManager, nil
}

func initCache(
	cfg *config.Cache,
	log logger.Logger,
	metrics metric.Factory,
) (*cache.LRUCache[string, string], error) {
	settingsCache, err := cache.NewLRUCache[string, string](
		"settings",
		cfg.Capacity,
		log.With("component", "cache"),
		metrics.Cache(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initCache: %w", err)
	}
	settingsCache.StartCleanup(cfg.CleanupInterval)
	return settingsCache, nil
}

func initPublisher(
	cfg *config.Notifier,
	log logger.Logger,
	metrics metric.Factory,
) (*publisher.Publisher, error) {
	writer, err := kafka.NewKafkaWriter(*cfg, cfg.Topic, log.With("component", "kafka writer"))
	if err != nil {
		return nil, fmt.Errorf("app.initPublisher: notifications writer: %w", err)
	}

	deadLetter, err := kafka.NewKafkaWriter(*cfg, cfg.DLQTopic, log.With("component", "kafka dlq writer"))
	if err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("app.initPublisher: dead letter writer: %w", err)
	}

	events, err := publisher.NewPublisher(
		writer,
		deadLetter,
		cfg.Topic,
		cfg.DLQTopic,
		log.With("component", "publisher"),
		metrics.Publisher(),
		publisher.MaxAttempts(cfg.MaxAttempts),
		publisher.BaseRetryDelay(cfg.BaseRetryDelay),
		publisher.MaxRetryDelay(cfg.MaxRetryDelay),
	)
	if err != nil {
		_ = writer.Close()
		_ = deadLetter.Close()
		return nil, fmt.Errorf("app.initPublisher: %w", err)
	}
	return events, nil
}

func closePublisher(events *publisher.Publisher, log logger.Logger) {
	if err := events.Close(); err != nil {
		log.Errorw("failed to close event publisher", "error", err)
	}
}

func initPaymentHandler(
	cfg *config.Config,
	repos repositories,
	settings *service.SettingsService,
	txManager transaction.Manager,
	events *publisher.Publisher,
	log logger.Logger,
	metrics metric.Factory,
) (*httpt.PaymentHandler, error) {
	payment := metrics.Payment()

	currency := service.NewCurrencyResolver(
		repository.NewCurrencyListClient(cfg.Paybox.CurrencyListURL, cfg.Paybox.CurrencyTimeout),
		repository.NewCurrencyFileStore(cfg.Paybox.CurrencyCachePath),
		log.With("component", "currency"),
		payment,
	)

	orders := service.NewOrderLoader(
		repos.orders,
		repos.items,
		repos.addresses,
		log.With("component", "order loader"),
	)

	builder := service.NewRequestBuilder(
		settings,
		orders,
		repos.orders,
		currency,
		log.With("component", "request builder"),
		payment,
	)

	eligibility := service.NewEligibilityChecker(
		settings,
		repos.orders,
		log.With("component", "eligibility"),
	)

	keys := service.NewFilePublicKeySource(cfg.Paybox.PublicKeyPath)
	if _, err := keys.PublicKey(); err != nil {
		log.Warnw("paybox public key is not readable, notifications will be rejected until it is provided",
			"path", keys.Path(),
			"error", err,
		)
	}

	notifications := service.NewNotificationService(
		keys,
		repos.orders,
		txManager,
		settings,
		kafkat.NewNotifier(events, log.With("component", "notifier")),
		log.With("component", "notification service"),
		payment,
	)

	handler, err := httpt.NewPaymentHandler(
		builder,
		eligibility,
		notifications,
		settings,
		httpt.Redirects{
			OrderPlacedURL: cfg.Paybox.OrderPlacedURL,
			OrderFailedURL: cfg.Paybox.OrderFailedURL,
		},
		cfg.Paybox.TrustedProxies,
		log.With("component", "http"),
		metrics.HTTP(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initPaymentHandler: %w", err)
	}
	return handler, nil
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.HTTP,
	handler *httpt.PaymentHandler,
	log logger.Logger,
) error {
	httpServer, err := httpt.NewHTTPServer(
		handler,
		cfg,
		log.With("component", "http server"),
	)
	if err != nil {
		return fmt.Errorf("app.initHTTPServer: %w", err)
	}

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
	return nil
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil && !isShutdownSignal(err) {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}

func isShutdownSignal(err error) bool {
	return errors.Is(err, context.Canceled)
}
