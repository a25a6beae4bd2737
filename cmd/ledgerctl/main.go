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

	"github.com/bibbank/gic-ledger/internal/application/usecase"
	"github.com/bibbank/gic-ledger/internal/domain/port"
	"github.com/bibbank/gic-ledger/internal/domain/service"
	"github.com/bibbank/gic-ledger/internal/infrastructure/config"
	"github.com/bibbank/gic-ledger/internal/infrastructure/memory"
	"github.com/bibbank/gic-ledger/internal/infrastructure/messaging"
	"github.com/bibbank/gic-ledger/internal/presentation/cli"
	"github.com/bibbank/gic-ledger/internal/presentation/rest"
	kafkapkg "github.com/bibbank/gic-ledger/pkg/kafka"
	"github.com/bibbank/gic-ledger/pkg/observability"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ledgerctl:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger (stderr, so statements on stdout stay clean)
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	logger.Info("starting "+cfg.ServiceName,
		"http_port", cfg.HTTPPort,
		"rounding", cfg.Rounding.String(),
		"kafka_enabled", len(cfg.Kafka.Brokers) > 0,
	)

	// Initialize metrics
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("initializing metrics: %w", err)
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			logger.Warn("metrics shutdown", "error", err)
		}
	}()

	// Event publishing: Kafka when brokers are configured, the log otherwise
	readiness := map[string]rest.ReadinessCheck{
		"ledger": func(context.Context) error { return nil },
	}

	var publisher port.EventPublisher = messaging.NewLogPublisher(logger)
	kafkaCfg := kafkapkg.Config{
		Brokers:       cfg.Kafka.Brokers,
		TLS:           cfg.Kafka.TLS,
		TLSCAFile:     cfg.Kafka.TLSCAFile,
		TLSCertFile:   cfg.Kafka.TLSCertFile,
		TLSKeyFile:    cfg.Kafka.TLSKeyFile,
		SASLEnabled:   cfg.Kafka.SASLEnabled,
		SASLMechanism: cfg.Kafka.SASLMechanism,
		SASLUsername:  cfg.Kafka.SASLUsername,
		SASLPassword:  cfg.Kafka.SASLPassword,
	}
	if kafkaCfg.Enabled() {
		producer, err := kafkapkg.NewProducer(kafkaCfg)
		if err != nil {
			return fmt.Errorf("initializing kafka producer: %w", err)
		}
		kafkaPublisher := messaging.NewKafkaPublisher(producer, cfg.Kafka.TopicPrefix, logger)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Warn("closing kafka publisher", "error", err)
			}
		}()
		publisher = kafkaPublisher
		readiness["kafka"] = producer.Ping
	}

	publisher, err = messaging.NewMetricsPublisher(publisher, meterProvider.Meter(cfg.ServiceName))
	if err != nil {
		return fmt.Errorf("initializing event metrics: %w", err)
	}

	// Wire dependencies (DI via constructors)
	accountRepo := memory.NewAccountRepository()
	ruleRepo := memory.NewInterestRuleRepository()
	accrualEngine := service.NewAccrualEngine(cfg.Rounding)

	// Use cases
	recordTransactionUC := usecase.NewRecordTransaction(accountRepo, publisher)
	listTransactionsUC := usecase.NewListTransactions(accountRepo)
	defineInterestRuleUC := usecase.NewDefineInterestRule(ruleRepo, publisher)
	listInterestRulesUC := usecase.NewListInterestRules(ruleRepo)
	generateStatementUC := usecase.NewGenerateStatement(accountRepo, ruleRepo, publisher, accrualEngine)

	shell := cli.NewShell(
		recordTransactionUC,
		listTransactionsUC,
		defineInterestRuleUC,
		listInterestRulesUC,
		generateStatementUC,
		os.Stdin,
		os.Stdout,
		logger,
	)

	errCh := make(chan error, 2)
	done := make(chan struct{})

	// HTTP server (health checks + metrics), only when a port is configured
	var httpServer *http.Server
	if cfg.HTTPPort > 0 {
		healthHandler := rest.NewHealthHandler(cfg.ServiceName, readiness, logger)
		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:           rest.NewRouter(healthHandler, metricsHandler),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("HTTP server starting", "port", cfg.HTTPPort)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	go func() {
		if err := shell.Run(ctx); err != nil {
			errCh <- err
			return
		}
		close(done)
	}()

	// Wait for the session to end
	var runErr error
	select {
	case <-done:
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			logger.Error("ledgerctl error", "error", err)
			runErr = err
		}
	}

	// Graceful shutdown
	if httpServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP server shutdown", "error", err)
		}
	}
	if accounts, err := accountRepo.List(context.Background()); err == nil {
		logger.Info(cfg.ServiceName+" stopped", "accounts", len(accounts))
	}
	return runErr
}
