package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"assistmenow/internal/config"
	"assistmenow/internal/httpserver"
	"assistmenow/internal/logging"
	authsvc "assistmenow/internal/service/auth"
	deliverysvc "assistmenow/internal/service/delivery"
	hampersvc "assistmenow/internal/service/hamper"
	recipientsvc "assistmenow/internal/service/recipient"
	reportsvc "assistmenow/internal/service/report"
	usersvc "assistmenow/internal/service/user"
	"assistmenow/internal/store"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	stores, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer stores.Close()

	if cfg.SeedOnStart {
		if err := stores.Seed(ctx, logger); err != nil {
			logger.Fatal("seed store", zap.Error(err))
		}
	}

	deliveryService := deliverysvc.New(stores.Deliveries, deliverysvc.WithStrictTransitions(cfg.StrictDeliveryTransitions))
	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		RecipientSvc:   recipientsvc.New(stores.Recipients),
		HamperSvc:      hampersvc.New(stores.Hampers),
		DeliverySvc:    deliveryService,
		ReportSvc:      reportsvc.New(stores.Deliveries, stores.Recipients, stores.Hampers),
		AuthSvc:        authsvc.New(stores.Users, stores.Sessions, cfg.SessionTTL),
		UserSvc:        usersvc.New(stores.Users),
		Ready:          stores.Ready,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}
