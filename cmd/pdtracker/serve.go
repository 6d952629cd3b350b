package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/09608249-WELS/pdtracker-admin/internal/certificate"
	"github.com/09608249-WELS/pdtracker-admin/internal/handler"
	"github.com/09608249-WELS/pdtracker-admin/internal/repository"
	"github.com/09608249-WELS/pdtracker-admin/internal/router"
	"github.com/09608249-WELS/pdtracker-admin/internal/service"
	"github.com/09608249-WELS/pdtracker-admin/pkg/cache"
	"github.com/09608249-WELS/pdtracker-admin/pkg/config"
	"github.com/09608249-WELS/pdtracker-admin/pkg/database"
	"github.com/09608249-WELS/pdtracker-admin/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()
	if cfg.Database.RunMigrations {
		if err := database.RunMigrations(db.DB, logr); err != nil {
			return err
		}
	}

	metrics := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Lookups.CacheEnabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, lookup cache disabled", zap.Error(err))
		} else {
			cacheRepo := repository.NewCacheRepository(client, logr)
			defer cacheRepo.Close() //nolint:errcheck
			cacheSvc = service.NewCacheService(cacheRepo, metrics, cfg.Lookups.CacheTTL, logr, true)
		}
	}

	renderer, err := certificate.NewRenderer(certificate.RendererConfig{
		Kind:      cfg.Certificates.Renderer,
		ChromeBin: cfg.Certificates.ChromeBin,
		Sandbox:   cfg.Certificates.ChromeSandbox,
	}, logr)
	if err != nil {
		return err
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			logr.Warn("close certificate renderer", zap.Error(err))
		}
	}()

	validate := service.NewValidator()
	recordRepo := repository.NewPDRecordRepository(db)
	lookupSvc := service.NewLookupService(repository.NewLookupRepository(db), cacheSvc, cfg.Lookups.CacheTTL, logr)
	// Reference tables may have changed since the cache was written.
	lookupSvc.Invalidate(ctx)

	engine := router.New(cfg, logr, metrics, router.Handlers{
		Records: handler.NewPDRecordHandler(
			service.NewPDRecordService(recordRepo, validate, logr),
			service.NewCertificateService(recordRepo, renderer, cfg.Certificates, metrics, logr),
			service.NewExportService(recordRepo, cfg.Export, metrics, logr),
		),
		Staff:   handler.NewStaffHandler(service.NewStaffService(repository.NewStaffRepository(db), validate, logr)),
		Lookups: handler.NewLookupHandler(lookupSvc),
		Metrics: handler.NewMetricsHandler(metrics, lookupSvc),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logr.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
