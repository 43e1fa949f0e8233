// Package server wires configuration, database, storage and HTTP transport
// into a runnable application with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btxcapital/site/internal/logging"
	"github.com/btxcapital/site/internal/server/config"
	"github.com/btxcapital/site/internal/server/repositories/repomanager"
	"github.com/btxcapital/site/internal/server/rest"
	"github.com/btxcapital/site/internal/server/services"
	"github.com/btxcapital/site/internal/server/storage"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
	auth    *services.AuthService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSONLogger()

	var db *sql.DB
	var manager repomanager.RepositoryManager

	if cfg.DatabaseDSN != "" {
		var err error
		db, err = sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}

		manager = repomanager.NewPostgresRepositoryManager()
		if err := manager.RunMigrations(ctx, db); err != nil {
			return nil, fmt.Errorf("migration error: %w", err)
		}
	} else {
		manager = repomanager.NewMemoryRepositoryManager()
	}

	store, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	authService := services.NewAuthService(db, manager, cfg)
	contactService := services.NewContactService(db, manager)
	newsService := services.NewNewsService(db, manager, store)

	opts := rest.RouterOptions{}
	if cfg.StorageKind == config.StorageLocal {
		opts.StaticDir = cfg.UploadDir
		opts.StaticPrefix = cfg.UploadURLPrefix
	}

	handler := rest.NewRouter(logger, authService, contactService, newsService, opts)

	return &App{config: cfg, logger: logger, db: db, handler: handler, auth: authService}, nil
}

func newStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageKind {
	case config.StorageS3:
		return storage.NewS3Storage(ctx, storage.S3Config{
			RootUser:     cfg.S3RootUser,
			RootPassword: cfg.S3RootPassword,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
	case config.StorageLocal:
		return storage.NewLocalStorage(cfg.UploadDir, cfg.UploadURLPrefix), nil
	default:
		return nil, fmt.Errorf("unknown storage kind: %q", cfg.StorageKind)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.auth.SeedAdmin(ctx, app.config.AdminUserName, app.config.AdminPassword); err != nil {
		return fmt.Errorf("admin seed error: %w", err)
	}

	srv := &http.Server{Addr: app.config.EndpointAddr, Handler: app.handler}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "HTTP server listening", "addr", app.config.EndpointAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		app.logger.Info(ctx, "Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "shutdown error", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}

	return nil
}
