package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/vadimbarashkov/short-url/internal/adapter/repository/memory"
	"github.com/vadimbarashkov/short-url/internal/adapter/repository/postgres"
	"github.com/vadimbarashkov/short-url/internal/config"
	"github.com/vadimbarashkov/short-url/internal/registry"
	"github.com/vadimbarashkov/short-url/internal/shortcode"
	"github.com/vadimbarashkov/short-url/internal/usecase"
	"golang.org/x/sync/errgroup"

	deliveryHTTP "github.com/vadimbarashkov/short-url/internal/adapter/delivery/http"
	pgkit "github.com/vadimbarashkov/short-url/pkg/postgres"
)

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	httpLogger, err := newHTTPLogger(cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to create logger: %w", op, err)
	}
	logger := newAppLogger(httpLogger, cfg.Log)

	logger.Info("starting short url service",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
	)

	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer closeStore()

	reg := registry.New(
		store,
		shortcode.New(cfg.ShortCode.Length, cfg.ShortCode.Charset),
		registry.WithTimeout(cfg.Registry.Timeout),
		registry.WithMaxAttempts(cfg.Registry.MaxAttempts),
	)
	urlUseCase := usecase.New(reg, logger)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        deliveryHTTP.NewRouter(httpLogger, urlUseCase),
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		logger.Info("server is running", slog.String("addr", server.Addr))

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		logger.Info("server stopped")

		return nil
	})

	return g.Wait()
}

// newStore builds the registry store selected by cfg.Storage.Driver.
// The returned func releases its resources.
func newStore(ctx context.Context, cfg *config.Config) (registry.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return memory.NewURLRepository(), func() {}, nil
	case config.StoragePostgres:
		db, err := pgkit.New(
			ctx,
			cfg.Postgres.DSN(),
			pgkit.WithConnectTimeout(cfg.Postgres.ConnectTimeout),
			pgkit.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
			pgkit.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
			pgkit.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
			pgkit.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := pgkit.RunMigrations(cfg.Postgres.MigrationsPath, cfg.Postgres.DSN()); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		return postgres.NewURLRepository(db), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
