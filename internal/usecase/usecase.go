package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vadimbarashkov/short-url/internal/entity"
)

// ErrNoLongURL is returned when a shorten request carries no long URL.
var ErrNoLongURL = fmt.Errorf("%w: no long url provided", entity.ErrValidation)

type urlRegistry interface {
	ExistsByLongURL(ctx context.Context, longURL string) (bool, error)
	Create(ctx context.Context, longURL string, name *string) (*entity.URLMapping, error)
	ListAll(ctx context.Context) ([]entity.URLMapping, error)
}

type URLUseCase struct {
	registry urlRegistry
	logger   *slog.Logger
}

func New(registry urlRegistry, logger *slog.Logger) *URLUseCase {
	if logger == nil {
		logger = slog.Default()
	}

	return &URLUseCase{
		registry: registry,
		logger:   logger,
	}
}

// ShortenURL creates a mapping for longURL unless one already exists.
//
// The existence check and the insert are two separate store calls, so two
// concurrent requests for the same long URL may both succeed.
func (uc *URLUseCase) ShortenURL(ctx context.Context, longURL string, name *string) (*entity.URLMapping, error) {
	const op = "usecase.URLUseCase.ShortenURL"

	uc.logger.Debug("received long url", slog.String("op", op), slog.String("long_url", longURL))

	if longURL == "" {
		uc.logger.Warn("no long url provided", slog.String("op", op))
		return nil, fmt.Errorf("%s: %w", op, ErrNoLongURL)
	}

	exists, err := uc.registry.ExistsByLongURL(ctx, longURL)
	if err != nil {
		uc.logger.Error("failed to check long url existence", slog.String("op", op), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w: %w", op, entity.ErrInternal, err)
	}

	if exists {
		uc.logger.Info("url already exists", slog.String("op", op), slog.String("long_url", longURL))
		return nil, fmt.Errorf("%s: %w", op, entity.ErrConflict)
	}

	url, err := uc.registry.Create(ctx, longURL, name)
	if err != nil {
		uc.logger.Error("failed to create short url", slog.String("op", op), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w: %w", op, entity.ErrInternal, err)
	}

	uc.logger.Info("short url created",
		slog.String("op", op),
		slog.Int64("id", url.ID),
		slog.String("short_url", url.ShortURL),
	)

	return url, nil
}

// ListURLs returns every stored mapping.
func (uc *URLUseCase) ListURLs(ctx context.Context) ([]entity.URLMapping, error) {
	const op = "usecase.URLUseCase.ListURLs"

	urls, err := uc.registry.ListAll(ctx)
	if err != nil {
		uc.logger.Error("failed to fetch urls", slog.String("op", op), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w: %w", op, entity.ErrInternal, err)
	}

	uc.logger.Debug("fetched urls", slog.String("op", op), slog.Int("count", len(urls)))

	return urls, nil
}
