package source

import (
	"context"
	"log/slog"

	"github.com/mmcdole/marquee/internal/adapter"
	"github.com/mmcdole/marquee/internal/adapter/source/tmdb"
)

// ValidateToken checks token against the configured API before it is saved
func ValidateToken(ctx context.Context, cfg adapter.TMDBConfig, token string, logger *slog.Logger) error {
	client := tmdb.NewClient(tmdb.Options{
		BaseURL:     cfg.BaseURL,
		AccessToken: token,
	}, logger)
	return client.Authenticate(ctx)
}
