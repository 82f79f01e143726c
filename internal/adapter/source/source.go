package source

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/marquee/internal/adapter"
	"github.com/mmcdole/marquee/internal/adapter/source/tmdb"
)

// NewClient creates the catalog client from the application config
func NewClient(cfg *adapter.TMDBConfig, logger *slog.Logger) (*tmdb.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("tmdb config is nil")
	}
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("tmdb access token is required (run `marquee setup`)")
	}

	return tmdb.NewClient(tmdb.Options{
		BaseURL:           cfg.BaseURL,
		AccessToken:       cfg.AccessToken,
		Language:          cfg.Language,
		RequestsPerSecond: cfg.RequestsPerSecond,
	}, logger), nil
}

// NewImages returns the artwork URL builder for the configured CDN
func NewImages(cfg *adapter.TMDBConfig) tmdb.Images {
	return tmdb.NewImages(cfg.ImageBaseURL)
}
