package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/mmcdole/marquee/internal/adapter"
	"github.com/mmcdole/marquee/internal/adapter/source"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/cli"
	"github.com/mmcdole/marquee/internal/collection"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/store"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFs := afero.NewOsFs()
	configDir := adapter.DefaultConfigDir()

	// Load configuration
	cfg, err := adapter.LoadConfigFs(configFs, configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting marquee", "version", Version)

	// Open the collection store
	kv, err := store.Open(store.Driver(cfg.Storage.Driver), cfg.Storage.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to open collection store: %w", err)
	}
	defer kv.Close()

	// Share targets: configured command first, clipboard as fallback
	launcher := adapter.NewShareLauncher(cfg.Share.Command, cfg.Share.Args, logger)
	sharer := collection.NewSharer(launcher, adapter.Clipboard{}, cfg.Share.BaseURL)

	collections := collection.NewService(collection.NewStore(kv), sharer, logger)
	collections.Observe(func(name domain.CollectionName, items []domain.StoredItem) {
		logger.Debug("collection refreshed", "collection", name, "count", len(items))
	})

	app := &cli.App{
		Config:      cfg,
		ConfigFs:    configFs,
		ConfigDir:   configDir,
		Logger:      logger,
		Collections: collections,
		Images:      source.NewImages(&cfg.TMDB),
		Opener:      launcher,
	}

	// The catalog needs a token; without one only setup and collections work
	if cfg.IsConfigured() {
		client, err := source.NewClient(&cfg.TMDB, logger)
		if err != nil {
			return fmt.Errorf("failed to create catalog client: %w", err)
		}
		app.Catalog = catalog.NewService(client, logger)
	}

	cli.SetApp(app)
	cli.SetVersion(Version)
	return cli.Execute()
}
