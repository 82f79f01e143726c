package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mmcdole/marquee/internal/domain"
)

// Driver selects the key-value backend
type Driver string

const (
	DriverBolt   Driver = "bolt"
	DriverSQLite Driver = "sqlite"
	DriverMemory Driver = "memory"
)

// Open creates the configured key-value store under dir.
// An empty driver defaults to bolt; memory ignores dir.
func Open(driver Driver, dir string, logger *slog.Logger) (domain.KeyValueStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch driver {
	case DriverMemory:
		logger.Debug("opening memory store")
		return NewBoltStore("")
	case "", DriverBolt:
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		path := filepath.Join(dir, "marquee.db")
		logger.Debug("opening bolt store", "path", path)
		return NewBoltStore(path)
	case DriverSQLite:
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		path := filepath.Join(dir, "marquee.sqlite")
		logger.Debug("opening sqlite store", "path", path)
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", driver)
	}
}
