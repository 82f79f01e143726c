package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	appName        = "marquee"
	configFileName = "config.yaml"
	envPrefix      = "MARQUEE"
)

// Config holds all application configuration
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Storage StorageConfig `mapstructure:"storage"`
	Share   ShareConfig   `mapstructure:"share"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds catalog API configuration
type TMDBConfig struct {
	BaseURL           string  `mapstructure:"base_url"`
	ImageBaseURL      string  `mapstructure:"image_base_url"`
	AccessToken       string  `mapstructure:"access_token"` // v4 read access token
	Language          string  `mapstructure:"language"`     // e.g. "en-US"; empty uses the API default
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

// StorageConfig selects the collection backend
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // "bolt", "sqlite" or "memory"
	Path   string `mapstructure:"path"`   // Directory for the database file
}

// ShareConfig holds the native share command
type ShareConfig struct {
	Command string   `mapstructure:"command"` // Empty falls back to the clipboard
	Args    []string `mapstructure:"args"`
	BaseURL string   `mapstructure:"base_url"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultView string `mapstructure:"default_view"` // Route path opened at startup
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL:           "https://api.themoviedb.org/3",
			ImageBaseURL:      "https://image.tmdb.org/t/p",
			RequestsPerSecond: 20,
		},
		Storage: StorageConfig{
			Driver: "bolt",
			Path:   defaultDataPath(),
		},
		Share: ShareConfig{
			Args:    []string{},
			BaseURL: "https://www.themoviedb.org",
		},
		UI: UIConfig{
			DefaultView: "/",
		},
		Logging: LoggingConfig{
			File:       filepath.Join(defaultDataPath(), appName+".log"),
			Level:      "INFO",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", appName)
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
}

// newViper builds a viper instance over fs with defaults and env overrides.
// Defaults are registered key by key so MARQUEE_* variables are honored
// by Unmarshal even when the file omits the key.
func newViper(fs afero.Fs, dir string) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setAll(DefaultConfig(), v.SetDefault)
	return v
}

func setAll(cfg *Config, set func(key string, value any)) {
	set("tmdb.base_url", cfg.TMDB.BaseURL)
	set("tmdb.image_base_url", cfg.TMDB.ImageBaseURL)
	set("tmdb.access_token", cfg.TMDB.AccessToken)
	set("tmdb.language", cfg.TMDB.Language)
	set("tmdb.requests_per_second", cfg.TMDB.RequestsPerSecond)

	set("storage.driver", cfg.Storage.Driver)
	set("storage.path", cfg.Storage.Path)

	set("share.command", cfg.Share.Command)
	set("share.args", cfg.Share.Args)
	set("share.base_url", cfg.Share.BaseURL)

	set("ui.default_view", cfg.UI.DefaultView)

	set("logging.file", cfg.Logging.File)
	set("logging.level", cfg.Logging.Level)
	set("logging.max_size_mb", cfg.Logging.MaxSizeMB)
	set("logging.max_backups", cfg.Logging.MaxBackups)
}

// LoadConfig loads configuration from the default location and environment
func LoadConfig() (*Config, error) {
	return LoadConfigFs(afero.NewOsFs(), DefaultConfigDir())
}

// LoadConfigFs loads dir/config.yaml from fs. A missing file is not an error.
func LoadConfigFs(fs afero.Fs, dir string) (*Config, error) {
	v := newViper(fs, dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to the default location
func SaveConfig(cfg *Config) error {
	return SaveConfigFs(afero.NewOsFs(), DefaultConfigDir(), cfg)
}

// SaveConfigFs writes cfg to dir/config.yaml on fs
func SaveConfigFs(fs afero.Fs, dir string, cfg *Config) error {
	v := viper.New()
	v.SetFs(fs)
	setAll(cfg, v.Set)
	return writeConfig(fs, v, dir)
}

// SaveToken updates just the access token in the default config file
func SaveToken(token string) error {
	return SaveTokenFs(afero.NewOsFs(), DefaultConfigDir(), token)
}

// SaveTokenFs updates just the access token, preserving other settings
func SaveTokenFs(fs afero.Fs, dir, token string) error {
	cfg, err := LoadConfigFs(fs, dir)
	if err != nil {
		return err
	}
	cfg.TMDB.AccessToken = token
	return SaveConfigFs(fs, dir, cfg)
}

func writeConfig(fs afero.Fs, v *viper.Viper, dir string) error {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	configFile := filepath.Join(dir, configFileName)
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// IsConfigured returns true if a TMDB access token is set
func (c *Config) IsConfigured() bool {
	return c.TMDB.AccessToken != ""
}

// ConfigFilePath returns the config file path under dir
func ConfigFilePath(dir string) string {
	return filepath.Join(dir, configFileName)
}
