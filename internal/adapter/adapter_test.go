package adapter

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/marquee/internal/domain"
)

const testDir = "/home/test/.config/marquee"

func TestLoadConfigFs_DefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfigFs(afero.NewMemMapFs(), testDir)
	require.NoError(t, err)

	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "bolt", cfg.Storage.Driver)
	assert.Equal(t, "https://www.themoviedb.org", cfg.Share.BaseURL)
	assert.Equal(t, "/", cfg.UI.DefaultView)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.False(t, cfg.IsConfigured())
}

func TestLoadConfigFs_ReadsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testDir, 0755))
	yaml := `
tmdb:
  access_token: secret
  language: fr-FR
  requests_per_second: 5
storage:
  driver: sqlite
share:
  command: termux-share
  args: ["-a", "send", "{text} {url}"]
`
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := LoadConfigFs(fs, testDir)
	require.NoError(t, err)

	assert.True(t, cfg.IsConfigured())
	assert.Equal(t, "secret", cfg.TMDB.AccessToken)
	assert.Equal(t, "fr-FR", cfg.TMDB.Language)
	assert.InDelta(t, 5.0, cfg.TMDB.RequestsPerSecond, 0.001)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "termux-share", cfg.Share.Command)
	assert.Equal(t, []string{"-a", "send", "{text} {url}"}, cfg.Share.Args)
	// Unset keys keep their defaults
	assert.Equal(t, "https://image.tmdb.org/t/p", cfg.TMDB.ImageBaseURL)
}

func TestLoadConfigFs_EnvOverride(t *testing.T) {
	t.Setenv("MARQUEE_TMDB_ACCESS_TOKEN", "from-env")
	t.Setenv("MARQUEE_STORAGE_DRIVER", "memory")

	cfg, err := LoadConfigFs(afero.NewMemMapFs(), testDir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.TMDB.AccessToken)
	assert.Equal(t, "memory", cfg.Storage.Driver)
}

func TestLoadConfigFs_MalformedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testDir, 0755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, "config.yaml"), []byte("tmdb: [unclosed"), 0644))

	_, err := LoadConfigFs(fs, testDir)
	assert.Error(t, err)
}

func TestSaveConfigFs_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := DefaultConfig()
	cfg.TMDB.AccessToken = "abc"
	cfg.Share.Command = "wl-copy"
	cfg.UI.DefaultView = "/favorites"

	require.NoError(t, SaveConfigFs(fs, testDir, cfg))

	exists, err := afero.Exists(fs, ConfigFilePath(testDir))
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := LoadConfigFs(fs, testDir)
	require.NoError(t, err)
	assert.Equal(t, "abc", loaded.TMDB.AccessToken)
	assert.Equal(t, "wl-copy", loaded.Share.Command)
	assert.Equal(t, "/favorites", loaded.UI.DefaultView)
}

func TestSaveTokenFs_PreservesOtherSettings(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := DefaultConfig()
	cfg.Storage.Driver = "sqlite"
	require.NoError(t, SaveConfigFs(fs, testDir, cfg))

	require.NoError(t, SaveTokenFs(fs, testDir, "new-token"))

	loaded, err := LoadConfigFs(fs, testDir)
	require.NoError(t, err)
	assert.Equal(t, "new-token", loaded.TMDB.AccessToken)
	assert.Equal(t, "sqlite", loaded.Storage.Driver)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLogLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("nonsense"))
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "WARN")

	logger.Info("hidden")
	logger.Warn("shown", "id", 5)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"id":5`)
}

func TestSetupLogger_WritesFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := SetupLogger(&LoggingConfig{
		File:       filepath.Join(dir, "logs", "marquee.log"),
		Level:      "DEBUG",
		MaxSizeMB:  1,
		MaxBackups: 1,
	})
	require.NoError(t, err)

	logger.Debug("hello")
	assert.FileExists(t, filepath.Join(dir, "logs", "marquee.log"))
}

func TestExpandArgs(t *testing.T) {
	payload := domain.SharePayload{
		Title: "Alien",
		Text:  `Check out "Alien" on marquee`,
		URL:   "https://www.themoviedb.org/movie/348",
	}

	assert.Equal(t,
		[]string{"--title", "Alien", "https://www.themoviedb.org/movie/348"},
		expandArgs([]string{"--title", "{title}", "{url}"}, payload))

	assert.Equal(t,
		[]string{"-n", payload.ClipboardText()},
		expandArgs([]string{"-n"}, payload))

	assert.Equal(t,
		[]string{payload.ClipboardText()},
		expandArgs(nil, payload))
}

func TestShareLauncher(t *testing.T) {
	var gotName string
	var gotArgs []string

	l := NewShareLauncher("share-tool", []string{"{url}"}, NullLogger())
	l.lookPath = func(name string) (string, error) { return "/usr/bin/" + name, nil }
	l.run = func(_ context.Context, name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}

	assert.True(t, l.Available())
	require.NoError(t, l.Share(context.Background(), domain.SharePayload{URL: "https://x.test/tv/1"}))
	assert.Equal(t, "share-tool", gotName)
	assert.Equal(t, []string{"https://x.test/tv/1"}, gotArgs)

	l.run = func(context.Context, string, ...string) error { return errors.New("exit status 1") }
	assert.Error(t, l.Share(context.Background(), domain.SharePayload{}))

	l.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	assert.False(t, l.Available())
}

func TestShareLauncher_CommandOutlivesContext(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
	out := filepath.Join(t.TempDir(), "shared")

	l := NewShareLauncher("sh", []string{"-c", "sleep 0.2; echo {title} > {url}"}, NullLogger())
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, l.Share(ctx, domain.SharePayload{Title: "Heat", URL: out}))
	cancel()

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && string(data) == "Heat\n"
	}, 3*time.Second, 50*time.Millisecond)
}

func TestShareLauncher_Unconfigured(t *testing.T) {
	l := NewShareLauncher("", nil, NullLogger())

	assert.False(t, l.Available())
	assert.ErrorIs(t, l.Share(context.Background(), domain.SharePayload{}), domain.ErrShareUnavailable)
}

func TestDefaultOpener(t *testing.T) {
	name, args := defaultOpener("darwin", "https://x.test")
	assert.Equal(t, "open", name)
	assert.Equal(t, []string{"https://x.test"}, args)

	name, args = defaultOpener("windows", "https://x.test")
	assert.Equal(t, "cmd", name)
	assert.Equal(t, []string{"/c", "start", "", "https://x.test"}, args)

	name, _ = defaultOpener("linux", "https://x.test")
	assert.Equal(t, "xdg-open", name)
}
