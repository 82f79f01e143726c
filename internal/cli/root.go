// Package cli implements the marquee command line.
package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mmcdole/marquee/internal/adapter"
	"github.com/mmcdole/marquee/internal/adapter/source/tmdb"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/collection"
	"github.com/mmcdole/marquee/internal/tui"
)

// App holds the wired services the commands run against.
// Catalog is nil until an access token is configured.
type App struct {
	Config      *adapter.Config
	ConfigFs    afero.Fs
	ConfigDir   string
	Logger      *slog.Logger
	Catalog     *catalog.Service
	Collections *collection.Service
	Images      tmdb.Images
	Opener      tui.URLOpener
}

var (
	app     *App
	version = "dev"

	jsonOutput bool
)

var errNotConfigured = errors.New("no TMDB access token configured (run `marquee setup`)")

var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Discover movies and TV shows from the terminal",
	Long: `marquee browses the TMDB catalog: popular, trending and top rated
movies and TV shows, search, and details. Titles can be kept locally in
two collections, favorites and saved.

Run without a subcommand to open the interactive UI.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
}

// SetApp sets the services used by all commands
func SetApp(a *App) {
	app = a
}

// SetVersion sets the version reported by `marquee version`
func SetVersion(v string) {
	version = v
}

// Execute runs the root command
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if app == nil {
		return errors.New("application not initialised")
	}
	if app.Catalog == nil {
		return runSetup(cmd, args)
	}
	return runTUI(cmd, args)
}

// requireCatalog returns the catalog service or a setup hint
func requireCatalog() (*catalog.Service, error) {
	if app == nil || app.Catalog == nil {
		return nil, errNotConfigured
	}
	return app.Catalog, nil
}

// requireCollections returns the collection service
func requireCollections() (*collection.Service, error) {
	if app == nil || app.Collections == nil {
		return nil, errors.New("collection store not configured")
	}
	return app.Collections, nil
}

func logger() *slog.Logger {
	if app == nil || app.Logger == nil {
		return slog.Default()
	}
	return app.Logger
}
