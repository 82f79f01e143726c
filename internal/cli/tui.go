package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mmcdole/marquee/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal UI.

Controls:
  1-6      - Home, Movies, TV, Search, Favorites, Saved
  ↑/k, ↓/j - Navigate
  Enter    - Details
  Esc      - Back
  f / s    - Toggle favorite / saved
  x        - Share
  m        - Load more
  /        - Filter
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cat, err := requireCatalog()
	if err != nil {
		return err
	}
	coll, err := requireCollections()
	if err != nil {
		return err
	}

	opts := tui.Options{Images: app.Images, Opener: app.Opener}
	if app.Config != nil {
		opts.DefaultView = app.Config.UI.DefaultView
	}
	model := tui.NewModel(cat, coll, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger().Info("starting TUI")
	if _, err := p.Run(); err != nil {
		logger().Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	logger().Info("shutting down")
	return nil
}
