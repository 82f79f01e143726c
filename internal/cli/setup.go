package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/marquee/internal/adapter"
	"github.com/mmcdole/marquee/internal/adapter/source"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

const validateTimeout = 15 * time.Second

var setupToken string

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure the TMDB access token",
	Long: `Prompt for a TMDB API read access token, check it against the API,
and save it to the config file.

Create a token at https://www.themoviedb.org/settings/api.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().StringVar(&setupToken, "token", "", "access token (skips the prompt)")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	if app == nil || app.Config == nil {
		return errors.New("configuration not loaded")
	}

	token := strings.TrimSpace(setupToken)
	if token == "" {
		cmd.Println()
		cmd.Println("Welcome to marquee!")
		cmd.Println()

		var err error
		token, err = promptToken(cmd)
		if err != nil {
			return err
		}
	}
	if token == "" {
		return errors.New("access token cannot be empty")
	}

	if err := validateWithSpinner(cmd, token); err != nil {
		return fmt.Errorf("token rejected: %w", err)
	}

	if err := adapter.SaveTokenFs(app.ConfigFs, app.ConfigDir, token); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	app.Config.TMDB.AccessToken = token

	cmd.Println()
	cmd.Println("✓ Configuration saved!")
	cmd.Println()
	cmd.Println("Run marquee again to start browsing.")
	return nil
}

// promptToken reads the token without echo when stdin is a terminal
func promptToken(cmd *cobra.Command) (string, error) {
	cmd.Print("TMDB API read access token: ")

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// validateWithSpinner checks the token with a visual spinner
func validateWithSpinner(cmd *cobra.Command, token string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), validateTimeout)
	defer cancel()

	resultCh := make(chan error, 1)
	go func() {
		resultCh <- source.ValidateToken(ctx, app.Config.TMDB, token, logger())
	}()

	out := cmd.OutOrStdout()
	frame := 0
	fmt.Fprintf(out, "\r%s Checking token...", styles.SpinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			fmt.Fprint(out, clearSpinnerLine)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "✓ Token accepted")
			return nil

		case <-ticker.C:
			frame++
			fmt.Fprintf(out, "\r%s Checking token...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])

		case <-ctx.Done():
			fmt.Fprint(out, clearSpinnerLine)
			return fmt.Errorf("validation timed out")
		}
	}
}
