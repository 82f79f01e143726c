package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/mmcdole/marquee/internal/domain"
)

// commandRunner starts an external command
type commandRunner func(ctx context.Context, name string, args ...string) error

// startCommand launches without waiting, like an interactive share sheet.
// The child is not tied to ctx and outlives the caller.
func startCommand(_ context.Context, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// ShareLauncher hands share payloads to a configured external command and
// opens pages in the system browser.
type ShareLauncher struct {
	command  string   // configured share command, empty when not configured
	args     []string // argument template, see expandArgs
	run      commandRunner
	lookPath func(string) (string, error)
	logger   *slog.Logger
}

var _ domain.Sharer = (*ShareLauncher)(nil)

// NewShareLauncher creates a launcher for the configured share command
func NewShareLauncher(command string, args []string, logger *slog.Logger) *ShareLauncher {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShareLauncher{
		command:  command,
		args:     args,
		run:      startCommand,
		lookPath: exec.LookPath,
		logger:   logger,
	}
}

// Available reports whether a share command is configured and on PATH
func (l *ShareLauncher) Available() bool {
	if l.command == "" {
		return false
	}
	if _, err := l.lookPath(l.command); err != nil {
		l.logger.Debug("share command not found", "command", l.command, "error", err)
		return false
	}
	return true
}

// Share runs the share command with the payload substituted into its args
func (l *ShareLauncher) Share(ctx context.Context, payload domain.SharePayload) error {
	if l.command == "" {
		return domain.ErrShareUnavailable
	}
	args := expandArgs(l.args, payload)
	l.logger.Info("launching share command", "command", l.command, "args", args)
	if err := l.run(ctx, l.command, args...); err != nil {
		return fmt.Errorf("share command failed: %w", err)
	}
	return nil
}

// expandArgs substitutes {title}, {text} and {url} placeholders.
// Templates without placeholders get the clipboard text appended.
func expandArgs(tmpl []string, payload domain.SharePayload) []string {
	r := strings.NewReplacer("{title}", payload.Title, "{text}", payload.Text, "{url}", payload.URL)

	args := make([]string, 0, len(tmpl)+1)
	substituted := false
	for _, a := range tmpl {
		expanded := r.Replace(a)
		if expanded != a {
			substituted = true
		}
		args = append(args, expanded)
	}
	if !substituted {
		args = append(args, payload.ClipboardText())
	}
	return args
}

// OpenURL opens url using the system default handler
func (l *ShareLauncher) OpenURL(ctx context.Context, url string) error {
	name, args := defaultOpener(runtime.GOOS, url)
	l.logger.Info("opening with system default", "os", runtime.GOOS, "url", url)
	return l.run(ctx, name, args...)
}

func defaultOpener(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", "", url}
	default:
		// Linux and other Unix-like systems
		return "xdg-open", []string{url}
	}
}

// Clipboard writes to the system clipboard
type Clipboard struct{}

var _ domain.Clipboard = Clipboard{}

// Available reports whether a clipboard utility was found
func (Clipboard) Available() bool {
	return !clipboard.Unsupported
}

func (Clipboard) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
