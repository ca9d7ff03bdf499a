// Package main is the entry point for the volnita application.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/volnita/volnita/internal/app"
	"github.com/volnita/volnita/internal/app/services"
	"github.com/volnita/volnita/internal/buildinfo"
	"github.com/volnita/volnita/internal/config"
	"github.com/volnita/volnita/internal/git"
	"github.com/volnita/volnita/internal/log"
	"github.com/volnita/volnita/internal/models"
	"github.com/volnita/volnita/internal/theme"
	"github.com/volnita/volnita/internal/utils"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// errNotTerminal is returned when stdin cannot drive the TUI.
var errNotTerminal = errors.New("volnita needs an interactive terminal")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func main() {
	buildinfo.Set(version, commit, date, builtBy)
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newApp() *urfavecli.App {
	urfavecli.VersionPrinter = func(c *urfavecli.Context) {
		printVersion(c.App.Writer)
	}
	return &urfavecli.App{
		Name:      models.AppName,
		Usage:     "Browse the history of a git repository",
		UsageText: models.AppName + " [options] [PATH]",
		Version:   buildinfo.Get().Version,
		Flags:     globalFlags(),
		Action:    runTUI,
	}
}

// runTUI resolves the configuration and runs the interactive session.
func runTUI(c *urfavecli.Context) error {
	defer func() { _ = log.Close() }()

	// Set up debug logging before loading config
	if debugLog := c.String("debug-log"); debugLog != "" {
		setupDebugLog(debugLog)
	}

	cfg, err := config.LoadConfig(c.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}

	if c.String("debug-log") == "" {
		setupDebugLog(cfg.DebugLog)
	}

	if err := applyThemeConfig(cfg, c.String("theme")); err != nil {
		return err
	}

	if !isTerminal() {
		return errNotTerminal
	}

	initial := c.Args().First()
	if initial != "" {
		if expanded, err := utils.ExpandPath(initial); err == nil {
			initial = expanded
		}
	}

	store := services.LoadRecentStore(cfg.RecentPath())
	thm := theme.GetTheme(resolveTheme(cfg.Theme))
	log.Info("starting session", "version", buildinfo.Get().Version, "theme", thm.Name, "argument", initial)

	model := app.NewModel(cfg, git.NewNativeBackend(), store, thm, initial)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("program failed", "error", err)
		return fmt.Errorf("error running app: %w", err)
	}

	return model.Err()
}

// setupDebugLog points the debug log at path. An empty path discards the
// buffered entries.
func setupDebugLog(path string) {
	if path == "" {
		_ = log.SetFile("")
		return
	}
	if expanded, err := utils.ExpandPath(path); err == nil {
		path = expanded
	}
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}

// applyThemeConfig applies theme configuration from command line flag.
func applyThemeConfig(cfg *config.AppConfig, themeName string) error {
	if themeName == "" {
		return nil
	}

	normalized := config.NormalizeThemeName(themeName)
	if normalized == "" {
		return fmt.Errorf("unknown theme %q", themeName)
	}
	cfg.Theme = normalized
	return nil
}

// resolveTheme falls back to a theme matching the terminal background.
func resolveTheme(name string) string {
	if name != "" {
		return name
	}
	return theme.Detect()
}

// printVersion prints version information.
func printVersion(w io.Writer) {
	_, _ = io.WriteString(w, buildinfo.Get().Format(models.AppName))
}
