package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vidyasagar/droidbrowser/internal/app"
	"github.com/vidyasagar/droidbrowser/internal/browser"
	"github.com/vidyasagar/droidbrowser/internal/storage"
	"github.com/vidyasagar/droidbrowser/internal/theme"
)

var version = "2.0.4"

type flags struct {
	theme      string
	search     string
	incognito  bool
	configPath string
	logFile    string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "droidbrowser [url or search]",
		Short: "A phone-style browser chrome for the terminal",
		Example: `  droidbrowser                     # start on the home page
  droidbrowser golang.org          # auto-adds https://
  droidbrowser "how to use goroutines" --search duckduckgo
  droidbrowser --incognito --theme midnight`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, strings.Join(args, " "))
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.theme, "theme", "", "color theme ("+strings.Join(theme.List(), ", ")+")")
	fl.StringVar(&f.search, "search", "", "search engine (google, duckduckgo, bing)")
	fl.BoolVar(&f.incognito, "incognito", false, "start in incognito mode")
	fl.StringVar(&f.configPath, "config", "", "config file path")
	fl.StringVar(&f.logFile, "log-file", "", "write logs to this file")
	fl.BoolVar(&f.debug, "debug", false, "enable debug logging")
	return cmd
}

func run(cmd *cobra.Command, f flags, startURL string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("stdout is not a terminal")
	}

	log, closeLog, err := newLogger(f.logFile, f.debug)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := storage.LoadConfig(f.configPath)
	if err != nil {
		return err
	}

	// Flags win over the config file.
	if cmd.Flags().Changed("theme") {
		cfg.Theme = f.theme
	}
	if cmd.Flags().Changed("search") {
		cfg.SearchEngine = f.search
	}
	if cmd.Flags().Changed("incognito") {
		cfg.StartIncognito = f.incognito
	}

	if !theme.Set(cfg.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", cfg.Theme, strings.Join(theme.List(), ", "))
	}
	prefix, ok := browser.SearchPrefix(cfg.SearchEngine)
	if !ok {
		return fmt.Errorf("unknown search engine %q", cfg.SearchEngine)
	}

	log.WithFields(logrus.Fields{
		"config":    cfg.Path(),
		"theme":     cfg.Theme,
		"search":    cfg.SearchEngine,
		"incognito": cfg.StartIncognito,
	}).Info("starting")

	// The visit log is a convenience; run without it if sqlite fails.
	var visits *storage.VisitLog
	db, err := storage.OpenSessionDB()
	if err != nil {
		log.WithError(err).Warn("visit log disabled")
	} else {
		defer db.Close()
		visits = storage.NewVisitLog(db)
	}

	nav := browser.NewNavigator(browser.Options{
		SearchPrefix:   prefix,
		StartIncognito: cfg.StartIncognito,
		Logger:         log,
	})
	defer nav.Stop()

	m := app.New(app.Options{
		Navigator: nav,
		Visits:    visits,
		Logger:    log,
		StartURL:  startURL,
	})
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	log.Info("exiting")
	return nil
}

// newLogger returns a logger writing to path, or discarding everything when
// path is empty. The terminal belongs to the UI.
func newLogger(path string, debug bool) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open logfile %s: %w", path, err)
	}
	log.SetOutput(file)
	return log, func() { _ = file.Close() }, nil
}
