// Package cli wires configuration, logging and the backend client into the
// bidcraft command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fragmede/bidcraft/internal/api"
	"github.com/fragmede/bidcraft/internal/config"
	"github.com/fragmede/bidcraft/internal/session"
	"github.com/fragmede/bidcraft/internal/ui"
)

// runProgram starts the TUI. Tests replace it to avoid a terminal.
var runProgram = func(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

type options struct {
	backend  string
	timeout  time.Duration
	logLevel string
	route    string

	cfg     config.Config
	client  *api.Client
	logFile io.Closer
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the bidcraft command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "bidcraft",
		Short: "Operator console for the comment-processing backend",
		Long: `bidcraft drives the comment-processing backend from the terminal.

Running without a subcommand launches the interactive console.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if o.logFile != nil {
				return o.logFile.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session.New(o.cfg.BackendURL)
			app := ui.NewApp(o.cfg, o.client, sess, o.route)
			log.Info("starting console", "backend", o.cfg.BackendURL, "route", app.Route())
			return runProgram(app)
		},
	}

	root.PersistentFlags().StringVar(&o.backend, "backend", "", "Backend base URL (default $BIDCRAFT_BACKEND_URL or "+config.DefaultBackendURL+")")
	root.PersistentFlags().DurationVar(&o.timeout, "timeout", 0, "Request timeout, 0 waits forever (default $BIDCRAFT_TIMEOUT_SECONDS or 10s)")
	root.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.Flags().StringVar(&o.route, "route", ui.RouteCredentials, "Start route: / or /next")

	root.AddCommand(
		newExportCmd(o),
		newProcessCmd(o),
		newCredentialsCmd(o),
	)
	return root
}

// setup loads .env and the environment, applies flag overrides, opens the
// debug log and builds the client.
func (o *options) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg := config.Load()
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.BackendURL = o.backend
	}
	if flags.Changed("timeout") {
		if o.timeout < 0 {
			return fmt.Errorf("--timeout must not be negative")
		}
		cfg.RequestTimeout = o.timeout
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "bidcraft",
	})
	logger.SetLevel(level)
	log.SetDefault(logger)

	o.cfg = cfg
	o.logFile = f
	o.client = api.NewClient(cfg.BackendURL, cfg.RequestTimeout)
	return nil
}
