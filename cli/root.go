// Package cli implements the forumadmin command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blogem/forum-admin/config"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	envFile    string
	configFile string
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "forumadmin",
		Short: "Administrative dashboard for the forum",
		Long: `forumadmin serves the forum's admin panel: statistics, contact
request triage, access logs and the user list. Configuration comes from
an optional .env file, an optional forumadmin.yaml and the environment.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "env file to load (default: .env when present)")
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default: forumadmin.yaml when present)")

	rootCmd.AddCommand(newServeCommand(flags))
	rootCmd.AddCommand(newMigrateCommand(flags))
	rootCmd.AddCommand(newHashPasswordCommand())
	rootCmd.AddCommand(newStatsCommand(flags))

	return rootCmd
}

// loadConfig loads configuration and installs the process logger
func loadConfig(flags *globalFlags, stderr io.Writer) (*config.Config, *time.Location, error) {
	cfg, err := config.Load(flags.envFile, flags.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	setupLogging(cfg.LogLevel, stderr)

	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	return cfg, loc, nil
}

// setupLogging installs a text handler on terminals and a JSON handler otherwise
func setupLogging(level string, w io.Writer) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if isTerminal(w) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
