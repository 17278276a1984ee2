package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/insist"
	"github.com/aretw0/insist/internal/config"
	"github.com/aretw0/insist/internal/logging"
	"github.com/aretw0/insist/pkg/remover"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "insist",
	Short: "Insist validates argument lists and strips assertions from sources",
	Long: `Insist checks values against type signatures with optional argument
shifting, and removes standalone insist calls from JavaScript sources.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

// app is the environment shared by subcommands, built once flags are parsed.
var app struct {
	cfg    config.File
	logger *slog.Logger
}

// errReported fails a command whose diagnostic was already printed.
var errReported = errors.New("check failed")

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}

func setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = cfg.Apply(os.Getenv)
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	app.cfg = cfg
	app.logger = logging.New(level)
	slog.SetDefault(app.logger)
	return nil
}

func newChecker(opts ...insist.Option) *insist.Checker {
	base := []insist.Option{
		insist.WithDisabled(app.cfg.Disabled),
		insist.WithLogger(app.logger),
	}
	return insist.New(append(base, opts...)...)
}

func newRemover(extra map[string]string) *remover.Remover {
	aliases := make(map[string]string, len(app.cfg.Aliases)+len(extra))
	for name, pattern := range app.cfg.Aliases {
		aliases[name] = pattern
	}
	for name, pattern := range extra {
		aliases[name] = pattern
	}
	return remover.New(remover.WithAliases(aliases), remover.WithLogger(app.logger))
}
