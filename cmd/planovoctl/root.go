package main

import (
	"fmt"
	"log/slog"

	"github.com/planovo/planovo-api/internal/config"
	"github.com/planovo/planovo-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// configLoader returns the process configuration.
type configLoader func() (*config.Config, error)

// cli carries state shared by every subcommand.
type cli struct {
	loadConfig configLoader
	logLevel   string
}

// setup loads configuration and builds a logger writing to stderr so that
// stdout only carries command output.
func (c *cli) setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if c.logLevel != "" {
		cfg.Server.LogLevel = c.logLevel
	}

	l, err := logger.SetupWithWriter(cfg.Server, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return cfg, l, nil
}

func newRootCmd(load configLoader) *cobra.Command {
	c := &cli{loadConfig: load}

	root := &cobra.Command{
		Use:   "planovoctl",
		Short: "PlaNovo operator CLI",
		Long: `planovoctl drives the PlaNovo API components from the command line.
It can generate an SRS document for a feature idea, list the prompt templates
and apply database migrations.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "",
		"Override the logging level (debug, info, warn, error)")

	root.AddCommand(
		newGenerateCmd(c),
		newTemplatesCmd(c),
		newMigrateCmd(c),
		newVersionCmd(),
	)
	return root
}
