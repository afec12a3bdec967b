package main

import (
	"errors"
	"fmt"

	"github.com/planovo/planovo-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down|status|version]",
		Short: "Run database migrations",
		Long: `Migrate applies the embedded goose migrations against database.url.
Without an argument it runs "up".`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateStatus, postgres.MigrateVersion},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := postgres.MigrateUp
			if len(args) == 1 {
				command = args[0]
			}

			cfg, l, err := c.setup(cmd)
			if err != nil {
				return err
			}
			if cfg.Database.URL == "" {
				return errors.New("database.url is not configured")
			}

			ctx := cmd.Context()
			db, err := postgres.Open(ctx, cfg.Database, l)
			if err != nil {
				return err
			}
			defer db.Close()

			if command == postgres.MigrateVersion {
				v, err := postgres.SchemaVersion(ctx, db, l)
				if err != nil {
					return fmt.Errorf("failed to read schema version: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
				return err
			}
			return postgres.Migrate(ctx, db, l, command)
		},
	}
}
