package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"campaign-engine/internal/config"
	"campaign-engine/internal/db"
)

func newMigrateCmd() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the decision log schema migrations",
		RunE: func(*cobra.Command, []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := cfg.Log.NewLogger(os.Stdout)

			if down {
				if err = db.Rollback(cfg.Psql.Addr.String()); err != nil {
					return err
				}
				logger.Info("migrations rolled back")
				return nil
			}
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return err
			}
			logger.Info("migrations applied successfully", slog.String("host", cfg.Psql.Addr.Host))
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "revert every migration instead of applying them")
	return cmd
}
