package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "campaign-engine",
		Short:        "Decision engine for advertising campaigns",
		Long:         "campaign-engine recommends budgets, writes ad copy and judges A/B tests over HTTP.",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			// a missing .env file is normal outside development
			if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}
