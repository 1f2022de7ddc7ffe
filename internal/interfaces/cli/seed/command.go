package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"learnhub/internal/infrastructure/config"
	"learnhub/internal/infrastructure/database"
	"learnhub/internal/infrastructure/seed"
	"learnhub/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with default roles and permissions",
		Long:  `Populates the default roles, the permission matrix for each role, and links them. Safe to run repeatedly: existing records are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log.Infow("seeding database", "environment", env)

	if err := seed.NewSeeder(database.Get()).Run(context.Background()); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("seeding completed successfully")
	return nil
}
