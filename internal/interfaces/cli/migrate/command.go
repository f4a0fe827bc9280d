package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"quickdesk/internal/infrastructure/config"
	"quickdesk/internal/infrastructure/database"
	"quickdesk/internal/infrastructure/persistence/migrations"
	"quickdesk/internal/infrastructure/persistence/seeds"
	"quickdesk/internal/shared/logger"
)

var (
	env      string
	skipSeed bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and seed data",
		Long:  `Create or update all QuickDesk tables and insert the default admin account and stock categories.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Apply the schema without seeding default data")

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

	if err := migrations.MigrateAll(database.Get()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Infow("schema migrated")

	if skipSeed {
		return nil
	}

	if err := seeds.SeedAll(database.Get()); err != nil {
		return fmt.Errorf("failed to run seeds: %w", err)
	}
	log.Infow("default data seeded")

	return nil
}
