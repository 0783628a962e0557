package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacebook/spacebook/internal/infrastructure/config"
	"github.com/spacebook/spacebook/internal/infrastructure/database"
	"github.com/spacebook/spacebook/internal/infrastructure/migration"
	"github.com/spacebook/spacebook/internal/interfaces/cli/bootstrap"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long: `Manage the database schema. MySQL uses the embedded goose scripts;
sqlite is created from the persistence models.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func initEnv() (*config.Config, logger.Interface, error) {
	return bootstrap.InitWithDatabase(env)
}

// gooseOnly rejects versioned operations on drivers that have no scripts.
func gooseOnly(cfg *config.Config, log logger.Interface) (*migration.GooseStrategy, error) {
	if cfg.Database.Driver != "mysql" {
		return nil, fmt.Errorf("versioned migrations are only available for mysql, got %q", cfg.Database.Driver)
	}
	return migration.NewGooseStrategy(log), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env, "driver", cfg.Database.Driver)

	if err := migration.NewManager(cfg.Database.Driver, log).Migrate(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}

	strategy, err := gooseOnly(cfg, log)
	if err != nil {
		return err
	}

	log.Infow("rolling back migrations", "environment", env, "steps", steps)
	return strategy.MigrateDown(database.Get(), steps)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := gooseOnly(cfg, log)
	if err != nil {
		return err
	}
	return strategy.Status(database.Get())
}
