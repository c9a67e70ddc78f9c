package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/hsaberwal/serunner/internal/infrastructure/config"
	"github.com/hsaberwal/serunner/internal/infrastructure/database"
	"github.com/hsaberwal/serunner/internal/infrastructure/migration"
	"github.com/hsaberwal/serunner/internal/shared/biztime"
	"github.com/hsaberwal/serunner/internal/shared/constants"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

var (
	env        string
	configPath string
	name       string
	steps      int
)

// NewCommand groups the schema tools. Everything except create runs the
// embedded goose scripts against the configured database.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the setups, quotas and instrument tables",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last migrations",
		RunE:  withGoose("down", runDown),
	}
	down.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")

	create := &cobra.Command{
		Use:   "create",
		Short: "Write a new timestamped SQL script",
		RunE:  runCreate,
	}
	create.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = create.MarkFlagRequired("name")

	cmd.AddCommand(
		&cobra.Command{Use: "up", Short: "Apply pending migrations", RunE: withGoose("up", runUp)},
		down,
		&cobra.Command{Use: "status", Short: "Show the schema version and pending scripts", RunE: withGoose("status", runStatus)},
		create,
	)
	return cmd
}

type gooseAction func(cmd *cobra.Command, strategy *migration.GooseStrategy, db *gorm.DB, log logger.Interface) error

// withGoose loads config, connects and hands the action a goose strategy for
// the configured dialect.
func withGoose(action string, fn gooseAction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := initEnv(true)
		if err != nil {
			return err
		}
		defer logger.Sync()
		defer database.Close()

		log.Infow("running migration command", "action", action, "environment", env, "driver", cfg.Database.Driver)
		strategy := migration.NewGooseStrategy(cfg.Database.GooseDialect(), log)
		if err := fn(cmd, strategy, database.Get(), log); err != nil {
			log.Errorw("migration command failed", "action", action, "error", err)
			return err
		}
		return nil
	}
}

func initEnv(connect bool) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}
	if connect {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}
	return cfg, logger.NewLogger(), nil
}

func runUp(_ *cobra.Command, strategy *migration.GooseStrategy, db *gorm.DB, log logger.Interface) error {
	if err := strategy.Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	log.Infow("migrations applied")
	return nil
}

func runDown(_ *cobra.Command, strategy *migration.GooseStrategy, db *gorm.DB, log logger.Interface) error {
	if err := strategy.MigrateDown(db, steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}
	log.Infow("migrations rolled back", "steps", steps)
	return nil
}

func runStatus(cmd *cobra.Command, strategy *migration.GooseStrategy, db *gorm.DB, _ logger.Interface) error {
	version, err := strategy.GetVersion(db)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}
	pending, err := strategy.Pending(db)
	if err != nil {
		return fmt.Errorf("failed to count pending migrations: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "environment: %s\nversion:     %d\npending:     %d\n", env, version, pending)
	return strategy.Status(db)
}

func runCreate(cmd *cobra.Command, _ []string) error {
	_, log, err := initEnv(false)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := migration.Create(migration.ScriptsDir, name); err != nil {
		log.Errorw("failed to create migration", "name", name, "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "migration %q created in %s\n", name, migration.ScriptsDir)
	return nil
}
