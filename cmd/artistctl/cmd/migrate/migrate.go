package migrate

import (
	"fmt"

	"github.com/saransh1220/artistly/internal/shared/infrastructure/config"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/logging"
	"github.com/saransh1220/artistly/pkg/migration"
	"github.com/spf13/cobra"
)

// Command groups the kv_store schema migrations.
func Command() *cobra.Command {
	var (
		databaseURL    string
		migrationsPath string
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the Postgres record store schema",
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL URL (defaults to DB_* environment)")
	cmd.PersistentFlags().StringVar(&migrationsPath, "path", "", "Migrations directory (defaults to MIGRATIONS_PATH)")

	runner := func() (*migration.Runner, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		if databaseURL == "" {
			databaseURL = cfg.Database.URL()
		}
		if migrationsPath == "" {
			migrationsPath = cfg.Storage.MigrationsPath
		}
		logger, err := logging.NewLogger(logging.Config{Component: "artistctl", Level: cfg.Log.Level})
		if err != nil {
			return nil, err
		}
		return migration.NewRunner(migration.Config{
			MigrationsPath: migrationsPath,
			DatabaseURL:    databaseURL,
			Logger:         logger,
		}), nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runner()
			if err != nil {
				return err
			}
			return r.Up()
		},
	})

	var yes bool
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to roll back without --yes")
			}
			r, err := runner()
			if err != nil {
				return err
			}
			return r.Down()
		},
	}
	down.Flags().BoolVar(&yes, "yes", false, "Confirm rollback")
	cmd.AddCommand(down)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runner()
			if err != nil {
				return err
			}
			version, dirty, err := r.Version()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
			return nil
		},
	})

	return cmd
}
