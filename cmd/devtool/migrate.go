package main

import (
	"context"
	"fmt"

	"github.com/journey-app/journey/internal/config"
	"github.com/journey-app/journey/internal/database"
)

// MigrateCommand applies or lists the embedded migrations
type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 2, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Database is up to date")
		return nil
	case "status":
		PrintHeader("Migration status")
		states, err := database.MigrationStatus(ctx, pool)
		if err != nil {
			return err
		}
		for _, st := range states {
			if st.Applied {
				PrintSuccess("%05d %s (applied %s)", st.Version, st.Path, st.AppliedAt.Format("2006-01-02 15:04"))
			} else {
				PrintWarning("%05d %s (pending)", st.Version, st.Path)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q: expected up or status", args[0])
	}
}
