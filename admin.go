package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/showcase/internal/catalog"
	"github.com/Zachkp/showcase/internal/config"
	"github.com/Zachkp/showcase/internal/database"
	"github.com/Zachkp/showcase/internal/repositories"
	"github.com/Zachkp/showcase/internal/services"
)

var (
	adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Visitor statistics and privacy maintenance",
	}
	adminStatsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Print the admin statistics as JSON",
		RunE:  runAdminStats,
	}
	adminCleanupCmd = &cobra.Command{
		Use:   "cleanup",
		Short: "Delete visits older than VISITOR_RETENTION",
		RunE:  runAdminCleanup,
	}
)

func init() {
	adminCmd.AddCommand(adminStatsCmd, adminCleanupCmd)
}

// openDatabase loads the config, then opens and migrates its database.
func openDatabase(ctx context.Context) (*config.Config, *sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	config.SetupLog(cfg)

	db, err := database.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return cfg, db, nil
}

func newVisitorService(cfg *config.Config, db *sql.DB) *services.VisitorService {
	viewRepo := repositories.NewProjectViewRepository(db)
	projects := services.NewProjectService(catalog.Default(), viewRepo)
	return services.NewVisitorService(repositories.NewVisitorRepository(db), viewRepo, projects, cfg.HashSalt, cfg.VisitorRetention)
}

func runAdminStats(cmd *cobra.Command, args []string) error {
	cfg, db, err := openDatabase(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := newVisitorService(cfg, db).Stats(cmd.Context())
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}

func runAdminCleanup(cmd *cobra.Command, args []string) error {
	cfg, db, err := openDatabase(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := newVisitorService(cfg, db).Cleanup(cmd.Context())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d visits older than %s.\n", n, cfg.VisitorRetention)
	return err
}
