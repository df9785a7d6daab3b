package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/showcase/internal/catalog"
	"github.com/Zachkp/showcase/internal/config"
	"github.com/Zachkp/showcase/internal/models"
	"github.com/Zachkp/showcase/internal/server"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

var (
	rootCmd = &cobra.Command{
		Use:          "portfolio",
		Short:        "Portfolio site server and utilities",
		SilenceUsage: true,
	}
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE:  runServe,
	}
	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE:  runMigrate,
	}
	projectsCmd = &cobra.Command{
		Use:   "projects",
		Short: "List catalog projects, filtered like the gallery",
		RunE:  runProjects,
	}

	// Flags
	addr     string
	category string
	search   string
	asJSON   bool
)

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "Address to listen on (host:port). If empty, uses HOST and PORT")
	projectsCmd.Flags().StringVar(&category, "category", models.AllCategories, "Category to show")
	projectsCmd.Flags().StringVar(&search, "search", "", "Case-insensitive search over title, client and category")
	projectsCmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	rootCmd.AddCommand(serveCmd, migrateCmd, projectsCmd, adminCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	config.SetupLog(cfg)
	if addr != "" {
		if err := overrideAddr(cfg, addr); err != nil {
			return err
		}
	}

	ctx, stop := context.WithCancel(cmd.Context())
	defer stop()

	shutdownTelemetry, err := config.SetupTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownTelemetry(sctx)
	}()

	srv, err := server.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer srv.Close()
	go srv.RunCleanup(ctx)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.HTTP.Addr)
		errCh <- srv.HTTP.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
	case sig := <-quit:
		slog.Info("shutting down server gracefully", "signal", sig.String())
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.HTTP.Shutdown(sctx); err != nil {
			slog.Warn("server shutdown", "err", err)
		}
	}
	slog.Info("server exiting")
	return nil
}

// overrideAddr replaces the configured HOST and PORT with a host:port pair,
// bracketed for IPv6.
func overrideAddr(cfg *config.Config, addr string) error {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid --addr %q: %w", addr, err)
	}
	cfg.Host, cfg.Port = host, port
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, db, err := openDatabase(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()
	slog.Info("migrations applied", "database", cfg.DatabasePath)
	return nil
}

func runProjects(cmd *cobra.Command, args []string) error {
	projects := catalog.Default().Filter(category, search)
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(projects)
	}
	return printProjects(cmd.OutOrStdout(), projects)
}

func printProjects(w io.Writer, projects []models.Project) error {
	if len(projects) == 0 {
		_, err := fmt.Fprintln(w, "No projects match.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCLIENT\tCATEGORY\tYEAR")
	for _, p := range projects {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", p.ID, p.Title, p.Client, p.Category, p.Year)
	}
	return tw.Flush()
}
