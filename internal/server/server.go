package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Zachkp/showcase/internal/catalog"
	"github.com/Zachkp/showcase/internal/config"
	"github.com/Zachkp/showcase/internal/database"
	"github.com/Zachkp/showcase/internal/handlers"
	"github.com/Zachkp/showcase/internal/mailer"
	"github.com/Zachkp/showcase/internal/middlewares"
	"github.com/Zachkp/showcase/internal/repositories"
	"github.com/Zachkp/showcase/internal/routes"
	"github.com/Zachkp/showcase/internal/services"
	"github.com/Zachkp/showcase/internal/web"
)

const cleanupInterval = 24 * time.Hour

// Server owns the HTTP server and the database behind it.
type Server struct {
	HTTP *http.Server

	db       *sql.DB
	visitors *services.VisitorService
}

// New opens and migrates the database, removes expired visits, and wires
// the router for cfg.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	return newServer(ctx, cfg, catalog.Default(), mailer.NewSMTPSender(cfg.SMTP))
}

func newServer(ctx context.Context, cfg *config.Config, cat *catalog.Catalog, sender mailer.Sender) (*Server, error) {
	db, err := database.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	// Dependency injection
	visitRepo := repositories.NewVisitorRepository(db)
	viewRepo := repositories.NewProjectViewRepository(db)

	projectService := services.NewProjectService(cat, viewRepo)
	profileService, err := services.NewProfileService(cat.Profile())
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("render profile: %w", err)
	}
	visitorService := services.NewVisitorService(visitRepo, viewRepo, projectService, cfg.HashSalt, cfg.VisitorRetention)
	contactService := services.NewContactService(sender, cfg.ContactRateEvery, cfg.ContactRateBurst)
	adminService := services.NewAdminService(cfg.AdminUsername, cfg.AdminPassword)

	if _, err := visitorService.Cleanup(ctx); err != nil {
		slog.Warn("startup privacy cleanup", "err", err)
	}
	if cfg.UsesDefaultAdminCredentials() {
		slog.Warn("admin login uses the default credentials, set ADMIN_USERNAME and ADMIN_PASSWORD")
	}

	tmpl, err := web.Templates()
	if err != nil {
		db.Close()
		return nil, err
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middlewares.RequestLogger(slog.Default()),
		middlewares.VisitorTracking(visitorService.Track),
	)
	router.SetHTMLTemplate(tmpl)

	routes.RegisterRoutes(router, routes.Handlers{
		Pages:    handlers.NewPageHandler(projectService, profileService, cfg.VisitorRetention),
		Projects: handlers.NewProjectHandler(projectService, profileService),
		Contact:  handlers.NewContactHandler(contactService, visitorService),
		Admin:    handlers.NewAdminHandler(adminService, visitorService, cfg.GinMode == gin.ReleaseMode),
		Auth:     adminService,
	}, cfg.CORSAllowedOrigins)

	return &Server{
		HTTP: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      otelhttp.NewHandler(router, "http.server"),
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		db:       db,
		visitors: visitorService,
	}, nil
}

// RunCleanup removes expired visits once a day until ctx is done.
func (s *Server) RunCleanup(ctx context.Context) {
	t := time.NewTicker(cleanupInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := s.visitors.Cleanup(ctx); err != nil {
				slog.Warn("privacy cleanup", "err", err)
			}
		}
	}
}

// Close closes the database. Shut the HTTP server down first.
func (s *Server) Close() error {
	return s.db.Close()
}
