package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Zachkp/showcase/internal/handlers"
	"github.com/Zachkp/showcase/internal/middlewares"
	"github.com/Zachkp/showcase/internal/web"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Pages    *handlers.PageHandler
	Projects *handlers.ProjectHandler
	Contact  *handlers.ContactHandler
	Admin    *handlers.AdminHandler
	Auth     middlewares.TokenValidator
}

func RegisterRoutes(router *gin.Engine, h Handlers, allowedOrigins []string) {
	router.StaticFS("/static", web.Static())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Pages and HTMX fragments
	router.GET("/", h.Pages.Home)
	router.GET("/projects", h.Pages.Projects)
	router.GET("/projects/:id", h.Pages.ProjectDetail)
	router.GET("/about", h.Pages.About)
	router.GET("/work-content", h.Pages.Work)
	router.GET("/education-content", h.Pages.Education)
	router.GET("/privacy", h.Pages.Privacy)
	router.GET("/contact-form", h.Contact.Form)
	router.POST("/contact", h.Contact.Submit)

	api := router.Group("/api/v1")
	api.Use(corsMiddleware(allowedOrigins))
	{
		api.GET("/projects", h.Projects.ListProjects)
		api.GET("/projects/:id", h.Projects.GetProject)
		api.GET("/categories", h.Projects.ListCategories)
		api.GET("/profile", h.Projects.GetProfile)
		// preflight, answered by the CORS middleware
		api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	admin := router.Group("/admin")
	{
		admin.GET("/login", h.Admin.LoginPage)
		admin.POST("/login", h.Admin.Login)
		admin.GET("/logout", h.Admin.Logout)

		protected := admin.Group("")
		protected.Use(middlewares.AdminAuth(h.Auth))
		protected.GET("/dashboard", h.Admin.Dashboard)
		protected.GET("/visitors", h.Admin.Visitors)
		protected.GET("/api/stats", h.Admin.StatsJSON)
		protected.GET("/export/stats", h.Admin.ExportStats)
		protected.POST("/privacy/cleanup", h.Admin.Cleanup)
	}

	router.NoRoute(h.Pages.NotFound)
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cors.New(cfg)
}
