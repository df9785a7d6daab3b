package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Zachkp/showcase/internal/middlewares"
	"github.com/Zachkp/showcase/internal/models"
	"github.com/Zachkp/showcase/internal/responses"
	"github.com/Zachkp/showcase/internal/services"
)

const adminSessionTTL = 24 * 60 * 60

var printer = message.NewPrinter(language.English)

type AdminHandler struct {
	admin    *services.AdminService
	visitors *services.VisitorService
	secure   bool
}

// NewAdminHandler creates an AdminHandler. secure marks the session cookie
// Secure, for deployments behind HTTPS.
func NewAdminHandler(admin *services.AdminService, visitors *services.VisitorService, secure bool) *AdminHandler {
	return &AdminHandler{admin: admin, visitors: visitors, secure: secure}
}

// LoginPage handles GET /admin/login
func (h *AdminHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin-login.html", gin.H{"Title": "Admin Login"})
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	who := h.visitors.HashIP(c.ClientIP())
	token, err := h.admin.Login(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		slog.WarnContext(c.Request.Context(), "failed admin login attempt", "client", who)
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"Title": "Admin Login",
			"Error": "Invalid credentials",
		})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middlewares.AdminCookie, token, adminSessionTTL, "/admin", "", h.secure, true)
	slog.InfoContext(c.Request.Context(), "admin login successful", "client", who)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout handles GET /admin/logout
func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie(middlewares.AdminCookie, "", -1, "/admin", "", h.secure, true)
	slog.InfoContext(c.Request.Context(), "admin logout", "client", h.visitors.HashIP(c.ClientIP()))
	c.Redirect(http.StatusFound, "/admin/login")
}

func (h *AdminHandler) stats(c *gin.Context) (*models.AdminStats, bool) {
	stats, err := h.visitors.Stats(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "load admin stats", "err", err)
		return nil, false
	}
	return stats, true
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, ok := h.stats(c)
	if !ok {
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
			"Title":    "Error",
			"LoggedIn": true,
			"Error":    "Failed to load statistics",
		})
		return
	}
	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
		"Title":    "Dashboard",
		"LoggedIn": true,
		"Stats":    stats,
	})
}

// Visitors handles GET /admin/visitors
func (h *AdminHandler) Visitors(c *gin.Context) {
	stats, ok := h.stats(c)
	if !ok {
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
			"Title":    "Error",
			"LoggedIn": true,
			"Error":    "Failed to load visitors",
		})
		return
	}
	c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
		"Title":    "Visitors",
		"LoggedIn": true,
		"Visitors": stats.RecentVisitors,
	})
}

// StatsJSON handles GET /admin/api/stats
func (h *AdminHandler) StatsJSON(c *gin.Context) {
	stats, err := h.visitors.Stats(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to load statistics")
		return
	}
	responses.Success(c, http.StatusOK, stats, "")
}

// ExportStats handles GET /admin/export/stats as a file download.
func (h *AdminHandler) ExportStats(c *gin.Context) {
	stats, err := h.visitors.Stats(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to load statistics")
		return
	}
	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	slog.InfoContext(c.Request.Context(), "admin stats exported", "client", h.visitors.HashIP(c.ClientIP()))
	c.IndentedJSON(http.StatusOK, stats)
}

// Cleanup handles POST /admin/privacy/cleanup
func (h *AdminHandler) Cleanup(c *gin.Context) {
	n, err := h.visitors.Cleanup(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "privacy cleanup", "err", err)
		c.HTML(http.StatusOK, "admin-cleanup.html", gin.H{"Error": "Cleanup failed."})
		return
	}
	c.HTML(http.StatusOK, "admin-cleanup.html", gin.H{
		"Removed": n,
		"Message": printer.Sprintf("Removed %d expired visits.", n),
	})
}
