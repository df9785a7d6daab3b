package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/showcase/internal/catalog"
	"github.com/Zachkp/showcase/internal/models"
	"github.com/Zachkp/showcase/internal/services"
	"github.com/Zachkp/showcase/internal/web"
)

// Page carries what the shared header and footer need.
type Page struct {
	Title   string
	Profile services.ProfileView
}

// Gallery is the data behind project-grid.html.
type Gallery struct {
	Category string
	Search   string
	Projects []models.Project
}

type HomePage struct {
	Page
	Gallery
	Categories []string
	Featured   []models.Project
}

type PrivacyPage struct {
	Page
	RetentionDays int
}

// PageHandler renders the public HTML pages and HTMX fragments.
type PageHandler struct {
	projects  *services.ProjectService
	profile   *services.ProfileService
	retention time.Duration
}

func NewPageHandler(projects *services.ProjectService, profile *services.ProfileService, retention time.Duration) *PageHandler {
	return &PageHandler{projects: projects, profile: profile, retention: retention}
}

func (h *PageHandler) base(title string) Page {
	p := h.profile.Profile()
	if title == "" {
		title = p.Name
	} else {
		title = title + " | " + p.Name
	}
	return Page{Title: title, Profile: p}
}

// galleryFromQuery reads the category and q query parameters and filters.
func (h *PageHandler) galleryFromQuery(c *gin.Context) Gallery {
	category := services.NormalizeCategory(c.Query("category"))
	search := c.Query("q")
	return Gallery{
		Category: category,
		Search:   search,
		Projects: h.projects.List(category, search),
	}
}

// Home handles GET /
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", HomePage{
		Page:       h.base(""),
		Gallery:    h.galleryFromQuery(c),
		Categories: h.projects.Categories(),
		Featured:   h.projects.Featured(),
	})
}

// Projects handles GET /projects, the HTMX gallery fragment. A plain browser
// request, such as a reload of a pushed URL, gets the full home page.
func (h *PageHandler) Projects(c *gin.Context) {
	if c.GetHeader("HX-Request") != "true" {
		h.Home(c)
		return
	}
	c.HTML(http.StatusOK, "project-grid.html", h.galleryFromQuery(c))
}

// ProjectDetail handles GET /projects/:id, the HTMX modal fragment.
func (h *PageHandler) ProjectDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "project-missing.html", gin.H{"Message": "That project doesn't exist."})
		return
	}

	project, err := h.projects.View(c.Request.Context(), id)
	if errors.Is(err, catalog.ErrProjectNotFound) {
		c.HTML(http.StatusNotFound, "project-missing.html", gin.H{"Message": "That project doesn't exist."})
		return
	}
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "load project", "id", id, "err", err)
		c.HTML(http.StatusInternalServerError, "project-missing.html", gin.H{"Message": "Something went wrong loading this project."})
		return
	}

	name, err := web.DetailTemplate(project.Layout)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "detail layout", "id", id, "err", err)
		c.HTML(http.StatusInternalServerError, "project-missing.html", gin.H{"Message": "Something went wrong loading this project."})
		return
	}
	c.HTML(http.StatusOK, name, project)
}

// About handles GET /about
func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", h.base("About"))
}

// Work handles GET /work-content, the about page's experience tab.
func (h *PageHandler) Work(c *gin.Context) {
	c.HTML(http.StatusOK, "work-content.html", h.profile.Profile().Work)
}

// Education handles GET /education-content
func (h *PageHandler) Education(c *gin.Context) {
	c.HTML(http.StatusOK, "education-content.html", h.profile.Profile().Schools)
}

// Privacy handles GET /privacy
func (h *PageHandler) Privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", PrivacyPage{
		Page:          h.base("Privacy Policy"),
		RetentionDays: int(h.retention.Hours() / 24),
	})
}

// NotFound renders the 404 page for unmatched routes.
func (h *PageHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not-found.html", h.base("Not found"))
}
