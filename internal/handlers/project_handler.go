package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/showcase/internal/catalog"
	"github.com/Zachkp/showcase/internal/responses"
	"github.com/Zachkp/showcase/internal/services"
)

// ProjectHandler serves the JSON API.
type ProjectHandler struct {
	projects *services.ProjectService
	profile  *services.ProfileService
}

func NewProjectHandler(projects *services.ProjectService, profile *services.ProfileService) *ProjectHandler {
	return &ProjectHandler{projects: projects, profile: profile}
}

// ListProjects handles GET /api/v1/projects?category=&q=
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects := h.projects.List(c.Query("category"), c.Query("q"))
	responses.Success(c, http.StatusOK, projects, "Projects retrieved successfully")
}

// GetProject handles GET /api/v1/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project id")
		return
	}

	project, err := h.projects.Get(id)
	if errors.Is(err, catalog.ErrProjectNotFound) {
		responses.Fail(c, http.StatusNotFound, err, "Project not found")
		return
	}
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve project")
		return
	}

	responses.Success(c, http.StatusOK, project, "Project retrieved successfully")
}

// ListCategories handles GET /api/v1/categories
func (h *ProjectHandler) ListCategories(c *gin.Context) {
	responses.Success(c, http.StatusOK, h.projects.Categories(), "Categories retrieved successfully")
}

// GetProfile handles GET /api/v1/profile
func (h *ProjectHandler) GetProfile(c *gin.Context) {
	responses.Success(c, http.StatusOK, h.profile.Profile().Profile, "Profile retrieved successfully")
}
