package services

import (
	"context"
	"time"

	"github.com/Zachkp/showcase/internal/catalog"
	"github.com/Zachkp/showcase/internal/models"
)

// ViewRecorder counts project detail views.
type ViewRecorder interface {
	Increment(ctx context.Context, projectID int, at time.Time) error
}

// ProjectService answers gallery queries against the catalog.
type ProjectService struct {
	catalog *catalog.Catalog
	views   ViewRecorder
	now     func() time.Time
}

// NewProjectService creates a ProjectService. views may be nil, in which
// case detail views are not counted.
func NewProjectService(c *catalog.Catalog, views ViewRecorder) *ProjectService {
	return &ProjectService{catalog: c, views: views, now: time.Now}
}

func (s *ProjectService) Categories() []string {
	return s.catalog.Categories()
}

// List returns the projects visible for category and search term. An empty
// category selects every project.
func (s *ProjectService) List(category, search string) []models.Project {
	return s.catalog.Filter(NormalizeCategory(category), search)
}

func (s *ProjectService) Featured() []models.Project {
	return s.catalog.Featured()
}

// Get returns a project or an error wrapping catalog.ErrProjectNotFound.
func (s *ProjectService) Get(id int) (models.Project, error) {
	return s.catalog.Project(id)
}

// View returns a project and counts the view.
func (s *ProjectService) View(ctx context.Context, id int) (models.Project, error) {
	p, err := s.catalog.Project(id)
	if err != nil {
		return models.Project{}, err
	}
	if s.views != nil {
		if err := s.views.Increment(ctx, id, s.now()); err != nil {
			// best effort
			logger(ctx).Warn("record project view", "project_id", id, "err", err)
		}
	}
	return p, nil
}

// Title returns the project's title, or "" for unknown ids.
func (s *ProjectService) Title(id int) string {
	p, err := s.catalog.Project(id)
	if err != nil {
		return ""
	}
	return p.Title
}

// NormalizeCategory maps "no selection" to the wildcard category.
func NormalizeCategory(category string) string {
	if category == "" {
		return models.AllCategories
	}
	return category
}
