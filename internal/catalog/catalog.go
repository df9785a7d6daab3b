// Package catalog holds the portfolio's static content: the project
// collection, the category enumeration and the owner's profile.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Zachkp/showcase/internal/models"
)

// ErrProjectNotFound is returned when no project has the requested id.
var ErrProjectNotFound = errors.New("project not found")

// Catalog is immutable after New returns and safe for concurrent readers.
type Catalog struct {
	categories []string
	projects   []models.Project
	byID       map[int]int
	profile    models.Profile
}

// New validates the content and builds a catalog. categories must not
// include models.AllCategories; it is implied.
func New(categories []string, projects []models.Project, profile models.Profile) (*Catalog, error) {
	var errs []error

	declared := make(map[string]bool, len(categories))
	for _, c := range categories {
		switch {
		case c == "":
			errs = append(errs, errors.New("empty category label"))
		case c == models.AllCategories:
			errs = append(errs, fmt.Errorf("category %q is reserved", c))
		case declared[c]:
			errs = append(errs, fmt.Errorf("duplicate category %q", c))
		}
		declared[c] = true
	}

	byID := make(map[int]int, len(projects))
	for i, p := range projects {
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
		if _, dup := byID[p.ID]; dup {
			errs = append(errs, fmt.Errorf("project %d: duplicate id", p.ID))
		}
		byID[p.ID] = i
		if p.Category == models.AllCategories {
			errs = append(errs, fmt.Errorf("project %d: category %q is reserved", p.ID, p.Category))
		} else if p.Category != "" && !declared[p.Category] {
			errs = append(errs, fmt.Errorf("project %d: undeclared category %q", p.ID, p.Category))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return &Catalog{
		categories: slices.Clone(categories),
		projects:   cloneProjects(projects),
		byID:       byID,
		profile:    profile.Clone(),
	}, nil
}

// Default returns the catalog built from the content shipped with the site.
func Default() *Catalog {
	c, err := New(Categories, Projects, Owner)
	if err != nil {
		panic(err)
	}
	return c
}

// Categories returns the selectable categories, "All" first.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.categories)+1)
	out = append(out, models.AllCategories)
	return append(out, c.categories...)
}

// Projects returns a copy of the full collection in authoring order.
func (c *Catalog) Projects() []models.Project {
	return cloneProjects(c.projects)
}

// Project returns a copy of the project with the given id.
func (c *Catalog) Project(id int) (models.Project, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %d", ErrProjectNotFound, id)
	}
	return c.projects[i].Clone(), nil
}

// Featured returns the featured projects in authoring order.
func (c *Catalog) Featured() []models.Project {
	var out []models.Project
	for _, p := range c.projects {
		if p.Featured {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (c *Catalog) Filter(category, searchTerm string) []models.Project {
	visible := Filter(c.projects, category, searchTerm)
	for i := range visible {
		visible[i] = visible[i].Clone()
	}
	return visible
}

func (c *Catalog) Profile() models.Profile {
	return c.profile.Clone()
}

func cloneProjects(in []models.Project) []models.Project {
	out := make([]models.Project, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
