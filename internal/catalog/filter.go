package catalog

import (
	"strings"

	"github.com/Zachkp/showcase/internal/models"
)

// Filter returns the projects visible for the selected category and search
// term, in their original order.
//
// A category of models.AllCategories keeps every project; any other value
// must equal the project's category exactly. A non-empty search term keeps
// projects whose title, client or category contains it, ignoring case.
// The result is never nil and never shares storage with all.
func Filter(all []models.Project, category, searchTerm string) []models.Project {
	term := strings.ToLower(searchTerm)

	visible := make([]models.Project, 0, len(all))
	for _, p := range all {
		if category != models.AllCategories && p.Category != category {
			continue
		}
		if term != "" && !matches(p, term) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

// matches expects term to be lowercased already.
func matches(p models.Project, term string) bool {
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Client), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}
