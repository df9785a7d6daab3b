package models

import (
	"errors"
	"fmt"
	"slices"
)

// AllCategories is the wildcard category. It matches every project and is
// never assigned to a project.
const AllCategories = "All"

// MediaType describes how a project's media is presented.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// LayoutVariant selects the detail panel rendered in the project modal.
type LayoutVariant string

const (
	LayoutStandard         LayoutVariant = "standard"
	LayoutDisneyAudit      LayoutVariant = "disneyAudit"
	LayoutAdobeCompetition LayoutVariant = "adobeCompetition"
	LayoutVideoShowcase    LayoutVariant = "videoShowcase"
)

// Project is a single portfolio entry.
type Project struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Category    string        `json:"category"`
	Client      string        `json:"client"`
	Description string        `json:"description"`
	Images      []string      `json:"images"`
	Type        MediaType     `json:"type"`
	Featured    bool          `json:"featured,omitempty"`
	Year        int           `json:"year,omitempty"`
	Tools       []string      `json:"tools,omitempty"`
	Layout      LayoutVariant `json:"layout"`

	Audit       *AuditDetails       `json:"audit,omitempty"`
	Competition *CompetitionDetails `json:"competition,omitempty"`
}

// AuditDetails backs the disneyAudit layout.
type AuditDetails struct {
	Scope    string   `json:"scope"`
	Findings []string `json:"findings"`
	Outcome  string   `json:"outcome"`
}

// CompetitionDetails backs the adobeCompetition layout.
type CompetitionDetails struct {
	Brief     string `json:"brief"`
	Placement string `json:"placement"`
	Award     string `json:"award,omitempty"`
}

// Cover returns the first media reference, or "" if the project has none.
func (p Project) Cover() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Gallery returns every media reference after the cover.
func (p Project) Gallery() []string {
	if len(p.Images) < 2 {
		return nil
	}
	return p.Images[1:]
}

// IsVideo reports whether the project's media is a video.
func (p Project) IsVideo() bool {
	return p.Type == MediaVideo
}

// Clone returns a deep copy of p.
func (p Project) Clone() Project {
	p.Images = slices.Clone(p.Images)
	p.Tools = slices.Clone(p.Tools)
	if p.Audit != nil {
		audit := *p.Audit
		audit.Findings = slices.Clone(audit.Findings)
		p.Audit = &audit
	}
	if p.Competition != nil {
		competition := *p.Competition
		p.Competition = &competition
	}
	return p
}

// Validate checks the record shape. Category membership is checked by the
// catalog, which owns the category enumeration.
func (p Project) Validate() error {
	var errs []error
	if p.Title == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if p.Category == "" {
		errs = append(errs, errors.New("category is required"))
	}
	if len(p.Images) == 0 {
		errs = append(errs, errors.New("at least one image is required"))
	}
	switch p.Type {
	case MediaImage, MediaVideo:
	default:
		errs = append(errs, fmt.Errorf("unknown media type %q", p.Type))
	}
	if err := p.validateLayout(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("project %d: %w", p.ID, err)
	}
	return nil
}

func (p Project) validateLayout() error {
	switch p.Layout {
	case LayoutStandard:
		return nil
	case LayoutDisneyAudit:
		if p.Audit == nil {
			return fmt.Errorf("layout %s requires audit details", p.Layout)
		}
		return nil
	case LayoutAdobeCompetition:
		if p.Competition == nil {
			return fmt.Errorf("layout %s requires competition details", p.Layout)
		}
		return nil
	case LayoutVideoShowcase:
		if p.Type != MediaVideo {
			return fmt.Errorf("layout %s requires video media", p.Layout)
		}
		return nil
	default:
		return fmt.Errorf("unknown layout %q", p.Layout)
	}
}
