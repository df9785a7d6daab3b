package services

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Zachkp/showcase/internal/models"
)

// ProfileView is the about page content with the bio rendered to HTML.
type ProfileView struct {
	models.Profile
	BioHTML template.HTML
}

type ProfileService struct {
	view ProfileView
}

// NewProfileService renders the profile's Markdown bio once.
func NewProfileService(p models.Profile) (*ProfileService, error) {
	bio, err := RenderMarkdown(p.Bio)
	if err != nil {
		return nil, fmt.Errorf("render bio: %w", err)
	}
	return &ProfileService{view: ProfileView{Profile: p, BioHTML: bio}}, nil
}

func (s *ProfileService) Profile() ProfileView {
	return s.view
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Typographer),
)

// RenderMarkdown converts Markdown to HTML. Raw HTML in the source is
// dropped, so the result is safe to embed in a page.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
