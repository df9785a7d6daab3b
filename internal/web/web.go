// Package web embeds the site's HTML templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Zachkp/showcase/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var printer = message.NewPrinter(language.English)

// Funcs are available to every template.
var Funcs = template.FuncMap{
	"number": func(n int64) string { return printer.Sprintf("%d", n) },
	"join":   strings.Join,
	"slug":   Slug,
	"datetime": func(t time.Time) string {
		return t.UTC().Format("Jan 2, 2006 15:04 UTC")
	},
	"isAll": func(category string) bool { return category == models.AllCategories },
	"year":  func() int { return time.Now().Year() },
}

// Templates parses every embedded template. Templates are addressed by file
// name, or by the name given in a define block.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// Static serves the embedded static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Slug turns a category label into an HTML id fragment:
// "Digital Ads/Banners" becomes "digital-ads-banners".
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// DetailTemplate names the modal template for a layout variant.
func DetailTemplate(layout models.LayoutVariant) (string, error) {
	switch layout {
	case models.LayoutStandard:
		return "detail-standard", nil
	case models.LayoutDisneyAudit:
		return "detail-disney-audit", nil
	case models.LayoutAdobeCompetition:
		return "detail-adobe-competition", nil
	case models.LayoutVideoShowcase:
		return "detail-video-showcase", nil
	default:
		return "", fmt.Errorf("no detail template for layout %q", layout)
	}
}
