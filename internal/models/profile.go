package models

import "slices"

// Profile is the content of the about page.
type Profile struct {
	Name     string       `json:"name"`
	Headline string       `json:"headline"`
	Bio      string       `json:"bio"` // Markdown
	Email    string       `json:"email"`
	Location string       `json:"location"`
	Skills   []SkillGroup `json:"skills"`
	Work     []Position   `json:"work"`
	Schools  []Position   `json:"education"`
	Links    []Link       `json:"links"`
}

type SkillGroup struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Position is a job or a course of study.
type Position struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	LogoPath     string   `json:"logo_path,omitempty"`
	Highlights   []string `json:"highlights"`
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	p.Skills = slices.Clone(p.Skills)
	for i := range p.Skills {
		p.Skills[i].Skills = slices.Clone(p.Skills[i].Skills)
	}
	p.Work = clonePositions(p.Work)
	p.Schools = clonePositions(p.Schools)
	p.Links = slices.Clone(p.Links)
	return p
}

func clonePositions(in []Position) []Position {
	out := slices.Clone(in)
	for i := range out {
		out[i].Highlights = slices.Clone(out[i].Highlights)
	}
	return out
}
