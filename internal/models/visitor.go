package models

import "time"

// Visit is a single tracked page view. The client IP is stored hashed.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// ProjectViews counts modal opens for one project.
type ProjectViews struct {
	ProjectID int    `json:"project_id"`
	Title     string `json:"title"`
	Views     int64  `json:"views"`
}

type AdminStats struct {
	TotalVisitors    int64          `json:"total_visitors"`
	UniqueVisitors   int64          `json:"unique_visitors"`
	VisitorsToday    int64          `json:"visitors_today"`
	VisitorsThisWeek int64          `json:"visitors_this_week"`
	TotalViews       int64          `json:"total_project_views"`
	TopProjects      []ProjectViews `json:"top_projects"`
	RecentVisitors   []Visit        `json:"recent_visitors"`
}
