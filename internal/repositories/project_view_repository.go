package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Zachkp/showcase/internal/database"
	"github.com/Zachkp/showcase/internal/models"
)

type ProjectViewRepository struct {
	db *sql.DB
}

func NewProjectViewRepository(db *sql.DB) *ProjectViewRepository {
	return &ProjectViewRepository{db: db}
}

func (r *ProjectViewRepository) Increment(ctx context.Context, projectID int, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO project_views (project_id, views, last_viewed_at) VALUES (?, 1, ?)
		ON CONFLICT(project_id) DO UPDATE SET
			views = views + 1,
			last_viewed_at = excluded.last_viewed_at`,
		projectID, database.FormatTime(at),
	)
	if err != nil {
		return fmt.Errorf("increment views for project %d: %w", projectID, err)
	}
	return nil
}

func (r *ProjectViewRepository) Total(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(views), 0) FROM project_views`).Scan(&n); err != nil {
		return 0, fmt.Errorf("sum project views: %w", err)
	}
	return n, nil
}

// Top returns the most viewed projects, ties broken by most recent view.
// Titles are left empty; the database knows ids only.
func (r *ProjectViewRepository) Top(ctx context.Context, limit int) ([]models.ProjectViews, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT project_id, views
		FROM project_views
		ORDER BY views DESC, last_viewed_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top projects: %w", err)
	}
	defer rows.Close()

	var out []models.ProjectViews
	for rows.Next() {
		var pv models.ProjectViews
		if err := rows.Scan(&pv.ProjectID, &pv.Views); err != nil {
			return nil, fmt.Errorf("scan project views: %w", err)
		}
		out = append(out, pv)
	}
	return out, rows.Err()
}
