package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Zachkp/showcase/internal/database"
	"github.com/Zachkp/showcase/internal/models"
)

type VisitorRepository struct {
	db *sql.DB
}

func NewVisitorRepository(db *sql.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

func (r *VisitorRepository) Create(ctx context.Context, v *models.Visit) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, database.FormatTime(v.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		v.ID = id
	}
	return nil
}

// CountSince counts visits at or after since. A zero since counts every visit.
func (r *VisitorRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`,
		database.FormatTime(since),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count visits: %w", err)
	}
	return n, nil
}

func (r *VisitorRepository) CountUnique(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unique visitors: %w", err)
	}
	return n, nil
}

// Recent returns the latest visits, newest first.
func (r *VisitorRepository) Recent(ctx context.Context, limit int) ([]models.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query visits: %w", err)
	}
	defer rows.Close()

	var visits []models.Visit
	for rows.Next() {
		var (
			v  models.Visit
			ts database.Time
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.Timestamp = ts.Time
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// DeleteBefore removes visits older than cutoff and reports how many went.
func (r *VisitorRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, database.FormatTime(cutoff))
	if err != nil {
		return 0, fmt.Errorf("delete visits: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
