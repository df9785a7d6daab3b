package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Zachkp/showcase/internal/models"
	"github.com/Zachkp/showcase/internal/repositories"
)

const (
	topProjectsLimit    = 10
	recentVisitorsLimit = 50
)

// VisitRepository stores tracked visits.
type VisitRepository interface {
	Create(ctx context.Context, v *models.Visit) error
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountUnique(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.Visit, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ViewStatsRepository reads project view counters.
type ViewStatsRepository interface {
	Total(ctx context.Context) (int64, error)
	Top(ctx context.Context, limit int) ([]models.ProjectViews, error)
}

var (
	_ VisitRepository     = (*repositories.VisitorRepository)(nil)
	_ ViewStatsRepository = (*repositories.ProjectViewRepository)(nil)
	_ ViewRecorder        = (*repositories.ProjectViewRepository)(nil)
)

// VisitorService records visits with hashed client IPs and builds the
// admin statistics.
type VisitorService struct {
	visits    VisitRepository
	views     ViewStatsRepository
	projects  *ProjectService
	salt      string
	retention time.Duration
	now       func() time.Time
}

// NewVisitorService creates a VisitorService. An empty salt is replaced by a
// random per-process one, so hashes are only stable for the process lifetime.
func NewVisitorService(visits VisitRepository, views ViewStatsRepository, projects *ProjectService, salt string, retention time.Duration) *VisitorService {
	if salt == "" {
		salt = RandomToken()
	}
	return &VisitorService{
		visits:    visits,
		views:     views,
		projects:  projects,
		salt:      salt,
		retention: retention,
		now:       time.Now,
	}
}

// HashIP returns a short salted digest of ip, stable for a given salt.
func (s *VisitorService) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *VisitorService) Track(ctx context.Context, ip, userAgent, path string) error {
	return s.visits.Create(ctx, &models.Visit{
		HashedIP:  s.HashIP(ip),
		UserAgent: userAgent,
		Path:      path,
		Timestamp: s.now(),
	})
}

// Cleanup deletes visits older than the retention period.
func (s *VisitorService) Cleanup(ctx context.Context) (int64, error) {
	n, err := s.visits.DeleteBefore(ctx, s.now().Add(-s.retention))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger(ctx).Info("privacy cleanup removed old visits", "count", n, "retention", s.retention)
	}
	return n, nil
}

func (s *VisitorService) Stats(ctx context.Context) (*models.AdminStats, error) {
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	stats := &models.AdminStats{}
	var err error
	if stats.TotalVisitors, err = s.visits.CountSince(ctx, time.Time{}); err != nil {
		return nil, err
	}
	if stats.UniqueVisitors, err = s.visits.CountUnique(ctx); err != nil {
		return nil, err
	}
	if stats.VisitorsToday, err = s.visits.CountSince(ctx, startOfDay); err != nil {
		return nil, err
	}
	if stats.VisitorsThisWeek, err = s.visits.CountSince(ctx, now.Add(-7*24*time.Hour)); err != nil {
		return nil, err
	}
	if stats.TotalViews, err = s.views.Total(ctx); err != nil {
		return nil, err
	}
	if stats.TopProjects, err = s.views.Top(ctx, topProjectsLimit); err != nil {
		return nil, err
	}
	for i := range stats.TopProjects {
		stats.TopProjects[i].Title = s.projects.Title(stats.TopProjects[i].ProjectID)
	}
	if stats.RecentVisitors, err = s.visits.Recent(ctx, recentVisitorsLimit); err != nil {
		return nil, err
	}
	return stats, nil
}

// RandomToken returns 32 random bytes, hex encoded.
func RandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("generate token: %v", err))
	}
	return hex.EncodeToString(b)
}
