package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Zachkp/showcase/internal/catalog"
	"github.com/Zachkp/showcase/internal/config"
	"github.com/Zachkp/showcase/internal/mailer"
	"github.com/Zachkp/showcase/internal/middlewares"
	"github.com/Zachkp/showcase/internal/models"
	"github.com/Zachkp/showcase/internal/repositories"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (s *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func newTestServer(t *testing.T) (*Server, *recordingSender) {
	t.Helper()
	cfg := &config.Config{
		Port:             "0",
		GinMode:          "test",
		DatabasePath:     ":memory:",
		VisitorRetention: 365 * 24 * time.Hour,
		HashSalt:         "test-salt",
		AdminUsername:    "owner",
		AdminPassword:    "hunter2",
		ContactRateEvery: time.Hour,
		ContactRateBurst: 1,
	}
	sender := &recordingSender{}
	srv, err := newServer(context.Background(), cfg, catalog.Default(), sender)
	if err != nil {
		t.Fatalf("newServer() error = %v", err)
	}
	t.Cleanup(func() { srv.Close() })
	return srv, sender
}

func do(t *testing.T, srv *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	srv.HTTP.Handler.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, srv *Server, target string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return do(t, srv, req)
}

func postForm(t *testing.T, srv *Server, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(t, srv, req)
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return env
}

func TestHomePage(t *testing.T) {
	srv, _ := newTestServer(t)

	w := get(t, srv, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`id="project-grid"`, `value="All"`, `id="search"`, "Adidas Digital Banner"} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestGalleryFragment(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("search", func(t *testing.T) {
		w := get(t, srv, "/projects?category=All&q=adidas", "HX-Request", "true")
		body := w.Body.String()
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if strings.Contains(body, "<html") {
			t.Fatal("fragment rendered the full page")
		}
		if strings.Count(body, "data-project-id=") != 1 || !strings.Contains(body, `data-project-id="4"`) {
			t.Fatalf("want only project 4, got:\n%s", body)
		}
	})

	t.Run("category", func(t *testing.T) {
		w := get(t, srv, "/projects?category=Video+Production", "HX-Request", "true")
		body := w.Body.String()
		if !strings.Contains(body, `data-project-id="3"`) || !strings.Contains(body, `data-project-id="8"`) {
			t.Fatalf("video projects missing:\n%s", body)
		}
		if strings.Contains(body, `data-project-id="4"`) {
			t.Fatal("project outside the category rendered")
		}
	})

	t.Run("empty", func(t *testing.T) {
		w := get(t, srv, "/projects?category=Print+Design&q=adidas", "HX-Request", "true")
		if !strings.Contains(w.Body.String(), "No projects match") {
			t.Fatalf("empty state missing:\n%s", w.Body.String())
		}
	})

	t.Run("full_page_without_htmx", func(t *testing.T) {
		w := get(t, srv, "/projects?q=adidas")
		if !strings.Contains(w.Body.String(), "<html") {
			t.Fatal("plain request did not get the full page")
		}
	})
}

func TestProjectDetail(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		path       string
		wantStatus int
		want       string
	}{
		{path: "/projects/1", wantStatus: http.StatusOK, want: `data-layout="standard"`},
		{path: "/projects/5", wantStatus: http.StatusOK, want: `data-layout="disneyAudit"`},
		{path: "/projects/6", wantStatus: http.StatusOK, want: `data-layout="adobeCompetition"`},
		{path: "/projects/3", wantStatus: http.StatusOK, want: `data-layout="videoShowcase"`},
		{path: "/projects/999", wantStatus: http.StatusNotFound, want: "doesn"},
		{path: "/projects/abc", wantStatus: http.StatusNotFound, want: "doesn"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			w := get(t, srv, tc.path, "HX-Request", "true")
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			if !strings.Contains(w.Body.String(), tc.want) {
				t.Fatalf("body missing %q:\n%s", tc.want, w.Body.String())
			}
		})
	}
}

func TestAboutAndTabs(t *testing.T) {
	srv, _ := newTestServer(t)

	if w := get(t, srv, "/about"); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Presentation Expert") {
		t.Fatalf("about: status %d", w.Code)
	}
	if w := get(t, srv, "/work-content", "HX-Request", "true"); !strings.Contains(w.Body.String(), "Freelance Designer") {
		t.Fatalf("work tab:\n%s", w.Body.String())
	}
	if w := get(t, srv, "/education-content", "HX-Request", "true"); !strings.Contains(w.Body.String(), "Bachelor of Science, Marketing") {
		t.Fatalf("education tab:\n%s", w.Body.String())
	}
}

func TestStaticHealthAndNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	if w := get(t, srv, "/healthz"); w.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", w.Code)
	}
	if w := get(t, srv, "/static/css/site.css"); w.Code != http.StatusOK {
		t.Fatalf("static status = %d", w.Code)
	}
	if w := get(t, srv, "/privacy"); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "365") {
		t.Fatalf("privacy: status %d", w.Code)
	}
	if w := get(t, srv, "/nope"); w.Code != http.StatusNotFound {
		t.Fatalf("unknown route status = %d", w.Code)
	}
}

func TestProjectsAPI(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("list", func(t *testing.T) {
		env := decode(t, get(t, srv, "/api/v1/projects?q=ADIDAS"))
		var projects []struct {
			ID int `json:"id"`
		}
		if err := json.Unmarshal(env.Data, &projects); err != nil {
			t.Fatal(err)
		}
		if env.Status != "success" || len(projects) != 1 || projects[0].ID != 4 {
			t.Fatalf("got %s %+v", env.Status, projects)
		}
	})

	t.Run("empty_list_is_array", func(t *testing.T) {
		env := decode(t, get(t, srv, "/api/v1/projects?category=Nope"))
		if string(env.Data) != "[]" {
			t.Fatalf("data = %s, want []", env.Data)
		}
	})

	t.Run("get", func(t *testing.T) {
		w := get(t, srv, "/api/v1/projects/6")
		env := decode(t, w)
		if w.Code != http.StatusOK || !strings.Contains(string(env.Data), `"adobeCompetition"`) {
			t.Fatalf("status %d data %s", w.Code, env.Data)
		}
	})

	t.Run("bad_id", func(t *testing.T) {
		if w := get(t, srv, "/api/v1/projects/x"); w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
		w := get(t, srv, "/api/v1/projects/404")
		if env := decode(t, w); w.Code != http.StatusNotFound || env.Status != "error" {
			t.Fatalf("status %d env %+v", w.Code, env)
		}
	})

	t.Run("categories", func(t *testing.T) {
		env := decode(t, get(t, srv, "/api/v1/categories"))
		var cats []string
		if err := json.Unmarshal(env.Data, &cats); err != nil {
			t.Fatal(err)
		}
		if len(cats) == 0 || cats[0] != "All" {
			t.Fatalf("categories = %v", cats)
		}
	})

	t.Run("cors", func(t *testing.T) {
		w := get(t, srv, "/api/v1/profile", "Origin", "https://elsewhere.example")
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("Access-Control-Allow-Origin = %q", got)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/projects/4", nil)
		req.Header.Set("Origin", "https://elsewhere.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := do(t, srv, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("preflight status = %d, want %d", w.Code, http.StatusNoContent)
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodGet) {
			t.Fatalf("Access-Control-Allow-Methods = %q", got)
		}
	})
}

func TestContactForm(t *testing.T) {
	srv, sender := newTestServer(t)

	if w := get(t, srv, "/contact-form", "HX-Request", "true"); w.Code != http.StatusOK {
		t.Fatalf("form status = %d", w.Code)
	}

	w := postForm(t, srv, "/contact", url.Values{"fullName": {"Ann"}, "email": {"not-an-email"}, "message": {"hi"}})
	if !strings.Contains(w.Body.String(), "notice-error") || sender.count() != 0 {
		t.Fatalf("invalid email accepted:\n%s", w.Body.String())
	}

	valid := url.Values{"fullName": {"Ann"}, "email": {"ann@example.com"}, "message": {"Loved the Nike work."}}
	w = postForm(t, srv, "/contact", valid)
	if !strings.Contains(w.Body.String(), "notice-success") || sender.count() != 1 {
		t.Fatalf("valid message not sent:\n%s", w.Body.String())
	}

	w = postForm(t, srv, "/contact", valid)
	if !strings.Contains(w.Body.String(), "try again later") || sender.count() != 1 {
		t.Fatalf("second message not rate limited:\n%s", w.Body.String())
	}
}

func TestAdminFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	if w := get(t, srv, "/admin/dashboard"); w.Code != http.StatusFound {
		t.Fatalf("unauthenticated dashboard status = %d", w.Code)
	}

	w := postForm(t, srv, "/admin/login", url.Values{"username": {"owner"}, "password": {"wrong"}})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d", w.Code)
	}

	w = postForm(t, srv, "/admin/login", url.Values{"username": {"owner"}, "password": {"hunter2"}})
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/admin/dashboard" {
		t.Fatalf("login status %d location %q", w.Code, w.Header().Get("Location"))
	}
	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middlewares.AdminCookie {
			session = c
		}
	}
	if session == nil || session.Value == "" || !session.HttpOnly {
		t.Fatalf("session cookie = %+v", session)
	}

	// one counted modal open
	get(t, srv, "/projects/5", "HX-Request", "true")

	authed := func(target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.AddCookie(session)
		return do(t, srv, req)
	}

	if w := authed("/admin/dashboard"); w.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", w.Code)
	}
	if w := authed("/admin/visitors"); w.Code != http.StatusOK {
		t.Fatalf("visitors status = %d", w.Code)
	}

	w = authed("/admin/api/stats")
	env := decode(t, w)
	var stats struct {
		TotalViews  int64 `json:"total_project_views"`
		TopProjects []struct {
			ProjectID int    `json:"project_id"`
			Title     string `json:"title"`
		} `json:"top_projects"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatal(err)
	}
	if stats.TotalViews != 1 || len(stats.TopProjects) != 1 || stats.TopProjects[0].ProjectID != 5 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.TopProjects[0].Title != "Disney+ Brand Consistency Audit" {
		t.Fatalf("top project title = %q", stats.TopProjects[0].Title)
	}

	w = authed("/admin/export/stats")
	if !strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment") {
		t.Fatalf("export Content-Disposition = %q", w.Header().Get("Content-Disposition"))
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/privacy/cleanup", nil)
	req.AddCookie(session)
	w = do(t, srv, req)
	if body := w.Body.String(); !strings.Contains(body, `class="admin-notice"`) || !strings.Contains(body, "Removed 0 expired visits.") {
		t.Fatalf("cleanup:\n%s", body)
	}
	if strings.Contains(w.Body.String(), "notice-success") {
		t.Fatal("cleanup rendered the contact form fragment")
	}
}

func TestAdminPagesWithRecordedVisits(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()

	if err := srv.visitors.Track(ctx, "203.0.113.7", "Mozilla/5.0", "/about"); err != nil {
		t.Fatalf("Track() error = %v", err)
	}
	if err := srv.visitors.Track(ctx, "198.51.100.2", "curl/8.0", "/"); err != nil {
		t.Fatalf("Track() error = %v", err)
	}

	w := postForm(t, srv, "/admin/login", url.Values{"username": {"owner"}, "password": {"hunter2"}})
	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middlewares.AdminCookie {
			session = c
		}
	}
	if session == nil {
		t.Fatal("no session cookie")
	}
	authed := func(target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.AddCookie(session)
		return do(t, srv, req)
	}

	for _, path := range []string{"/admin/dashboard", "/admin/visitors", "/admin/api/stats", "/admin/export/stats"} {
		if w := authed(path); w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, body:\n%s", path, w.Code, w.Body.String())
		}
	}

	if body := authed("/admin/visitors").Body.String(); !strings.Contains(body, "/about") || !strings.Contains(body, "curl/8.0") {
		t.Fatalf("visitors page missing recorded visits:\n%s", body)
	}

	env := decode(t, authed("/admin/api/stats"))
	var stats struct {
		Total  int64 `json:"total_visitors"`
		Unique int64 `json:"unique_visitors"`
		Recent []struct {
			Path      string    `json:"path"`
			Timestamp time.Time `json:"timestamp"`
		} `json:"recent_visitors"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatal(err)
	}
	if stats.Total != 2 || stats.Unique != 2 || len(stats.Recent) != 2 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.Recent[0].Timestamp.IsZero() {
		t.Fatal("recent visit has no timestamp")
	}
}

func TestTrackedPageViewReachesDashboard(t *testing.T) {
	srv, _ := newTestServer(t)

	if w := get(t, srv, "/about"); w.Code != http.StatusOK {
		t.Fatalf("about status = %d", w.Code)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		stats, err := srv.visitors.Stats(context.Background())
		if err != nil {
			t.Fatalf("Stats() error = %v", err)
		}
		if stats.TotalVisitors == 1 {
			if len(stats.RecentVisitors) != 1 || stats.RecentVisitors[0].Path != "/about" {
				t.Fatalf("recent visitors = %+v", stats.RecentVisitors)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("visit not recorded, total = %d", stats.TotalVisitors)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestAdminCleanupRemovesExpiredVisits(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()

	repo := repositories.NewVisitorRepository(srv.db)
	for _, v := range []models.Visit{
		{HashedIP: "old", Path: "/", Timestamp: time.Now().Add(-2 * 365 * 24 * time.Hour)},
		{HashedIP: "new", Path: "/", Timestamp: time.Now()},
	} {
		if err := repo.Create(ctx, &v); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	w := postForm(t, srv, "/admin/login", url.Values{"username": {"owner"}, "password": {"hunter2"}})
	req := httptest.NewRequest(http.MethodPost, "/admin/privacy/cleanup", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	body := do(t, srv, req).Body.String()
	if !strings.Contains(body, `data-removed="1"`) {
		t.Fatalf("cleanup:\n%s", body)
	}

	stats, err := srv.visitors.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalVisitors != 1 {
		t.Fatalf("TotalVisitors = %d, want 1", stats.TotalVisitors)
	}
}
