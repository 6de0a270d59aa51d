package site

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/devstephenke-sys/portfolio/internal/clock"
	"github.com/devstephenke-sys/portfolio/internal/content"
)

var frozen = time.Date(2026, 10, 17, 11, 4, 5, 0, time.UTC)

func newTestEngine(t *testing.T, p *content.Portfolio) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if p == nil {
		var err error
		p, err = content.Default()
		require.NoError(t, err)
	}
	clk := clock.New(time.FixedZone("EAT", 3*60*60), "").WithNow(func() time.Time { return frozen })

	r, err := New(Options{Portfolio: p, Clock: clk, ClockInterval: 10 * time.Millisecond})
	require.NoError(t, err)
	return r
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestNewRequiresPortfolio(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestEachRouteRendersOnePage(t *testing.T) {
	r := newTestEngine(t, nil)

	markers := map[string]string{
		"/":         "At a Glance",
		"/about":    "My Story",
		"/skills":   "Technical Languages",
		"/projects": "Featured Projects",
		"/contact":  "Send a Message",
	}

	for path, marker := range markers {
		t.Run(path, func(t *testing.T) {
			w := get(t, r, path)
			require.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()

			assert.Contains(t, body, marker)
			for other, otherMarker := range markers {
				if other != path {
					assert.NotContains(t, body, otherMarker, "page %s leaked content of %s", path, other)
				}
			}

			assert.Equal(t, 1, strings.Count(body, `aria-current="page"`))
			assert.Contains(t, body, `<a href="`+path+`" class="nav-link is-active" aria-current="page">`)
			assert.Equal(t, 1, strings.Count(body, `<main class="main">`))
			assert.Contains(t, body, "&copy; 2026 Stephen Njuguna Mwangi")
		})
	}
}

func TestPagesAnswerHead(t *testing.T) {
	r := newTestEngine(t, nil)

	for _, path := range []string{"/", "/about", "/skills", "/projects", "/contact", "/healthz"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodHead, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestNavigationListsEveryPage(t *testing.T) {
	body := get(t, newTestEngine(t, nil), "/skills").Body.String()
	for _, item := range navItems {
		assert.Contains(t, body, `href="`+item.Path+`"`)
		assert.Contains(t, body, `<span class="nav-label">`+item.Name+`</span>`)
	}
}

func TestHomeRendersClock(t *testing.T) {
	body := get(t, newTestEngine(t, nil), "/").Body.String()

	assert.Contains(t, body, `<time data-clock data-clock-src="/clock">2:04:05 PM</time>`)
	assert.Contains(t, body, "Open for consultant roles")
	// html/template escapes "+" in text nodes.
	assert.Contains(t, body, `<div class="stat-value">4&#43;</div>`)
}

func TestProjectLinksAreLiteral(t *testing.T) {
	p, err := content.Default()
	require.NoError(t, err)

	body := get(t, newTestEngine(t, p), "/projects").Body.String()
	for _, proj := range p.Projects {
		assert.Contains(t, body, `<a href="`+proj.Link+`" target="_blank" rel="noopener noreferrer"`, proj.Title)
	}
	assert.Equal(t, len(p.Projects), strings.Count(body, `class="project-card`))
	assert.Contains(t, body, `src="https://picsum.photos/seed/Plant%20Disease%20Analysis/800/450"`)
}

func TestSkillBarsAreClamped(t *testing.T) {
	p, err := content.Default()
	require.NoError(t, err)
	p.SkillGroups = []content.SkillGroup{{
		Title: "Odd",
		Icon:  "code",
		Skills: []content.Skill{
			{Name: "Normal", Level: 95},
			{Name: "Boastful", Level: 140},
			{Name: "Modest", Level: -10},
		},
	}}

	body := get(t, newTestEngine(t, p), "/skills").Body.String()
	assert.Contains(t, body, `style="width: 95%"`)
	assert.Contains(t, body, `style="width: 100%"`)
	assert.Contains(t, body, `style="width: 0%"`)
	assert.NotContains(t, body, `width: 140%`)
}

func TestContactPage(t *testing.T) {
	body := get(t, newTestEngine(t, nil), "/contact").Body.String()

	assert.Contains(t, body, `href="mailto:devstephen.ke@gmail.com"`)
	assert.Contains(t, body, `href="tel:0745534836"`)
	assert.Contains(t, body, "0745 534 836")
	assert.Contains(t, body, "data-suppress-submit")
	assert.Contains(t, body, `onsubmit="return false"`)
	for _, field := range []string{"name", "email", "subject", "message"} {
		assert.Contains(t, body, `name="`+field+`"`)
	}
}

func TestContactSubmitDoesNotNavigate(t *testing.T) {
	r := newTestEngine(t, nil)

	w := httptest.NewRecorder()
	form := strings.NewReader("name=Jo&email=jo%40example.com&subject=Hi&message=Hello")
	req := httptest.NewRequest(http.MethodPost, "/contact", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Empty(t, w.Header().Get("Location"))
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	w := get(t, newTestEngine(t, nil), "/blog")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
	assert.NotContains(t, w.Body.String(), `aria-current="page"`)
}

func TestHealthz(t *testing.T) {
	w := get(t, newTestEngine(t, nil), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestProjectsAPI(t *testing.T) {
	w := get(t, newTestEngine(t, nil), "/api/projects")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Projects []content.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 5)
	assert.Equal(t, "Festo: Household Electrician", resp.Projects[0].Title)
}

func TestStaticAssets(t *testing.T) {
	r := newTestEngine(t, nil)

	w := get(t, r, "/static/css/site.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".nav-link.is-active")

	w = get(t, r, "/static/js/site.js")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EventSource")
}

func TestClockStreamStopsWithRequest(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	r := newTestEngine(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/clock", nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		r.ServeHTTP(w, req)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("clock stream did not stop after the request context ended")
	}

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))

	body := w.Body.String()
	assert.GreaterOrEqual(t, strings.Count(body, "event:tick"), 2)
	assert.Contains(t, body, "data:2:04:05 PM")
}

func TestRequestID(t *testing.T) {
	r := newTestEngine(t, nil)

	w := get(t, r, "/about")
	_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
	assert.NoError(t, err)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestRecoveryReturns500(t *testing.T) {
	r := newTestEngine(t, nil)
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	w := get(t, r, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
