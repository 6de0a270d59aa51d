// Package site serves the portfolio: a shared layout shell with navigation and
// footer, five pages, the home-page clock stream, and a few JSON endpoints.
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devstephenke-sys/portfolio/internal/clock"
	"github.com/devstephenke-sys/portfolio/internal/content"
)

// Options configures the HTTP handler.
type Options struct {
	Portfolio     *content.Portfolio
	Clock         *clock.Clock
	ClockInterval time.Duration
	Logger        *zap.Logger
}

// New builds the gin engine with all routes registered.
func New(opts Options) (*gin.Engine, error) {
	if opts.Portfolio == nil {
		return nil, errors.New("site: portfolio is required")
	}
	if opts.Clock == nil {
		opts.Clock = clock.New(time.UTC, "")
	}
	if opts.ClockInterval <= 0 {
		opts.ClockInterval = time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	renderer, err := newPageRenderer(templateFS)
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(requestID(), recovery(opts.Logger), accessLog(opts.Logger))
	r.StaticFS("/static", http.FS(static))

	s := &server{
		portfolio: opts.Portfolio,
		clock:     opts.Clock,
		interval:  opts.ClockInterval,
		logger:    opts.Logger,
	}
	s.routes(r)
	return r, nil
}

type server struct {
	portfolio *content.Portfolio
	clock     *clock.Clock
	interval  time.Duration
	logger    *zap.Logger
}

func (s *server) routes(r *gin.Engine) {
	// Pages and the health check also answer HEAD for link checkers and
	// uptime monitors.
	pages := []string{http.MethodGet, http.MethodHead}

	// Home page route
	r.Match(pages, "/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "home", page(s, c, "Home", HomeView{
			Portfolio: s.portfolio,
			Clock:     s.clock.Format(s.clock.Now()),
			ClockURL:  "/clock",
		}))
	})

	r.Match(pages, "/about", func(c *gin.Context) {
		c.HTML(http.StatusOK, "about", page(s, c, "About & Experience", s.portfolio))
	})

	r.Match(pages, "/skills", func(c *gin.Context) {
		c.HTML(http.StatusOK, "skills", page(s, c, "Skills & Expertise", s.portfolio))
	})

	r.Match(pages, "/projects", func(c *gin.Context) {
		c.HTML(http.StatusOK, "projects", page(s, c, "Featured Projects", s.portfolio))
	})

	r.Match(pages, "/contact", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact", page(s, c, "Get in Touch", s.portfolio))
	})

	// The contact form is a placeholder. Without JavaScript the browser still
	// posts here; 204 keeps it on the page and nothing is sent or kept.
	r.POST("/contact", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	r.GET("/clock", s.clockStream)

	r.Match(pages, "/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/api/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"projects": s.portfolio.Projects})
	})

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not_found", page(s, c, "Not Found", s.portfolio))
	})
}

func page[T any](s *server, c *gin.Context, title string, view T) Page[T] {
	path := c.Request.URL.Path
	return Page[T]{
		Title:      title,
		ActivePath: path,
		Nav:        Navigation(path),
		Year:       s.clock.Now().Year(),
		Owner:      s.portfolio.Profile.Name,
		Socials:    s.portfolio.Socials,
		Content:    view,
	}
}

// clockStream pushes the formatted time as server-sent "tick" events. The
// ticker is bound to the request: the home page opens the stream on load and
// the browser closes it on navigation, which cancels the request context.
func (s *server) clockStream(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	emit := func(t time.Time) error {
		c.SSEvent("tick", s.clock.Format(t))
		c.Writer.Flush()
		if err := c.Errors.Last(); err != nil {
			return err
		}
		return nil
	}

	if err := emit(s.clock.Now()); err != nil {
		return
	}
	if err := s.clock.Run(c.Request.Context(), s.interval, emit); err != nil {
		s.logger.Debug("clock stream closed", zap.Error(err))
	}
}
