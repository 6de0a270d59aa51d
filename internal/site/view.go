package site

import (
	"github.com/devstephenke-sys/portfolio/internal/content"
)

// Page wraps the shared layout data and page-specific Content.
type Page[T any] struct {
	Title      string
	ActivePath string
	Nav        []NavLink
	Year       int
	Owner      string
	Socials    []content.Social
	Content    T
}

// HomeView adds the server-rendered clock reading to the portfolio.
type HomeView struct {
	*content.Portfolio
	Clock    string
	ClockURL string
}
