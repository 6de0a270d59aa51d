// Package clock drives the live time display on the home page.
package clock

import (
	"context"
	"errors"
	"time"
)

// DefaultLayout mirrors a browser's en-US toLocaleTimeString output.
const DefaultLayout = "3:04:05 PM"

var ErrInvalidInterval = errors.New("clock interval must be positive")

// Clock reads and formats wall time in a fixed location.
type Clock struct {
	loc    *time.Location
	layout string
	now    func() time.Time
}

// New returns a Clock for loc. A nil loc means UTC and an empty layout means
// DefaultLayout.
func New(loc *time.Location, layout string) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	if layout == "" {
		layout = DefaultLayout
	}
	return &Clock{loc: loc, layout: layout, now: time.Now}
}

// WithNow swaps the time source; tests use it to freeze the clock.
func (c *Clock) WithNow(now func() time.Time) *Clock {
	cp := *c
	cp.now = now
	return &cp
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *Clock) Format(t time.Time) string {
	return t.In(c.loc).Format(c.layout)
}

// Run calls emit with the current time once per interval until ctx is done.
// The ticker lives exactly as long as the call: it is created on entry and
// stopped on every return path.
func (c *Clock) Run(ctx context.Context, interval time.Duration, emit func(time.Time) error) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := emit(c.Now()); err != nil {
				return err
			}
		}
	}
}
