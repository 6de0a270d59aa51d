// Package content holds the static portfolio document and its model.
//
// The document is authored in portfolio.yaml and compiled into the binary.
// A file on disk can replace it at startup, which keeps the content editable
// without a rebuild, but nothing is ever written back.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultDocument []byte

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid portfolio content")

// Default parses the embedded portfolio document.
func Default() (*Portfolio, error) {
	return Parse(defaultDocument)
}

// Load reads a portfolio document from path. An empty path yields Default.
func Load(path string) (*Portfolio, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML portfolio document. Unknown keys are
// rejected so typos surface at startup instead of as missing sections.
func Parse(data []byte) (*Portfolio, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Portfolio
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parse portfolio: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate reports every structural problem in the document.
func (p *Portfolio) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if strings.TrimSpace(p.Profile.Name) == "" {
		add("profile name is required")
	}

	seen := make(map[string]bool, len(p.Projects))
	for i, proj := range p.Projects {
		if strings.TrimSpace(proj.Title) == "" {
			add("project %d has no title", i)
			continue
		}
		if seen[proj.Title] {
			add("duplicate project title %q", proj.Title)
		}
		seen[proj.Title] = true
		if !isWebURL(proj.Link) {
			add("project %q link %q is not an absolute http(s) URL", proj.Title, proj.Link)
		}
	}

	for i, s := range p.Socials {
		if strings.TrimSpace(s.Label) == "" || !isWebURL(s.URL) {
			add("social %d needs a label and an absolute http(s) URL", i)
		}
	}

	if strings.TrimSpace(p.Contact.Email) == "" {
		add("contact email is required")
	}
	if strings.TrimSpace(p.Contact.Phone) == "" {
		add("contact phone is required")
	}

	return errors.Join(errs...)
}

// Warnings lists problems that do not stop the site from rendering.
func (p *Portfolio) Warnings() []string {
	var out []string
	for _, g := range p.SkillGroups {
		for _, s := range g.Skills {
			if s.Level != s.Width() {
				out = append(out, fmt.Sprintf("skill %q level %d is outside [0,100] and will render as %d%%", s.Name, s.Level, s.Width()))
			}
		}
	}
	for _, proj := range p.Projects {
		if len(proj.Tags) == 0 {
			out = append(out, fmt.Sprintf("project %q has no tags", proj.Title))
		}
	}
	return out
}

// Project looks up a project by its title.
func (p *Portfolio) Project(title string) (Project, bool) {
	for _, proj := range p.Projects {
		if proj.Title == title {
			return proj, true
		}
	}
	return Project{}, false
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
