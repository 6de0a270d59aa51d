package content

import (
	"fmt"
	"net/url"
	"strings"
)

// Portfolio is everything the site renders.
type Portfolio struct {
	Profile        Profile         `yaml:"profile" json:"profile"`
	Experience     []Experience    `yaml:"experience" json:"experience"`
	Education      []Education     `yaml:"education" json:"education"`
	Certifications []Certification `yaml:"certifications" json:"certifications"`
	SkillGroups    []SkillGroup    `yaml:"skill_groups" json:"skill_groups"`
	Languages      []string        `yaml:"languages" json:"languages"`
	Projects       []Project       `yaml:"projects" json:"projects"`
	Contact        Contact         `yaml:"contact" json:"contact"`
	Socials        []Social        `yaml:"socials" json:"socials"`
}

// Profile is the biography shown on the home and about pages.
type Profile struct {
	Name      string   `yaml:"name" json:"name"`
	FirstLine string   `yaml:"first_line" json:"first_line"`
	LastLine  string   `yaml:"last_line" json:"last_line"`
	Headline  string   `yaml:"headline" json:"headline"`
	Tagline   string   `yaml:"tagline" json:"tagline"`
	Summary   string   `yaml:"summary" json:"summary"`
	Location  string   `yaml:"location" json:"location"`
	Badges    []Badge  `yaml:"badges" json:"badges"`
	Stats     []Stat   `yaml:"stats" json:"stats"`
	Story     []string `yaml:"story" json:"story"`
}

// Badge is a status pill under the home heading. Pulse marks the animated dot.
type Badge struct {
	Label string `yaml:"label" json:"label"`
	Tone  string `yaml:"tone" json:"tone"`
	Pulse bool   `yaml:"pulse" json:"pulse"`
}

type Stat struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Skill is a named capability with a self-assessed percentage.
type Skill struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
}

// Width is Level clamped to [0,100], used as the bar's CSS percentage.
func (s Skill) Width() int {
	switch {
	case s.Level < 0:
		return 0
	case s.Level > 100:
		return 100
	default:
		return s.Level
	}
}

type SkillGroup struct {
	Title  string  `yaml:"title" json:"title"`
	Icon   string  `yaml:"icon" json:"icon"`
	Skills []Skill `yaml:"skills" json:"skills"`
}

// Experience is one entry of the work timeline.
type Experience struct {
	Role         string `yaml:"role" json:"role"`
	Organization string `yaml:"organization" json:"organization"`
	Period       string `yaml:"period" json:"period"`
	Description  string `yaml:"description" json:"description"`
	Current      bool   `yaml:"current" json:"current"`
}

type Education struct {
	Qualification string `yaml:"qualification" json:"qualification"`
	Institution   string `yaml:"institution" json:"institution"`
	Period        string `yaml:"period" json:"period"`
}

type Certification struct {
	Title     string `yaml:"title" json:"title"`
	Issuer    string `yaml:"issuer" json:"issuer"`
	Year      string `yaml:"year" json:"year,omitempty"`
	Highlight bool   `yaml:"highlight" json:"highlight"`
}

// Byline joins issuer and year the way the certification card prints them.
func (c Certification) Byline() string {
	if c.Year == "" {
		return c.Issuer
	}
	return c.Issuer + " • " + c.Year
}

// Project represents a portfolio project
type Project struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags" json:"tags"`
	Link        string   `yaml:"link" json:"link"`
	Image       string   `yaml:"image" json:"image,omitempty"`
}

const placeholderImage = "https://picsum.photos/seed/%s/800/450"

// ImageSource returns the project image, or a seeded placeholder when none
// was authored.
func (p Project) ImageSource() string {
	if strings.TrimSpace(p.Image) != "" {
		return p.Image
	}
	return fmt.Sprintf(placeholderImage, url.PathEscape(p.Title))
}

type Contact struct {
	Email        string `yaml:"email" json:"email"`
	Phone        string `yaml:"phone" json:"phone"`
	PhoneDisplay string `yaml:"phone_display" json:"phone_display"`
	Location     string `yaml:"location" json:"location"`
}

func (c Contact) MailTo() string {
	return "mailto:" + c.Email
}

func (c Contact) TelTo() string {
	return "tel:" + strings.ReplaceAll(c.Phone, " ", "")
}

// Social is an external profile link.
type Social struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
	Icon  string `yaml:"icon" json:"icon"`
}
