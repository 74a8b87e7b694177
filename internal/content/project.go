package content

import (
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Category is a classification tag attached to a project record.
type Category string

const (
	CategoryCommercial Category = "COMMERCIAL"
	CategoryMV         Category = "MV"
	CategoryJamesWebb  Category = "JAMES_WEBB"
)

// Categories lists every category the content service knows about, in menu order.
var Categories = []Category{CategoryCommercial, CategoryMV, CategoryJamesWebb}

// ParseCategory accepts the canonical form as well as the spaced display
// form ("JAMES WEBB") and is case-insensitive.
func ParseCategory(s string) (Category, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	for _, c := range Categories {
		if string(c) == normalized {
			return c, true
		}
	}
	return "", false
}

// UnmarshalYAML stores hand-written categories ("JAMES WEBB", "mv") in their
// canonical form. Unknown values are kept as written so settings validation
// can report them with their field path.
func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if parsed, ok := ParseCategory(raw); ok {
		*c = parsed
		return nil
	}
	*c = Category(raw)
	return nil
}

// Label returns the human-facing name of the category.
func (c Category) Label() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// Image is a media asset hosted by the content service.
type Image struct {
	URL    string `json:"url" yaml:"url" validate:"required,url"`
	Height int    `json:"height,omitempty" yaml:"height,omitempty" validate:"gte=0"`
	Width  int    `json:"width,omitempty" yaml:"width,omitempty" validate:"gte=0"`
}

// Project is a portfolio record. Records are created and updated by the
// content service and never mutated by the client.
type Project struct {
	ID          string     `json:"id" yaml:"id" validate:"required"`
	Title       string     `json:"title" yaml:"title" validate:"required"`
	Category    []Category `json:"category" yaml:"category" validate:"required,min=1,dive,category"`
	Thumbnail   *Image     `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty" validate:"omitempty"`
	VideoURL    string     `json:"videourl,omitempty" yaml:"videourl,omitempty" validate:"omitempty,url"`
	Year        string     `json:"year,omitempty" yaml:"year,omitempty"`
	Client      string     `json:"client,omitempty" yaml:"client,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Credits     string     `json:"credits,omitempty" yaml:"credits,omitempty"`
	Gallery     []Image    `json:"gallery,omitempty" yaml:"gallery,omitempty" validate:"omitempty,dive"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"created_at,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt" yaml:"updated_at,omitempty"`
	PublishedAt time.Time  `json:"publishedAt" yaml:"published_at,omitempty"`
}

// HasCategory reports whether the project is tagged with c.
func (p Project) HasCategory(c Category) bool {
	for _, tag := range p.Category {
		if tag == c {
			return true
		}
	}
	return false
}

// CategoryLabels joins the project's categories for display.
func (p Project) CategoryLabels() string {
	labels := make([]string, len(p.Category))
	for i, c := range p.Category {
		labels[i] = c.Label()
	}
	return strings.Join(labels, " / ")
}

// FilterByCategory returns the projects tagged with category, preserving order.
func FilterByCategory(projects []Project, category Category) []Project {
	filtered := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.HasCategory(category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ListResponse mirrors the content service's list envelope.
type ListResponse struct {
	Contents   []Project `json:"contents"`
	TotalCount int       `json:"totalCount"`
	Offset     int       `json:"offset"`
	Limit      int       `json:"limit"`
}
