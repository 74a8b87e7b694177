package config

import (
	"time"

	"github.com/webb-inc/webb/internal/content"
	"github.com/webb-inc/webb/internal/navigation"
	"github.com/webb-inc/webb/internal/theme"
)

// Settings is the YAML settings file. Every section is optional; missing
// sections keep their defaults.
type Settings struct {
	InitialView      string            `yaml:"initial_view,omitempty" validate:"omitempty,tab"`
	Timings          Timings           `yaml:"timings"`
	Cache            Cache             `yaml:"cache"`
	Links            Links             `yaml:"links"`
	Team             []Member          `yaml:"team" validate:"dive"`
	Corporate        []CorporateItem   `yaml:"corporate" validate:"dive"`
	FallbackProjects []content.Project `yaml:"fallback_projects,omitempty" validate:"dive"`
}

// Timings overrides the navigation and theme choreography delays.
type Timings struct {
	FadeOut        time.Duration `yaml:"fade_out" validate:"gte=0"`
	FadeIn         time.Duration `yaml:"fade_in" validate:"gte=0"`
	ModalClear     time.Duration `yaml:"modal_clear" validate:"gte=0"`
	CategoryCommit time.Duration `yaml:"category_commit" validate:"gte=0"`
	CategorySettle time.Duration `yaml:"category_settle" validate:"gte=0"`
}

// Navigation converts the overrides for the navigation store.
func (t Timings) Navigation() navigation.Timings {
	return navigation.Timings{FadeOut: t.FadeOut, FadeIn: t.FadeIn, ModalClear: t.ModalClear}
}

// Theme converts the overrides for the theme store.
func (t Timings) Theme() theme.Timings {
	return theme.Timings{Commit: t.CategoryCommit, Settle: t.CategorySettle}
}

// Cache locates the snapshot cache. An empty path means the default under
// the user cache dir; Disabled turns the cache off.
type Cache struct {
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled"`
}

// Links are the outbound links shown in the menu and about view.
type Links struct {
	Instagram string `yaml:"instagram" validate:"omitempty,url"`
	Vimeo     string `yaml:"vimeo" validate:"omitempty,url"`
	Email     string `yaml:"email" validate:"omitempty,email"`
	Phone     string `yaml:"phone"`
}

// Member is one person on the about page.
type Member struct {
	Name      string `yaml:"name" validate:"required"`
	NameEN    string `yaml:"name_en" validate:"required"`
	Role      string `yaml:"role" validate:"required"`
	Handle    string `yaml:"handle"`
	Instagram string `yaml:"instagram" validate:"omitempty,url"`
}

// CorporateItem is one row of the company overview.
type CorporateItem struct {
	Label string `yaml:"label" validate:"required"`
	Value string `yaml:"value" validate:"required"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	nav := navigation.DefaultTimings()
	th := theme.DefaultTimings()
	return &Settings{
		Timings: Timings{
			FadeOut:        nav.FadeOut,
			FadeIn:         nav.FadeIn,
			ModalClear:     nav.ModalClear,
			CategoryCommit: th.Commit,
			CategorySettle: th.Settle,
		},
		Links: Links{
			Instagram: "https://instagram.com",
			Vimeo:     "https://vimeo.com",
			Email:     "info@webb-official.com",
			Phone:     "050-1792-5114",
		},
		Team: []Member{
			{Name: "吉岡 一靖", NameEN: "Yoshioka Issei", Role: "CEO / Director", Handle: "@1say1say1say", Instagram: "https://www.instagram.com/1say1say1say/"},
			{Name: "木村 響", NameEN: "Kimura Kyo", Role: "CTO / Technical Director", Handle: "@kyoch0919", Instagram: "https://www.instagram.com/kyoch0919/"},
			{Name: "矢崎 麦", NameEN: "Yazaki Baku", Role: "COO / Producer", Handle: "@baku_yazaki", Instagram: "https://www.instagram.com/baku_yazaki/"},
		},
		Corporate: []CorporateItem{
			{Label: "会社名", Value: "株式会社WEBB（ウェッブ）"},
			{Label: "法人番号", Value: "1011301030758"},
			{Label: "資本金", Value: "1,000,000円"},
			{Label: "代表取締役", Value: "吉岡 一靖 (Yoshioka Issei)"},
			{Label: "所在地", Value: "〒164-0012 東京都中野区本町2-46-1 中野サンブライトツイン 14階 TCIC内 No.1"},
		},
	}
}

// InitialTab returns the configured initial view, if any.
func (s *Settings) InitialTab() (navigation.Tab, bool) {
	if s == nil {
		return "", false
	}
	return navigation.ParseTab(s.InitialView)
}

// applyDefaults fills zero timings left by a partial file.
func (s *Settings) applyDefaults() {
	d := Defaults()
	if s.Timings.FadeOut == 0 {
		s.Timings.FadeOut = d.Timings.FadeOut
	}
	if s.Timings.FadeIn == 0 {
		s.Timings.FadeIn = d.Timings.FadeIn
	}
	if s.Timings.ModalClear == 0 {
		s.Timings.ModalClear = d.Timings.ModalClear
	}
	if s.Timings.CategoryCommit == 0 {
		s.Timings.CategoryCommit = d.Timings.CategoryCommit
	}
	if s.Timings.CategorySettle == 0 {
		s.Timings.CategorySettle = d.Timings.CategorySettle
	}
}
