// Package theme holds the landing-page category filter and the light/dark
// theme derived from it.
package theme

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/webb-inc/webb/internal/content"
)

// Category is the landing-page filter. It uses display names, so JAMES
// WEBB carries a space here.
type Category string

const (
	CategoryAll        Category = "ALL"
	CategoryCommercial Category = "COMMERCIAL"
	CategoryMV         Category = "MV"
	CategoryJamesWebb  Category = "JAMES WEBB"
)

// Categories lists the filters in display order.
var Categories = []Category{CategoryAll, CategoryCommercial, CategoryMV, CategoryJamesWebb}

// Theme is the colour scheme.
type Theme string

const (
	ThemeLight Theme = "LIGHT"
	ThemeDark  Theme = "DARK"
)

// ThemeFor returns DARK for JAMES WEBB and LIGHT for everything else.
func ThemeFor(c Category) Theme {
	if c == CategoryJamesWebb {
		return ThemeDark
	}
	return ThemeLight
}

// Title is the hero heading for the category.
func (c Category) Title() string {
	if c == CategoryAll || c == "" {
		return "WEBB"
	}
	return string(c)
}

// ContentCategory maps the filter to a content category. ALL has none.
func (c Category) ContentCategory() (content.Category, bool) {
	if c == CategoryAll {
		return "", false
	}
	return content.ParseCategory(string(c))
}

// ParseCategory accepts ALL or any content category in display or
// canonical form.
func ParseCategory(s string) (Category, bool) {
	if strings.EqualFold(strings.TrimSpace(s), string(CategoryAll)) {
		return CategoryAll, true
	}
	cat, ok := content.ParseCategory(s)
	if !ok {
		return "", false
	}
	return Category(cat.Label()), true
}

// Timings are the delays of a category swap.
type Timings struct {
	Commit time.Duration
	Settle time.Duration
}

// DefaultTimings commits after 50ms and settles 100ms later.
func DefaultTimings() Timings {
	return Timings{Commit: 50 * time.Millisecond, Settle: 100 * time.Millisecond}
}

// CommitMsg applies the category of swap Seq.
type CommitMsg struct {
	Seq uint64
}

// SettleMsg ends swap Seq.
type SettleMsg struct {
	Seq uint64
}

// State is a snapshot of the store.
type State struct {
	Category        Category
	Theme           Theme
	IsMenuOpen      bool
	IsTransitioning bool
}

// Store owns the category and theme.
type Store struct {
	state    State
	target   Category
	seq      uint64
	timings  Timings
	schedule func(time.Duration, tea.Msg) tea.Cmd
}

// NewStore starts on ALL with the light theme. A nil schedule uses tea.Tick.
func NewStore(timings Timings, schedule func(time.Duration, tea.Msg) tea.Cmd) *Store {
	if timings == (Timings{}) {
		timings = DefaultTimings()
	}
	if schedule == nil {
		schedule = func(d time.Duration, msg tea.Msg) tea.Cmd {
			return tea.Tick(d, func(time.Time) tea.Msg { return msg })
		}
	}
	return &Store{
		state:    State{Category: CategoryAll, Theme: ThemeLight},
		timings:  timings,
		schedule: schedule,
	}
}

func (s *Store) State() State { return s.state }

// SetCategory starts a swap. A newer swap supersedes an older one.
func (s *Store) SetCategory(c Category) tea.Cmd {
	s.seq++
	s.target = c
	s.state.IsTransitioning = true
	return s.schedule(s.timings.Commit, CommitMsg{Seq: s.seq})
}

func (s *Store) ToggleMenu() {
	s.state.IsMenuOpen = !s.state.IsMenuOpen
}

func (s *Store) SetMenuOpen(open bool) {
	s.state.IsMenuOpen = open
}

// Update advances swap timers. It reports whether msg belonged to the store.
func (s *Store) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case CommitMsg:
		if msg.Seq != s.seq {
			return nil, true
		}
		s.state.Category = s.target
		s.state.Theme = ThemeFor(s.target)
		return s.schedule(s.timings.Settle, SettleMsg{Seq: msg.Seq}), true
	case SettleMsg:
		if msg.Seq == s.seq {
			s.state.IsTransitioning = false
		}
		return nil, true
	}
	return nil, false
}
