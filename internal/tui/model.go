// Package tui renders the studio site in the terminal: a landing page, the
// category grids, the about page, and the menu and project detail overlays.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/webb-inc/webb/internal/config"
	"github.com/webb-inc/webb/internal/content"
	"github.com/webb-inc/webb/internal/logger"
	"github.com/webb-inc/webb/internal/navigation"
	"github.com/webb-inc/webb/internal/theme"
)

// Options configures a Model. Nil stores and settings get defaults.
type Options struct {
	Projects   ProjectSource
	Navigation *navigation.Store
	Theme      *theme.Store
	Settings   *config.Settings
	// Location is the start location, such as "/?view=MV".
	Location string
	Timeout  time.Duration
	Logger   *logger.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	// Core data
	nav      *navigation.Store
	theme    *theme.Store
	source   ProjectSource
	settings *config.Settings
	timeout  time.Duration
	log      *logger.Logger

	projects []content.Project
	loading  bool
	origin   content.Origin

	// Component state
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	showHelp bool

	// Mounted views. Every mount gets a fresh id so frame ticks from a
	// replaced view are recognised and dropped.
	mounts     uint64
	mountedTab navigation.Tab
	page       scroller
	detail     scroller
	detailID   string
	detailView viewport.Model

	// UI state
	cursor     int
	menuCursor int

	// Dimensions
	width  int
	height int
}

// NewModel creates the browser model and applies the start location.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	settings := opts.Settings
	if settings == nil {
		settings = config.Defaults()
	}
	nav := opts.Navigation
	if nav == nil {
		nav = navigation.NewStore(navigation.Options{Timings: settings.Timings.Navigation(), Logger: log})
	}
	th := opts.Theme
	if th == nil {
		th = theme.NewStore(settings.Timings.Theme(), nil)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		nav:        nav,
		theme:      th,
		source:     opts.Projects,
		settings:   settings,
		timeout:    opts.Timeout,
		log:        log.Component("tui"),
		projects:   []content.Project{},
		loading:    true,
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    s,
		detailView: viewport.New(0, 0),
		width:      80,
		height:     24,
	}

	m.resizeDetail()
	nav.Init(opts.Location)
	m.sync()
	return m
}

// Init starts the spinner and the first project load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadProjectsCmd(m.source, m.timeout))
}

// State exposes the navigation state.
func (m Model) State() navigation.State {
	return m.nav.State()
}

// Projects returns the loaded project list.
func (m Model) Projects() []content.Project {
	return m.projects
}

// Loading reports whether a project load is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Cursor returns the selected row of the current list.
func (m Model) Cursor() int {
	return m.cursor
}

// visibleProjects derives the list shown by the active view.
func (m Model) visibleProjects() []content.Project {
	tab := m.nav.State().ActiveTab
	if cat, ok := tab.Category(); ok {
		return content.FilterByCategory(m.projects, cat)
	}
	if tab == navigation.TabLanding {
		if cat, ok := m.theme.State().Category.ContentCategory(); ok {
			return content.FilterByCategory(m.projects, cat)
		}
		return m.projects
	}
	return nil
}

// SelectedProject returns the project under the cursor.
func (m Model) SelectedProject() (content.Project, bool) {
	items := m.visibleProjects()
	if m.cursor < 0 || m.cursor >= len(items) {
		return content.Project{}, false
	}
	return items[m.cursor], true
}

func (m *Model) newMount() scroller {
	m.mounts++
	return newScroller(m.mounts)
}

// sync mounts and unmounts views to match the navigation state.
func (m *Model) sync() {
	st := m.nav.State()

	if st.ActiveTab != m.mountedTab {
		m.log.WithFields(map[string]any{"from": string(m.mountedTab), "to": string(st.ActiveTab)}).Debug("view mounted")
		m.mountedTab = st.ActiveTab
		m.cursor = 0
		m.page = m.newMount()
	}

	switch {
	case st.SelectedProject == nil:
		if m.detailID != "" {
			m.detailID = ""
			m.detail = scroller{}
		}
	case st.SelectedProject.ID != m.detailID:
		m.detailID = st.SelectedProject.ID
		m.detail = m.newMount()
		m.detailView.SetContent(m.renderDetailBody(*st.SelectedProject))
		m.detailView.GotoTop()
	}

	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.visibleProjects())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) moveCursor(delta int) {
	n := len(m.visibleProjects())
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

// bodyHeight is the number of lines available between header and footer.
func (m Model) bodyHeight() int {
	h := m.height - headerLines - m.footerHeight()
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) resizeDetail() {
	m.detailView.Width = max(m.width-8, 20)
	m.detailView.Height = max(m.bodyHeight()-4, 3)
	if st := m.nav.State(); st.SelectedProject != nil {
		m.detailView.SetContent(m.renderDetailBody(*st.SelectedProject))
	}
}
