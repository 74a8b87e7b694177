package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/webb-inc/webb/internal/navigation"
	"github.com/webb-inc/webb/internal/theme"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		ApplyMaxWidth(m.width)
		m.help.Width = m.width
		m.resizeDetail()
		return m, nil

	case tea.KeyMsg:
		updated, cmd := m.handleKeyPress(msg)
		updated.sync()
		return updated, cmd

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ProjectsLoadedMsg:
		m.projects = msg.Projects
		m.loading = false
		m.origin = msg.Origin
		m.log.WithFields(map[string]any{
			"count":      len(msg.Projects),
			"origin":     string(msg.Origin),
			"elapsed_ms": msg.Elapsed.Milliseconds(),
		}).Info("projects loaded")
		m.clampCursor()
		return m, nil

	case frameMsg:
		return m.handleFrame(msg)
	}

	if cmd, ok := m.nav.Update(msg); ok {
		m.sync()
		return m, cmd
	}
	if cmd, ok := m.theme.Update(msg); ok {
		m.clampCursor()
		return m, cmd
	}

	return m, nil
}

// handleFrame advances the scroller the frame belongs to. Frames for a
// view that is no longer mounted end their loop here.
func (m Model) handleFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.ID == 0:
		return m, nil
	case msg.ID == m.page.id:
		return m, m.page.advance()
	case msg.ID == m.detail.id:
		cmd := m.detail.advance()
		m.detailView.SetYOffset(m.detail.offset())
		return m, cmd
	}
	return m, nil
}

// handleKeyPress routes keys to the topmost layer: help, detail overlay,
// menu overlay, then the active view.
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.resizeDetail()
		return m, nil
	}

	st := m.nav.State()
	switch {
	case st.IsModalOpen:
		return m.handleDetailKeys(msg)
	case st.IsMenuOpen:
		return m.handleMenuKeys(msg)
	default:
		return m.handleViewKeys(msg)
	}
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	maxOffset := float64(m.detailView.TotalLineCount() - m.detailView.Height)

	switch {
	case key.Matches(msg, m.keys.Close), msg.Type == tea.KeyBackspace:
		return m, m.nav.CloseModal()
	case key.Matches(msg, m.keys.Up):
		return m, m.detail.scrollBy(-1, maxOffset)
	case key.Matches(msg, m.keys.Down):
		return m, m.detail.scrollBy(1, maxOffset)
	case key.Matches(msg, m.keys.PageUp):
		return m, m.detail.scrollBy(-float64(m.detailView.Height), maxOffset)
	case key.Matches(msg, m.keys.PageDown):
		return m, m.detail.scrollBy(float64(m.detailView.Height), maxOffset)
	}
	return m, nil
}

func (m Model) handleMenuKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Menu):
		m.nav.SetMenuOpen(false)
	case key.Matches(msg, m.keys.Up):
		m.menuCursor = (m.menuCursor - 1 + len(navigation.Tabs)) % len(navigation.Tabs)
	case key.Matches(msg, m.keys.Down):
		m.menuCursor = (m.menuCursor + 1) % len(navigation.Tabs)
	case key.Matches(msg, m.keys.Open):
		return m, m.nav.SetActiveTab(navigation.Tabs[m.menuCursor])
	case key.Matches(msg, m.keys.Tab):
		return m, m.nav.SetActiveTab(tabForKey(msg))
	}
	return m, nil
}

func (m Model) handleViewKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	st := m.nav.State()

	switch {
	case key.Matches(msg, m.keys.Menu):
		m.nav.ToggleMenu()
		m.menuCursor = tabIndex(st.ActiveTab)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		return m, m.nav.SetActiveTab(navigation.TabLanding)

	case key.Matches(msg, m.keys.Tab):
		return m, m.nav.SetActiveTab(tabForKey(msg))

	case key.Matches(msg, m.keys.Back):
		m.nav.Back()
		return m, nil

	case key.Matches(msg, m.keys.Forward):
		m.nav.Forward()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, loadProjectsCmd(m.source, m.timeout))

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, m.followCursor()

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, m.followCursor()

	case key.Matches(msg, m.keys.PageUp):
		return m, m.page.scrollBy(-float64(m.bodyHeight()), m.maxPageOffset())

	case key.Matches(msg, m.keys.PageDown):
		return m, m.page.scrollBy(float64(m.bodyHeight()), m.maxPageOffset())

	case key.Matches(msg, m.keys.Open):
		if p, ok := m.SelectedProject(); ok {
			m.nav.OpenModal(p)
		}
		return m, nil
	}

	if st.ActiveTab == navigation.TabLanding {
		switch {
		case key.Matches(msg, m.keys.PrevCat):
			return m, m.shiftCategory(-1)
		case key.Matches(msg, m.keys.NextCat):
			return m, m.shiftCategory(1)
		}
	}

	return m, nil
}

func (m *Model) shiftCategory(delta int) tea.Cmd {
	current := m.theme.State().Category
	idx := 0
	for i, c := range theme.Categories {
		if c == current {
			idx = i
			break
		}
	}
	n := len(theme.Categories)
	next := theme.Categories[(idx+delta+n)%n]
	m.cursor = 0
	return tea.Batch(m.theme.SetCategory(next), m.page.scrollTo(0, m.maxPageOffset()))
}

// followCursor eases the page so the selected row stays on screen.
func (m *Model) followCursor() tea.Cmd {
	_, itemsTop := m.pageLines()
	top := float64(itemsTop + m.cursor*itemLines)
	bottom := top + itemLines
	height := float64(m.bodyHeight())

	target := m.page.target
	if top < target {
		target = top
	} else if bottom > target+height {
		target = bottom - height
	}
	return m.page.scrollTo(target, m.maxPageOffset())
}

func (m Model) maxPageOffset() float64 {
	lines, _ := m.pageLines()
	return float64(len(lines) - m.bodyHeight())
}

func tabForKey(msg tea.KeyMsg) navigation.Tab {
	s := msg.String()
	if len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(navigation.Tabs) {
		return navigation.Tabs[s[0]-'1']
	}
	return navigation.TabLanding
}

func tabIndex(tab navigation.Tab) int {
	for i, t := range navigation.Tabs {
		if t == tab {
			return i
		}
	}
	return 0
}
