package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/webb-inc/webb/internal/content"
	"github.com/webb-inc/webb/internal/navigation"
	"github.com/webb-inc/webb/internal/theme"
)

const (
	headerLines = 2
	itemLines   = 2

	heroSubtitle = "FILM / PHOTO / DESIGN"
	emptyMessage = "No projects found"
	menuFooter   = "WEBB Inc. / Tokyo"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	st := m.nav.State()

	var body string
	switch {
	case st.SelectedProject != nil:
		body = m.renderDetail(st)
	case st.IsMenuOpen:
		body = m.renderMenu(st)
	default:
		body = m.renderPage(st)
	}

	out := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(st),
		lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body),
		m.renderFooter(),
	)
	return palette(m.theme.State().Theme).Render(out)
}

// renderHeader renders the logo, the current view and the menu trigger.
func (m Model) renderHeader(st navigation.State) string {
	left := logoStyle.Render("WEBB") + logoSuffixStyle.Render(" Inc.")

	trigger := "≡ MENU"
	if st.IsMenuOpen {
		trigger = "× CLOSE"
	}
	status := st.ActiveTab.Label()
	switch {
	case m.loading:
		status = m.spinner.View() + " " + status
	case m.origin == content.OriginSnapshot:
		status += " · offline"
	case m.origin == content.OriginFallback:
		status += " · fallback"
	}
	right := menuTriggerStyle.Render(status + "   " + trigger)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right + "\n"
}

func (m Model) footerHeight() int {
	return lipgloss.Height(m.renderFooter())
}

func (m Model) renderFooter() string {
	return footerStyle.Render(m.help.View(m.keys))
}

// renderPage renders the visible window of the active view.
func (m Model) renderPage(st navigation.State) string {
	lines, _ := m.pageLines()
	offset := m.page.offset()
	if offset > len(lines) {
		offset = len(lines)
	}
	end := offset + m.bodyHeight()
	if end > len(lines) {
		end = len(lines)
	}

	body := strings.Join(lines[offset:end], "\n")
	if st.IsTransitioning {
		return fadingStyle.Render(body)
	}
	return body
}

// pageLines renders the whole active view as lines and reports the line
// the project list starts on.
func (m Model) pageLines() ([]string, int) {
	var head string
	tab := m.nav.State().ActiveTab

	switch tab {
	case navigation.TabAbout:
		return strings.Split(m.renderAbout(), "\n"), 0
	case navigation.TabLanding:
		head = m.renderHero()
	default:
		head = m.renderGridHeader(tab)
	}

	lines := strings.Split(head, "\n")
	itemsTop := len(lines)
	lines = append(lines, m.renderItems()...)
	return lines, itemsTop
}

func (m Model) renderHero() string {
	th := m.theme.State()
	title := heroTitleStyle.Render(th.Category.Title())
	subtitle := heroSubtitleStyle.Render(heroSubtitle)

	filters := make([]string, 0, len(theme.Categories))
	for _, c := range theme.Categories {
		if c == th.Category {
			filters = append(filters, activeFilterStyle.Render(string(c)))
		} else {
			filters = append(filters, filterStyle.Render(string(c)))
		}
	}
	bar := lipgloss.NewStyle().PaddingLeft(2).Render(lipgloss.JoinHorizontal(lipgloss.Top, filters...))

	hero := lipgloss.JoinVertical(lipgloss.Left, title, subtitle, bar, "")
	if th.IsTransitioning {
		return fadingStyle.Render(hero)
	}
	return hero
}

func (m Model) renderGridHeader(tab navigation.Tab) string {
	count := len(m.visibleProjects())
	return lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render(tab.Label()),
		countStyle.Render(fmt.Sprintf("%d PROJECTS", count)),
	)
}

// renderItems renders the project list, itemLines lines per project.
func (m Model) renderItems() []string {
	items := m.visibleProjects()
	if len(items) == 0 {
		if m.loading {
			return []string{itemStyle.Render(m.spinner.View() + " loading projects")}
		}
		return strings.Split(emptyStateStyle.Render(emptyMessage), "\n")
	}

	lines := make([]string, 0, len(items)*itemLines)
	for i, p := range items {
		title := itemStyle.Render(p.Title)
		if i == m.cursor {
			title = selectedItemStyle.Render(p.Title)
		}
		lines = append(lines, title, itemMetaStyle.Render(projectMeta(p)))
	}
	return lines
}

func projectMeta(p content.Project) string {
	parts := []string{p.CategoryLabels()}
	if p.Year != "" {
		parts = append(parts, p.Year)
	}
	meta := strings.Join(parts, " / ")
	if p.Client != "" {
		meta += " · " + p.Client
	}
	return meta
}

func (m Model) renderAbout() string {
	s := m.settings
	var b strings.Builder

	b.WriteString(sectionTitleStyle.Render("ABOUT US"))
	b.WriteString("\n\n")

	b.WriteString(sectionTitleStyle.Render("TEAM"))
	b.WriteString("\n")
	for _, member := range s.Team {
		b.WriteString(itemStyle.Render(fmt.Sprintf("%s  %s", member.Name, member.NameEN)))
		b.WriteString("\n")
		meta := member.Role
		if member.Handle != "" {
			meta += "  " + member.Handle
		}
		b.WriteString(itemMetaStyle.Render(meta))
		b.WriteString("\n")
		if member.Instagram != "" {
			b.WriteString(itemMetaStyle.Render(member.Instagram))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(sectionTitleStyle.Render("COMPANY"))
	b.WriteString("\n")
	for _, item := range s.Corporate {
		b.WriteString(aboutRow(item.Label, item.Value))
	}

	b.WriteString("\n")
	b.WriteString(sectionTitleStyle.Render("CONTACT"))
	b.WriteString("\n")
	links := s.Links
	if links.Email != "" {
		b.WriteString(aboutRow("MAIL", "mailto:"+links.Email))
	}
	if links.Phone != "" {
		b.WriteString(aboutRow("TEL", "tel:"+links.Phone))
	}
	if links.Instagram != "" {
		b.WriteString(aboutRow("INSTAGRAM", links.Instagram))
	}
	if links.Vimeo != "" {
		b.WriteString(aboutRow("VIMEO", links.Vimeo))
	}

	return strings.TrimRight(b.String(), "\n")
}

func aboutRow(label, value string) string {
	return itemStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))) + "\n"
}

func (m Model) renderMenu(st navigation.State) string {
	rows := make([]string, 0, len(navigation.Tabs))
	for i, tab := range navigation.Tabs {
		label := fmt.Sprintf("%d  %s", i+1, tab.Label())
		switch {
		case i == m.menuCursor:
			rows = append(rows, activeMenuItemStyle.Render("› "+label))
		case tab == st.ActiveTab:
			rows = append(rows, activeMenuItemStyle.Render("  "+label))
		default:
			rows = append(rows, menuItemStyle.Render("  "+label))
		}
	}

	var links []string
	if l := m.settings.Links.Instagram; l != "" {
		links = append(links, "IG "+l)
	}
	if l := m.settings.Links.Vimeo; l != "" {
		links = append(links, "VM "+l)
	}
	footer := menuFooterStyle.Render(menuFooter + "\n" + strings.Join(links, "   "))

	menu := lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinVertical(lipgloss.Left, rows...), footer)
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, menu)
}

func (m Model) renderDetail(st navigation.State) string {
	box := overlayStyle.Render(m.detailView.View())
	if !st.IsModalOpen {
		return fadingStyle.Render(box)
	}
	return box
}

// renderDetailBody lays out one project for the detail viewport.
func (m Model) renderDetailBody(p content.Project) string {
	width := max(m.detailView.Width, 20)
	wrap := valueStyle.Width(width)
	var b strings.Builder

	meta := p.CategoryLabels()
	if p.Year != "" {
		meta += " / " + p.Year
	}
	b.WriteString(detailMetaStyle.Render(meta))
	b.WriteString("\n")
	b.WriteString(detailTitleStyle.Render(p.Title))
	b.WriteString("\n")
	if p.Client != "" {
		b.WriteString(p.Client)
		b.WriteString("\n")
	}

	videoID, isYouTube := content.YouTubeID(p.VideoURL)
	switch {
	case isYouTube:
		b.WriteString(detailHeadingStyle.Render("VIDEO"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("https://www.youtube.com/embed/%s", videoID))
		b.WriteString("\n")
	case p.Thumbnail != nil && p.Thumbnail.URL != "":
		b.WriteString(detailHeadingStyle.Render("IMAGE"))
		b.WriteString("\n")
		b.WriteString(p.Thumbnail.URL)
		b.WriteString("\n")
	}

	if text := content.PlainText(p.Description); text != "" {
		b.WriteString(detailHeadingStyle.Render("DESCRIPTION"))
		b.WriteString("\n")
		b.WriteString(wrap.Render(text))
		b.WriteString("\n")
	}

	if p.Credits != "" {
		b.WriteString(detailHeadingStyle.Render("CREDITS"))
		b.WriteString("\n")
		b.WriteString(wrap.Render(p.Credits))
		b.WriteString("\n")
	}

	if len(p.Gallery) > 0 {
		b.WriteString(detailHeadingStyle.Render("GALLERY"))
		b.WriteString("\n")
		for i, img := range p.Gallery {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, img.URL))
		}
	}

	if p.VideoURL != "" && !isYouTube {
		b.WriteString("\n")
		b.WriteString("WATCH VIDEO → " + p.VideoURL)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
