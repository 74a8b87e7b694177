package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/webb-inc/webb/internal/theme"
)

var (
	// Colors
	inkColor    = lipgloss.Color("232") // Near black
	paperColor  = lipgloss.Color("255") // White
	mutedColor  = lipgloss.Color("245") // Gray
	faintColor  = lipgloss.Color("240") // Dim gray
	accentColor = lipgloss.Color("212") // Pink

	logoStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(2)

	logoSuffixStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	menuTriggerStyle = lipgloss.NewStyle().
				PaddingRight(2)

	heroTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center).
			MarginTop(2)

	heroSubtitleStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Align(lipgloss.Center).
				MarginBottom(1)

	filterStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingRight(3)

	activeFilterStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				PaddingRight(3)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				PaddingLeft(2).
				MarginTop(1)

	countStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(2).
			MarginBottom(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(3).
				Bold(true).
				Foreground(accentColor).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(accentColor)

	itemMetaStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(4)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			Align(lipgloss.Center).
			PaddingTop(4).
			PaddingBottom(4)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true).
			Width(14)

	valueStyle = lipgloss.NewStyle()

	menuItemStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(2)

	activeMenuItemStyle = lipgloss.NewStyle().
				Bold(true).
				PaddingLeft(2)

	menuFooterStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(2)

	overlayStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2)

	detailMetaStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	detailHeadingStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Bold(true).
				MarginTop(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(2)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	// Content that is fading between views.
	fadingStyle = lipgloss.NewStyle().
			Foreground(faintColor).
			Faint(true)
)

// palette returns the page style for the theme.
func palette(t theme.Theme) lipgloss.Style {
	if t == theme.ThemeDark {
		return lipgloss.NewStyle().Foreground(paperColor).Background(inkColor)
	}
	return lipgloss.NewStyle().Foreground(inkColor).Background(paperColor)
}

// ApplyMaxWidth applies a maximum width to the width-sensitive styles.
func ApplyMaxWidth(width int) {
	if width <= 0 {
		return
	}
	heroTitleStyle = heroTitleStyle.Width(width)
	heroSubtitleStyle = heroSubtitleStyle.Width(width)
	emptyStateStyle = emptyStateStyle.Width(width)
	itemStyle = itemStyle.MaxWidth(width)
	selectedItemStyle = selectedItemStyle.MaxWidth(width)
}
