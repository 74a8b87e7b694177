package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/webb-inc/webb/internal/content"
)

// ProjectSource is the slice of the content provider the browser needs.
type ProjectSource interface {
	LoadProjects(ctx context.Context) ([]content.Project, content.Origin)
}

// loadProjectsCmd fetches projects off the update loop. Failures already
// degrade to the fallback list inside the provider.
func loadProjectsCmd(src ProjectSource, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if src == nil {
			return ProjectsLoadedMsg{Projects: []content.Project{}, Origin: content.OriginFallback}
		}

		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		started := time.Now()
		projects, origin := src.LoadProjects(ctx)
		return ProjectsLoadedMsg{
			Projects: projects,
			Origin:   origin,
			Elapsed:  time.Since(started),
		}
	}
}
