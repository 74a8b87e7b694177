package tui

import (
	"time"

	"github.com/webb-inc/webb/internal/content"
)

// ProjectsLoadedMsg carries the project list for the grid views.
type ProjectsLoadedMsg struct {
	Projects []content.Project
	Origin   content.Origin
	Elapsed  time.Duration
}
