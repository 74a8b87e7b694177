package content

import (
	"context"
	"errors"
	"time"

	"github.com/webb-inc/webb/internal/logger"
	webberrors "github.com/webb-inc/webb/pkg/errors"
)

// ProviderOptions configures a Provider.
type ProviderOptions struct {
	// Fallback is served when the service is unconfigured or empty, and
	// supplements live data for categories the service has no content for.
	Fallback []Project
	// Cache, when set, receives every non-empty live list.
	Cache  *SnapshotCache
	Logger *logger.Logger
	Now    func() time.Time
}

// Provider exposes the content service with the degrade-silently contract:
// misconfiguration and failures yield empty results and are only logged.
type Provider struct {
	source   Source
	fallback []Project
	cache    *SnapshotCache
	log      *logger.Logger
	now      func() time.Time
}

// NewProvider wraps source. A nil source means the service is not configured.
func NewProvider(source Source, opts ProviderOptions) *Provider {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Provider{
		source:   source,
		fallback: append([]Project(nil), opts.Fallback...),
		cache:    opts.Cache,
		log:      log.Component("content"),
		now:      now,
	}
}

// Configured reports whether a source is available.
func (p *Provider) Configured() bool {
	return p != nil && p.source != nil
}

// Fallback returns a copy of the static fallback list.
func (p *Provider) Fallback() []Project {
	return append([]Project(nil), p.fallback...)
}

// GetProjects returns up to limit projects, or an empty list when the
// service is unconfigured or the call fails.
func (p *Provider) GetProjects(ctx context.Context, limit int) []Project {
	if !p.Configured() {
		p.log.Info("content service not configured")
		return []Project{}
	}

	resp, err := p.source.List(ctx, ListQuery{Limit: limit})
	if err != nil {
		p.logFailure(err, "failed to fetch projects", map[string]any{"limit": limit})
		return []Project{}
	}

	p.log.WithFields(map[string]any{"count": len(resp.Contents)}).Info("fetched projects")
	p.remember(resp.Contents)
	return nonNil(resp.Contents)
}

// GetProjectsByCategory is GetProjects filtered server-side by category membership.
func (p *Provider) GetProjectsByCategory(ctx context.Context, category Category, limit int) []Project {
	if !p.Configured() {
		return []Project{}
	}

	resp, err := p.source.List(ctx, ListQuery{Limit: limit, Category: category})
	if err != nil {
		p.logFailure(err, "failed to fetch projects by category", map[string]any{"category": string(category), "limit": limit})
		return []Project{}
	}
	return nonNil(resp.Contents)
}

// GetProjectByID returns the project or nil when unconfigured, missing, or failed.
func (p *Provider) GetProjectByID(ctx context.Context, id string) *Project {
	if !p.Configured() {
		return nil
	}

	project, err := p.source.Get(ctx, id)
	if err != nil {
		var reqErr *webberrors.RequestError
		if errors.As(err, &reqErr) && reqErr.NotFound() {
			p.log.WithFields(map[string]any{"id": id}).Debug("project not found")
			return nil
		}
		p.logFailure(err, "failed to fetch project", map[string]any{"id": id})
		return nil
	}
	return project
}

// Origin says where a project list came from.
type Origin string

const (
	OriginLive     Origin = "live"
	OriginSnapshot Origin = "snapshot"
	OriginFallback Origin = "fallback"
)

// GetProjectsWithFallback serves live data merged with fallback records for
// categories the live set does not cover. Records are unioned by category
// presence, not deduplicated by id.
func (p *Provider) GetProjectsWithFallback(ctx context.Context) []Project {
	projects, _ := p.LoadProjects(ctx)
	return projects
}

// LoadProjects is GetProjectsWithFallback that also reports whether the
// list came from the service, the offline snapshot, or the fallback list.
func (p *Provider) LoadProjects(ctx context.Context) ([]Project, Origin) {
	if !p.Configured() {
		p.log.Info("using fallback data (content service not configured)")
		return p.Fallback(), OriginFallback
	}

	live := p.GetProjects(ctx, DefaultLimit)
	if len(live) == 0 {
		p.log.Info("using fallback data (content service returned empty)")
		return p.Fallback(), OriginFallback
	}

	return MergeFallback(live, p.fallback), p.liveOrigin()
}

// LoadProjectsByCategory filters server-side. Live records cover the
// category, so fallback records are served only when none come back.
func (p *Provider) LoadProjectsByCategory(ctx context.Context, category Category) ([]Project, Origin) {
	if !p.Configured() {
		return FilterByCategory(p.fallback, category), OriginFallback
	}

	live := p.GetProjectsByCategory(ctx, category, DefaultLimit)
	if len(live) == 0 {
		p.log.WithFields(map[string]any{"category": string(category)}).Info("using fallback data for category")
		return FilterByCategory(p.fallback, category), OriginFallback
	}
	return live, p.liveOrigin()
}

func (p *Provider) liveOrigin() Origin {
	if _, offline := p.source.(*SnapshotSource); offline {
		return OriginSnapshot
	}
	return OriginLive
}

// MergeFallback appends every fallback record none of whose categories are
// present in live.
func MergeFallback(live, fallback []Project) []Project {
	present := make(map[Category]struct{})
	for _, project := range live {
		for _, c := range project.Category {
			present[c] = struct{}{}
		}
	}

	merged := append([]Project(nil), live...)
	for _, project := range fallback {
		covered := false
		for _, c := range project.Category {
			if _, ok := present[c]; ok {
				covered = true
				break
			}
		}
		if !covered {
			merged = append(merged, project)
		}
	}
	return merged
}

func (p *Provider) remember(projects []Project) {
	if p.cache == nil || len(projects) == 0 {
		return
	}
	if _, offline := p.source.(*SnapshotSource); offline {
		return
	}
	p.cache.Set(projects, p.now())
	if err := p.cache.Save(); err != nil {
		p.log.Error(err, "failed to persist project snapshot")
	}
}

func (p *Provider) logFailure(err error, msg string, fields map[string]any) {
	if errors.Is(err, context.Canceled) {
		p.log.WithFields(fields).Debug(msg + " (cancelled)")
		return
	}
	p.log.WithFields(fields).Error(err, msg)
}

func nonNil(projects []Project) []Project {
	if projects == nil {
		return []Project{}
	}
	return projects
}
