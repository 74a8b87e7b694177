package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	webberrors "github.com/webb-inc/webb/pkg/errors"
)

const snapshotVersion = "1.0"

// SnapshotFile is the on-disk layout of the snapshot cache.
type SnapshotFile struct {
	Version   string    `json:"version"`
	FetchedAt time.Time `json:"fetched_at"`
	Projects  []Project `json:"projects"`
}

// SnapshotCache persists the last successful live project list between sessions
type SnapshotCache struct {
	path      string
	mu        sync.RWMutex
	version   string
	fetchedAt time.Time
	projects  []Project
}

// NewSnapshotCache creates a SnapshotCache and loads it from disk
func NewSnapshotCache(path string) (*SnapshotCache, error) {
	c := &SnapshotCache{
		path:    path,
		version: snapshotVersion,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	if err := c.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return c, nil
}

// Load reads the snapshot from disk
func (c *SnapshotCache) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		return err
	}

	var file SnapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return webberrors.NewParseError(c.path, 0, err)
	}

	c.version = file.Version
	c.fetchedAt = file.FetchedAt
	c.projects = file.Projects
	return nil
}

// Save writes the snapshot to disk atomically
func (c *SnapshotCache) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	file := SnapshotFile{
		Version:   c.version,
		FetchedAt: c.fetchedAt,
		Projects:  c.projects,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, c.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Set replaces the cached project list
func (c *SnapshotCache) Set(projects []Project, fetchedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.projects = append([]Project(nil), projects...)
	c.fetchedAt = fetchedAt
}

// Projects returns a copy of the cached list
func (c *SnapshotCache) Projects() []Project {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]Project(nil), c.projects...)
}

// FetchedAt returns when the cached list was fetched; zero if never
func (c *SnapshotCache) FetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.fetchedAt
}

// SnapshotSource serves the cached snapshot through the Source interface so
// offline sessions go through the same provider rules as live ones.
type SnapshotSource struct {
	cache *SnapshotCache
}

// NewSnapshotSource wraps cache as a Source.
func NewSnapshotSource(cache *SnapshotCache) *SnapshotSource {
	return &SnapshotSource{cache: cache}
}

// List applies the category filter and limit to the cached list.
func (s *SnapshotSource) List(ctx context.Context, q ListQuery) (*ListResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	projects := s.cache.Projects()
	if q.Category != "" {
		projects = FilterByCategory(projects, q.Category)
	}
	total := len(projects)

	if q.Offset > 0 {
		if q.Offset >= len(projects) {
			projects = nil
		} else {
			projects = projects[q.Offset:]
		}
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(projects) > limit {
		projects = projects[:limit]
	}

	return &ListResponse{Contents: projects, TotalCount: total, Offset: q.Offset, Limit: limit}, nil
}

// Get looks up a cached project by id.
func (s *SnapshotSource) Get(ctx context.Context, id string) (*Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, p := range s.cache.Projects() {
		if p.ID == id {
			project := p
			return &project, nil
		}
	}
	return nil, webberrors.NewRequestError(projectsEndpoint+"/"+id, 404, fmt.Errorf("project %q not in snapshot", id))
}

var _ Source = (*SnapshotSource)(nil)
