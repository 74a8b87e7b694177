package content

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	webberrors "github.com/webb-inc/webb/pkg/errors"
)

type stubSource struct {
	list    *ListResponse
	listErr error
	get     *Project
	getErr  error
	queries []ListQuery
}

func (s *stubSource) List(_ context.Context, q ListQuery) (*ListResponse, error) {
	s.queries = append(s.queries, q)
	if s.listErr != nil {
		return nil, s.listErr
	}
	if s.list == nil {
		return &ListResponse{}, nil
	}
	return s.list, nil
}

func (s *stubSource) Get(_ context.Context, _ string) (*Project, error) {
	return s.get, s.getErr
}

func project(id string, categories ...Category) Project {
	return Project{ID: id, Title: id, Category: categories}
}

func ids(projects []Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestProviderUnconfiguredReturnsEmpty(t *testing.T) {
	p := NewProvider(nil, ProviderOptions{Fallback: []Project{project("f1", CategoryMV)}})

	require.False(t, p.Configured())
	assert.Empty(t, p.GetProjects(context.Background(), 10))
	assert.NotNil(t, p.GetProjects(context.Background(), 10))
	assert.Empty(t, p.GetProjectsByCategory(context.Background(), CategoryMV, 10))
	assert.Nil(t, p.GetProjectByID(context.Background(), "x"))
	assert.Equal(t, []string{"f1"}, ids(p.GetProjectsWithFallback(context.Background())))
}

func TestProviderSwallowsFailures(t *testing.T) {
	src := &stubSource{listErr: errors.New("connection reset"), getErr: errors.New("timeout")}
	p := NewProvider(src, ProviderOptions{})

	assert.Empty(t, p.GetProjects(context.Background(), 10))
	assert.Empty(t, p.GetProjectsByCategory(context.Background(), CategoryCommercial, 10))
	assert.Nil(t, p.GetProjectByID(context.Background(), "x"))
}

func TestProviderPassesQuery(t *testing.T) {
	src := &stubSource{list: &ListResponse{Contents: []Project{project("a", CategoryMV)}}}
	p := NewProvider(src, ProviderOptions{})

	got := p.GetProjectsByCategory(context.Background(), CategoryMV, 7)
	require.Equal(t, []string{"a"}, ids(got))
	require.Len(t, src.queries, 1)
	assert.Equal(t, ListQuery{Limit: 7, Category: CategoryMV}, src.queries[0])
}

func TestProviderGetProjectByIDNotFound(t *testing.T) {
	src := &stubSource{getErr: webberrors.NewRequestError("projects/x", 404, errors.New("missing"))}
	p := NewProvider(src, ProviderOptions{})
	assert.Nil(t, p.GetProjectByID(context.Background(), "x"))

	src = &stubSource{get: &Project{ID: "y"}}
	p = NewProvider(src, ProviderOptions{})
	require.NotNil(t, p.GetProjectByID(context.Background(), "y"))
}

func TestFallbackUsedWhenLiveEmpty(t *testing.T) {
	src := &stubSource{list: &ListResponse{}}
	p := NewProvider(src, ProviderOptions{Fallback: []Project{project("f1", CategoryCommercial)}})

	assert.Equal(t, []string{"f1"}, ids(p.GetProjectsWithFallback(context.Background())))
}

func TestFallbackFillsMissingCategoriesOnly(t *testing.T) {
	live := []Project{project("live-a", CategoryCommercial)}
	fallback := []Project{
		project("fb-a", CategoryCommercial),
		project("fb-b", CategoryMV),
		project("fb-ab", CategoryMV, CategoryCommercial),
	}
	src := &stubSource{list: &ListResponse{Contents: live}}
	p := NewProvider(src, ProviderOptions{Fallback: fallback})

	got := p.GetProjectsWithFallback(context.Background())
	assert.Equal(t, []string{"live-a", "fb-b"}, ids(got))

	commercial := FilterByCategory(got, CategoryCommercial)
	assert.Equal(t, []string{"live-a"}, ids(commercial))
	assert.Equal(t, []string{"fb-b"}, ids(FilterByCategory(got, CategoryMV)))
}

func TestMergeFallbackDoesNotDedupeByID(t *testing.T) {
	live := []Project{project("same", CategoryCommercial)}
	fallback := []Project{project("same", CategoryJamesWebb)}

	assert.Equal(t, []string{"same", "same"}, ids(MergeFallback(live, fallback)))
}

func TestProviderPersistsLiveSnapshot(t *testing.T) {
	cache, err := NewSnapshotCache(filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, err)

	fetched := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	src := &stubSource{list: &ListResponse{Contents: []Project{project("a", CategoryMV)}}}
	p := NewProvider(src, ProviderOptions{Cache: cache, Now: func() time.Time { return fetched }})

	p.GetProjects(context.Background(), 10)

	reloaded, err := NewSnapshotCache(cache.path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(reloaded.Projects()))
	assert.True(t, fetched.Equal(reloaded.FetchedAt()))
}

func TestFilterByCategoryPreservesOrder(t *testing.T) {
	projects := []Project{
		project("1", CategoryMV),
		project("2", CategoryCommercial),
		project("3", CategoryCommercial, CategoryMV),
	}
	assert.Equal(t, []string{"1", "3"}, ids(FilterByCategory(projects, CategoryMV)))
	assert.Empty(t, FilterByCategory(projects, CategoryJamesWebb))
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("james webb")
	require.True(t, ok)
	assert.Equal(t, CategoryJamesWebb, c)
	assert.Equal(t, "JAMES WEBB", c.Label())

	_, ok = ParseCategory("ALL")
	assert.False(t, ok)
}

func TestLoadProjectsReportsOrigin(t *testing.T) {
	fallback := []Project{project("fb", CategoryMV)}

	_, origin := NewProvider(nil, ProviderOptions{Fallback: fallback}).LoadProjects(context.Background())
	assert.Equal(t, OriginFallback, origin)

	failing := NewProvider(&stubSource{listErr: errors.New("boom")}, ProviderOptions{Fallback: fallback})
	got, origin := failing.LoadProjects(context.Background())
	assert.Equal(t, OriginFallback, origin)
	assert.Equal(t, []string{"fb"}, ids(got))

	live := NewProvider(&stubSource{list: &ListResponse{Contents: []Project{project("a", CategoryCommercial)}}}, ProviderOptions{Fallback: fallback})
	got, origin = live.LoadProjects(context.Background())
	assert.Equal(t, OriginLive, origin)
	assert.Equal(t, []string{"a", "fb"}, ids(got))

	cache, err := NewSnapshotCache(filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, err)
	cache.Set([]Project{project("s", CategoryMV)}, time.Now())
	_, origin = NewProvider(NewSnapshotSource(cache), ProviderOptions{}).LoadProjects(context.Background())
	assert.Equal(t, OriginSnapshot, origin)
}

func TestLoadProjectsByCategoryQueriesServer(t *testing.T) {
	fallback := []Project{project("fb-mv", CategoryMV), project("fb-ad", CategoryCommercial)}
	src := &stubSource{list: &ListResponse{Contents: []Project{project("mv-1", CategoryMV)}}}
	p := NewProvider(src, ProviderOptions{Fallback: fallback})

	got, origin := p.LoadProjectsByCategory(context.Background(), CategoryMV)

	assert.Equal(t, OriginLive, origin)
	assert.Equal(t, []string{"mv-1"}, ids(got))
	require.Len(t, src.queries, 1)
	assert.Equal(t, CategoryMV, src.queries[0].Category)
	assert.Equal(t, DefaultLimit, src.queries[0].Limit)

	empty := NewProvider(&stubSource{list: &ListResponse{}}, ProviderOptions{Fallback: fallback})
	got, origin = empty.LoadProjectsByCategory(context.Background(), CategoryCommercial)
	assert.Equal(t, OriginFallback, origin)
	assert.Equal(t, []string{"fb-ad"}, ids(got))
}
