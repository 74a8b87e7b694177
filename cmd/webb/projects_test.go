package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webb-inc/webb/internal/content"
)

const testSettings = `
fallback_projects:
  - id: fb-commercial
    title: Placeholder Spot
    category: [COMMERCIAL]
    year: "2022"
    client: Studio
  - id: fb-webb
    title: Placeholder Sky
    category: [JAMES_WEBB]
    videourl: https://youtu.be/abc123
    description: "<p>Deep <b>field</b> survey</p>"
`

func TestProjectsListPrintsFallbackTable(t *testing.T) {
	setupCommandEnv(t, testSettings)

	stdout, err := executeCommand("projects", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ID")
	assert.Contains(t, stdout, "TITLE")
	assert.Contains(t, stdout, "fb-commercial")
	assert.Contains(t, stdout, "Placeholder Spot")
	assert.Contains(t, stdout, "JAMES WEBB")
}

func TestProjectsListFiltersAndLimits(t *testing.T) {
	setupCommandEnv(t, testSettings)

	stdout, err := executeCommand("projects", "list", "--category", "james webb")
	require.NoError(t, err)
	assert.Contains(t, stdout, "fb-webb")
	assert.NotContains(t, stdout, "fb-commercial")

	stdout, err = executeCommand("projects", "list", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "fb-commercial")
	assert.NotContains(t, stdout, "fb-webb")
}

func TestProjectsListRejectsUnknownCategory(t *testing.T) {
	setupCommandEnv(t, testSettings)

	_, err := executeCommand("projects", "list", "--category", "PHOTO")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PHOTO")
}

func TestProjectsListJSON(t *testing.T) {
	setupCommandEnv(t, testSettings)

	stdout, err := executeCommand("projects", "list", "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, content.OriginFallback, payload.Origin)
	assert.Equal(t, 2, payload.Count)
	require.Len(t, payload.Projects, 2)
	assert.Equal(t, "fb-commercial", payload.Projects[0].ID)
}

func TestProjectsListOfflineMergesSnapshot(t *testing.T) {
	dir := setupCommandEnv(t, testSettings)
	writeSnapshot(t, filepath.Join(dir, "cache", "projects.json"), content.Project{
		ID:       "live-mv",
		Title:    "Cached Video",
		Category: []content.Category{content.CategoryMV},
	}, content.Project{
		ID:       "live-ad",
		Title:    "Cached Spot",
		Category: []content.Category{content.CategoryCommercial},
	})

	stdout, err := executeCommand("projects", "list", "--offline", "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, content.OriginSnapshot, payload.Origin)

	ids := make([]string, 0, len(payload.Projects))
	for _, p := range payload.Projects {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"live-mv", "live-ad", "fb-webb"}, ids)
}

func TestProjectsShowFallbackProject(t *testing.T) {
	setupCommandEnv(t, testSettings)

	stdout, err := executeCommand("projects", "show", "fb-webb")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Project:  fb-webb")
	assert.Contains(t, stdout, "https://www.youtube.com/embed/abc123")
	assert.Contains(t, stdout, "Deep field survey")
}

func TestProjectsShowUnknownID(t *testing.T) {
	setupCommandEnv(t, testSettings)

	_, err := executeCommand("projects", "show", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestProjectsListReportsSettingsErrors(t *testing.T) {
	setupCommandEnv(t, "initial_view: GALLERY\n")

	_, err := executeCommand("projects", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load settings")
}

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append(args, "--log-file=-"))

	err := root.Execute()
	return buf.String(), err
}

// setupCommandEnv isolates the command from the real environment and writes
// a settings file whose cache lives in the returned directory.
func setupCommandEnv(t *testing.T, settings string) string {
	t.Helper()
	dir := t.TempDir()

	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache-home"))
	t.Setenv("MICROCMS_SERVICE_DOMAIN", "")
	t.Setenv("MICROCMS_API_KEY", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	settings += "cache:\n  path: " + filepath.Join(dir, "cache", "projects.json") + "\n"
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(settings), 0o644))
	t.Setenv("WEBB_CONFIG", path)

	return dir
}

func writeSnapshot(t *testing.T, path string, projects ...content.Project) {
	t.Helper()
	data, err := json.Marshal(content.SnapshotFile{
		Version:   "1.0",
		FetchedAt: time.Now().UTC(),
		Projects:  projects,
	})
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestProjectsListCategoryOfflineFiltersSnapshot(t *testing.T) {
	dir := setupCommandEnv(t, testSettings)
	writeSnapshot(t, filepath.Join(dir, "cache", "projects.json"), content.Project{
		ID:       "live-mv",
		Title:    "Cached Video",
		Category: []content.Category{content.CategoryMV},
	}, content.Project{
		ID:       "live-ad",
		Title:    "Cached Spot",
		Category: []content.Category{content.CategoryCommercial},
	})

	stdout, err := executeCommand("projects", "list", "--offline", "--category", "mv", "--json")
	require.NoError(t, err)
	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, content.OriginSnapshot, payload.Origin)
	require.Len(t, payload.Projects, 1)
	assert.Equal(t, "live-mv", payload.Projects[0].ID)

	stdout, err = executeCommand("projects", "list", "--offline", "--category", "JAMES_WEBB", "--json")
	require.NoError(t, err)
	payload = listJSONPayload{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, content.OriginFallback, payload.Origin)
	require.Len(t, payload.Projects, 1)
	assert.Equal(t, "fb-webb", payload.Projects[0].ID)
}
