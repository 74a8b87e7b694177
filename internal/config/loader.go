package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	webberrors "github.com/webb-inc/webb/pkg/errors"
)

const appDir = "webb"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultPath is where the settings file lives when no path is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appDir, "config.yaml")
}

// DefaultCachePath is the snapshot cache location.
func DefaultCachePath() string {
	return filepath.Join(cacheDir(), "projects.json")
}

// DefaultLogPath is the log file used while the TUI owns the terminal.
func DefaultLogPath() string {
	return filepath.Join(cacheDir(), "webb.log")
}

func cacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appDir)
}

// Load reads the settings file at path, or DefaultPath when path is empty.
// A missing file yields the defaults. Parse failures carry the YAML line.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = DefaultPath()
	}

	settings := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			settings.Cache.Path = DefaultCachePath()
			return settings, nil
		}
		return nil, webberrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, webberrors.NewParseError(path, extractLine(err), err)
	}

	settings.applyDefaults()
	if settings.Cache.Path == "" {
		settings.Cache.Path = DefaultCachePath()
	}

	if err := Validate(settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
