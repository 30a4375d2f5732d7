// Package config loads canvasinput settings from TOML files.
//
// Only tunables live here; shortcut bindings are profile documents handled
// by the profile package.
package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/canvasinput/internal/input/matcher"
)

// Settings holds the configurable matcher tunables.
type Settings struct {
	// TouchSlopSquared is the squared drag-detection threshold in pixels.
	TouchSlopSquared float64 `toml:"touch_slop_squared"`

	// TouchLatencyIterations is the size of the early touch window.
	TouchLatencyIterations int `toml:"touch_latency_iterations"`

	// IgnoreCursorEnteredCheck disables the cursor-entered condition in
	// action suppression, for pen-capable tablets.
	IgnoreCursorEnteredCheck bool `toml:"ignore_cursor_entered_check"`

	// ProfilePath points to the shortcut profile document to load.
	ProfilePath string `toml:"profile_path"`

	// LogLevel selects the log verbosity: debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		TouchSlopSquared:       matcher.DefaultTouchSlopSquared,
		TouchLatencyIterations: matcher.DefaultTouchLatencyIterations,
		LogLevel:               "info",
	}
}

// MatcherConfig converts the settings into a matcher configuration.
func (s Settings) MatcherConfig() matcher.Config {
	return matcher.Config{
		TouchSlopSquared:         s.TouchSlopSquared,
		TouchLatencyIterations:   s.TouchLatencyIterations,
		IgnoreCursorEnteredCheck: s.IgnoreCursorEnteredCheck,
	}
}

// FileSystem is an abstraction for file system operations, allowing
// tests to use in-memory file systems.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader loads settings from TOML files.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a loader over the OS file system.
func NewLoader() *Loader {
	return &Loader{fs: OSFS{}}
}

// NewLoaderWithFS creates a loader with a custom file system.
func NewLoaderWithFS(fsys FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// Load reads settings from path. A missing file is not an error: the
// defaults are returned.
func (l *Loader) Load(path string) (Settings, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return l.parse(path, data)
}

// LoadFromReader reads settings from an io.Reader.
func (l *Loader) LoadFromReader(r io.Reader) (Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Settings{}, fmt.Errorf("reading config: %w", err)
	}

	return l.parse("<reader>", data)
}

// parse decodes TOML data over the defaults, so absent keys keep their
// default values.
func (l *Loader) parse(source string, data []byte) (Settings, error) {
	settings := Default()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parsing config %s: %w", source, err)
	}
	return settings, nil
}
