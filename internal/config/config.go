package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"

	"pyapi/internal/extract"
)

// ManifestName is the per-project configuration file.
const ManifestName = "pyapi.toml"

// Config mirrors pyapi.toml. Every field is optional; flags override it.
type Config struct {
	Defaults DefaultsSection `toml:"defaults"`
	Run      RunSection      `toml:"run"`
	Files    FilesSection    `toml:"files"`
}

// DefaultsSection sets extraction defaults.
type DefaultsSection struct {
	// Visibility is one of public, private, all.
	Visibility string `toml:"visibility"`
	Docstrings *bool  `toml:"docstrings"`
}

// RunSection tunes execution.
type RunSection struct {
	Jobs  int   `toml:"jobs"`
	Cache *bool `toml:"cache"`
}

// FilesSection selects inputs.
type FilesSection struct {
	// Exclude holds glob patterns matched against slash paths and
	// base names.
	Exclude []string `toml:"exclude"`
}

// Find walks up from startDir to locate pyapi.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses one manifest file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &cfg, nil
}

// Discover finds and loads the nearest manifest above startDir. When none
// exists it returns a zero Config and an empty path.
func Discover(startDir string) (*Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return &Config{}, "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// ParseVisibility maps a config string to a visibility mode. The empty
// string falls back to the given default.
func ParseVisibility(s string, fallback extract.Visibility) (extract.Visibility, error) {
	switch s {
	case "":
		return fallback, nil
	case "public":
		return extract.Public, nil
	case "private":
		return extract.Private, nil
	case "all":
		return extract.All, nil
	default:
		return fallback, fmt.Errorf("invalid visibility %q: want public, private, or all", s)
	}
}

// DocstringsOr returns the configured docstring default.
func (c *Config) DocstringsOr(fallback bool) bool {
	if c == nil || c.Defaults.Docstrings == nil {
		return fallback
	}
	return *c.Defaults.Docstrings
}

// CacheOr returns the configured cache default.
func (c *Config) CacheOr(fallback bool) bool {
	if c == nil || c.Run.Cache == nil {
		return fallback
	}
	return *c.Run.Cache
}

// CompileExcludes compiles the [files] exclude patterns.
func (c *Config) CompileExcludes() ([]glob.Glob, error) {
	if c == nil || len(c.Files.Exclude) == 0 {
		return nil, nil
	}
	out := make([]glob.Glob, 0, len(c.Files.Exclude))
	for _, pattern := range c.Files.Exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		out = append(out, g)
	}
	return out, nil
}
