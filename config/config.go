package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/patrol/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultDepth is the maximum traversal depth used when no depth is configured.
// Most project trees are shallow, so a generous default costs little.
const DefaultDepth = 10

// DefaultColumns is the dashboard grid width.
const DefaultColumns = 3

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Config is the patrol configuration loaded from patrol.yml or patrol.toml.
type Config struct {
	// Root is the default scan root. Empty means the current directory.
	Root string `yaml:"root,omitempty" toml:"root,omitempty"`

	// Depth bounds the filesystem traversal when discovering repositories.
	Depth int `yaml:"depth,omitempty" toml:"depth,omitempty"`

	// Columns is the number of panels per dashboard row.
	Columns int `yaml:"columns,omitempty" toml:"columns,omitempty"`

	// Ignore lists patterns (gitignore-style) for directories the discoverer
	// skips, matched against the root-relative path.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// Extensions holds tool-specific sections (e.g. "logging") that are
	// decoded on demand via UnmarshalExtension.
	Extensions map[string]interface{} `yaml:",inline" toml:"-"`
}

// SetDefaults fills zero values with the documented defaults.
func (c *Config) SetDefaults() {
	if c.Depth <= 0 {
		c.Depth = DefaultDepth
	}
	if c.Columns <= 0 {
		c.Columns = DefaultColumns
	}
}

// Load reads and parses the configuration file at path. The format is chosen
// by file extension: .toml is decoded as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	expanded := expandEnvVars(string(data))

	var cfg Config
	if strings.HasSuffix(path, ".toml") {
		if err := toml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration").
				WithDetail("path", path)
		}
	} else {
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration").
				WithDetail("path", path)
		}
	}

	cfg.SetDefaults()
	return &cfg, nil
}

// LoadDefault finds and loads the configuration starting from the current
// directory. A missing config file is not an error: defaults are returned.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}
	return LoadFrom(cwd)
}

// LoadFrom loads the configuration starting from the given directory,
// falling back to defaults when no config file exists.
func LoadFrom(startDir string) (*Config, error) {
	path, found := FindConfigFile(startDir)
	if !found {
		cfg := &Config{}
		cfg.SetDefaults()
		return cfg, nil
	}
	return Load(path)
}

// FindConfigFile searches for patrol configuration files with the following
// precedence:
// 1. Current directory up to filesystem root
// 2. XDG config directory (~/.config/patrol/)
func FindConfigFile(startDir string) (string, bool) {
	configNames := []string{
		"patrol.yml",
		"patrol.yaml",
		"patrol.toml",
		".patrol.yml",
		".patrol.yaml",
	}

	// 1. Search from the start directory up to filesystem root
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// 2. Check XDG config directory
	if xdgDir := xdgConfigDir(); xdgDir != "" {
		for _, name := range []string{"patrol.yml", "patrol.yaml", "patrol.toml"} {
			path := filepath.Join(xdgDir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, true
			}
		}
	}

	return "", false
}

func xdgConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "patrol")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "patrol")
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return match
	})
}
