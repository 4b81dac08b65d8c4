package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/go-drift/materialweb/pkg/bootstrap"
	"github.com/go-drift/materialweb/pkg/widget"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the optional project configuration file.
const FileName = "materialweb.yaml"

// DefaultToolkitVersion is the oldest toolkit release the wrappers support.
const DefaultToolkitVersion = "v14.0.0"

// Config represents the optional materialweb.yaml configuration.
type Config struct {
	Toolkit  ToolkitConfig  `yaml:"toolkit"`
	AutoInit AutoInitConfig `yaml:"autoInit"`
}

// ToolkitConfig pins the widget toolkit.
type ToolkitConfig struct {
	Version string `yaml:"version,omitempty"`
}

// AutoInitConfig controls the bootstrap scan.
type AutoInitConfig struct {
	Disabled bool             `yaml:"disabled,omitempty"`
	Rules    []bootstrap.Rule `yaml:"rules,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root           string
	ModulePath     string
	ToolkitVersion string
	AutoInit       bool
	Rules          []bootstrap.Rule
}

// LoadOptional reads materialweb.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads materialweb.yaml (if present), fills defaults and validates
// the result. A missing go.mod leaves ModulePath empty.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	version := strings.TrimSpace(cfg.Toolkit.Version)
	if version == "" {
		version = DefaultToolkitVersion
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return nil, fmt.Errorf("toolkit.version %q is not a semantic version", cfg.Toolkit.Version)
	}

	rules := cfg.AutoInit.Rules
	if len(rules) == 0 {
		rules = bootstrap.DefaultRules
	}
	if err := validateRules(rules); err != nil {
		return nil, err
	}

	return &Resolved{
		Root:           dir,
		ModulePath:     modulePath(dir),
		ToolkitVersion: semver.Canonical(version),
		AutoInit:       !cfg.AutoInit.Disabled,
		Rules:          rules,
	}, nil
}

// CheckToolkit fails when version is older than the configured toolkit.
func (r *Resolved) CheckToolkit(version string) error {
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("toolkit version %q is not a semantic version", version)
	}
	if semver.Compare(v, r.ToolkitVersion) < 0 {
		return fmt.Errorf("toolkit %s is older than the required %s", version, r.ToolkitVersion)
	}
	return nil
}

// FindProjectRoot walks up from the current directory to find
// materialweb.yaml or go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s or go.mod found", FileName)
		}
		dir = parent
	}
}

func modulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}

func validateRules(rules []bootstrap.Rule) error {
	for i, rule := range rules {
		if strings.TrimSpace(rule.Selector) == "" {
			return fmt.Errorf("autoInit.rules[%d]: selector is required", i)
		}
		if _, err := cascadia.Compile(rule.Selector); err != nil {
			return fmt.Errorf("autoInit.rules[%d]: invalid selector %q: %w", i, rule.Selector, err)
		}
		if !slices.Contains(widget.Kinds, rule.Kind) {
			return fmt.Errorf("autoInit.rules[%d]: unknown widget kind %q", i, rule.Kind)
		}
	}
	return nil
}
