// Package config loads and validates devctl.yaml, the mapping from repo
// name to filesystem path and base branch that both workflows consume.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	devctlerrors "devctl.dev/devctl/internal/errors"
	"devctl.dev/devctl/internal/git"
)

// FileName is the config file name, resolved against the workspace dir
const FileName = "devctl.yaml"

// Repo describes one configured repository
type Repo struct {
	Path string `koanf:"path"`
	Base string `koanf:"base"`

	// ResolvedPath is the absolute repository path, filled in during
	// validation so callers never re-resolve.
	ResolvedPath string `koanf:"-"`
}

// Config is the validated devctl.yaml content
type Config struct {
	Repos map[string]Repo `koanf:"repos"`
}

// Load reads and validates devctl.yaml from the given workspace directory.
// Relative repo paths resolve against that directory, never the process
// working directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s (run 'devctl init' first)", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(cfg.Repos) == 0 {
		return nil, fmt.Errorf("%s is missing a non-empty 'repos' section", path)
	}

	for name, repo := range cfg.Repos {
		if repo.Path == "" {
			return nil, fmt.Errorf("repos.%s.path is required", name)
		}
		if repo.Base == "" {
			return nil, fmt.Errorf("repos.%s.base is required", name)
		}

		resolved := repo.Path
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(dir, resolved)
		}
		resolved, err := filepath.Abs(resolved)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve repos.%s.path: %w", name, err)
		}

		info, err := os.Stat(resolved)
		if err != nil {
			return nil, fmt.Errorf("repo path does not exist: %s -> %s", name, resolved)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("repo path is not a directory: %s -> %s", name, resolved)
		}
		if !git.IsRepository(resolved) {
			return nil, fmt.Errorf("not a git repository: %s -> %s", name, resolved)
		}

		repo.ResolvedPath = resolved
		cfg.Repos[name] = repo
	}

	return &cfg, nil
}

// Names returns the configured repo names in sorted order, the canonical
// iteration order for both workflows and their reports.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Repos))
	for name := range c.Repos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the sorted repo names to operate on. A nil filter selects
// every configured repo; a filter naming unknown repos is rejected before
// any repo is touched. Repeated names collapse to one, so each selected
// repo is processed exactly once.
func (c *Config) Select(filter []string) ([]string, error) {
	if filter == nil {
		return c.Names(), nil
	}

	var unknown []string
	seen := make(map[string]struct{}, len(filter))
	selected := make([]string, 0, len(filter))
	for _, name := range filter {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		if _, ok := c.Repos[name]; !ok {
			unknown = append(unknown, name)
			continue
		}
		selected = append(selected, name)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, devctlerrors.NewUnknownRepoError(unknown)
	}

	sort.Strings(selected)
	return selected, nil
}
