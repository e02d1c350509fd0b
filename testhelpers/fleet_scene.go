package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FleetScene is a workspace directory holding several configured repos,
// each backed by its own bare origin, plus a devctl.yaml describing them.
type FleetScene struct {
	Dir   string
	Repos map[string]*GitRepo
}

// NewFleetScene builds a scene with one repository per name. Every repo
// starts on main with one commit pushed to its origin, and devctl.yaml
// lists them all with base main. Cleanup rides on t.TempDir.
func NewFleetScene(t *testing.T, names ...string) *FleetScene {
	t.Helper()

	scene := &FleetScene{
		Dir:   t.TempDir(),
		Repos: make(map[string]*GitRepo),
	}

	var b strings.Builder
	b.WriteString("repos:\n")
	for _, name := range names {
		repo, err := NewGitRepo(filepath.Join(scene.Dir, name))
		if err != nil {
			t.Fatalf("failed to create repo %s: %v", name, err)
		}
		if err := repo.CreateChangeAndCommit("initial", "init"); err != nil {
			t.Fatalf("failed to commit in %s: %v", name, err)
		}
		if _, err := repo.CreateBareRemote(); err != nil {
			t.Fatalf("failed to create origin for %s: %v", name, err)
		}
		scene.Repos[name] = repo

		fmt.Fprintf(&b, "  %s:\n", name)
		fmt.Fprintf(&b, "    path: ./%s\n", name)
		fmt.Fprintf(&b, "    base: main\n")
	}

	if err := os.WriteFile(filepath.Join(scene.Dir, "devctl.yaml"), []byte(b.String()), 0644); err != nil {
		t.Fatalf("failed to write devctl.yaml: %v", err)
	}

	return scene
}

// SetBase rewrites devctl.yaml with a per-repo base branch override.
func (s *FleetScene) SetBase(t *testing.T, bases map[string]string) {
	t.Helper()

	var b strings.Builder
	b.WriteString("repos:\n")
	for name := range s.Repos {
		base, ok := bases[name]
		if !ok {
			base = "main"
		}
		fmt.Fprintf(&b, "  %s:\n", name)
		fmt.Fprintf(&b, "    path: ./%s\n", name)
		fmt.Fprintf(&b, "    base: %s\n", base)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, "devctl.yaml"), []byte(b.String()), 0644); err != nil {
		t.Fatalf("failed to rewrite devctl.yaml: %v", err)
	}
}
