package kernel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mik90/kernelup/internal/config"
)

// fakeSystem is RealSystem with a controllable effective uid, so updater
// tests can pass the root check against a temp boot directory. failRemove,
// when set, intercepts RemoveAll.
type fakeSystem struct {
	RealSystem
	euid       int
	failRemove func(path string) error
}

func (s fakeSystem) Geteuid() int {
	return s.euid
}

func (s fakeSystem) RemoveAll(path string) error {
	if s.failRemove != nil {
		if err := s.failRemove(path); err != nil {
			return err
		}
	}
	return s.RealSystem.RemoveAll(path)
}

// call records one Runner invocation.
type call struct {
	dir  string
	env  []string
	name string
	args []string
}

func (c call) id() string {
	if len(c.args) == 0 {
		return c.name
	}
	return c.name + " " + strings.Join(c.args, " ")
}

// fakeRunner records invocations. onRun, when set, is called for each
// invocation and may fail it or simulate its side effects.
type fakeRunner struct {
	calls []call
	onRun func(name string, args []string) error
}

func (r *fakeRunner) Run(dir string, env []string, name string, args ...string) error {
	r.calls = append(r.calls, call{dir: dir, env: env, name: name, args: args})
	if r.onRun != nil {
		return r.onRun(name, args)
	}
	return nil
}

func (r *fakeRunner) ids() []string {
	ids := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		ids = append(ids, c.id())
	}
	return ids
}

// writeArtifacts creates the three boot artifacts for slug (e.g.
// "5.9.2-gentoo" or "5.9.2-gentoo-r1") in bootDir, with .old suffixes when
// old is set.
func writeArtifacts(t *testing.T, bootDir string, slug string, old bool) {
	t.Helper()
	suffix := ""
	if old {
		suffix = ".old"
	}
	for _, prefix := range []string{"vmlinuz-", "System.map-", "config-"} {
		path := filepath.Join(bootDir, prefix+slug+suffix)
		content := fmt.Sprintf("%s%s%s contents\n", prefix, slug, suffix)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write artifact %s: %v", path, err)
		}
	}
}

// testConfig returns a config rooted in fresh temp directories.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Install = filepath.Join(root, "boot")
	cfg.Paths.KernelSource = filepath.Join(root, "src", "linux")
	cfg.Paths.KernelModules = filepath.Join(root, "modules")
	cfg.Paths.Trash = filepath.Join(root, "trash")
	for _, dir := range []string{cfg.Paths.Install, cfg.Paths.KernelSource, cfg.Paths.KernelModules} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	return &cfg
}
