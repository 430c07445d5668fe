package config

import (
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[paths]
install = "/boot/EFI/Gentoo"
kernel-source = "/usr/src/linux"
kernel-modules = "/lib/modules"
trash = "/boot/.trash"

[build]
jobs = 12
load-average = 11.5

[retention]
versions-to-keep = 2
permanent-delete = true

[steps]
regenerate-grub-config = true
module-rebuild = true
`

func TestLoadReadsFullConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernelup.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/boot/EFI/Gentoo", cfg.Paths.Install)
	assert.Equal(t, "/usr/src/linux", cfg.Paths.KernelSource)
	assert.Equal(t, 12, cfg.Build.Jobs)
	assert.Equal(t, 11.5, cfg.Build.LoadAverage)
	assert.Equal(t, 2, cfg.Retention.VersionsToKeep)
	assert.True(t, cfg.Retention.PermanentDelete)
	assert.True(t, cfg.Steps.RegenerateGrubConfig)
	assert.True(t, cfg.Steps.ModuleRebuild)
}

func TestParseAppliesDefaultsForOmittedTables(t *testing.T) {
	data := `
[paths]
install = "/boot/EFI/Gentoo"
kernel-source = "/usr/src/linux"
kernel-modules = "/lib/modules"
trash = "/boot/.trash"
`
	cfg, err := Parse([]byte(data), "inline")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Build.Jobs)
	assert.Equal(t, 3, cfg.Retention.VersionsToKeep)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	data := sampleConfig + "\n[paths2]\nx = 1\n"
	_, err := Parse([]byte(data), "inline")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigValidation)
}

func TestParseWrapsValidationFailures(t *testing.T) {
	data := `
[paths]
install = "/boot/EFI/Gentoo"
kernel-source = "/usr/src/linux"
kernel-modules = "/lib/modules"
trash = "/boot/.trash"

[build]
jobs = 0
`
	_, err := Parse([]byte(data), "inline")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigValidation)
	assert.Contains(t, err.Error(), "build.jobs")
}

func TestParseRejectsBadTOML(t *testing.T) {
	_, err := Parse([]byte("[paths\ninstall = ?"), "inline")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigValidation)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestDiscoverFindsWorkingDirConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(sampleConfig), 0o644))
	t.Chdir(dir)

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, FileName, path)
}

func TestDiscoverFailsWhenNoCandidateExists(t *testing.T) {
	// go-homedir caches the resolved home; bypass it so HOME takes effect.
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no config file found")
}
