// Package config loads and validates the kernelup TOML configuration.
package config

import (
	"fmt"

	"github.com/mik90/kernelup/internal/messages"
)

// Paths holds the filesystem locations the updater reads and writes.
type Paths struct {
	// Install is the boot directory kernel artifacts are installed into.
	Install string `toml:"install"`
	// KernelSource is the source tree the kernel is built in, usually a
	// symlink like /usr/src/linux.
	KernelSource string `toml:"kernel-source"`
	// KernelModules is the directory versioned module trees live under.
	KernelModules string `toml:"kernel-modules"`
	// Trash is the destination for recoverable deletes.
	Trash string `toml:"trash"`
}

// Build holds the parallelism settings passed to make.
type Build struct {
	Jobs        int     `toml:"jobs"`
	LoadAverage float64 `toml:"load-average"`
}

// Retention controls how many installed versions survive a run.
type Retention struct {
	VersionsToKeep int `toml:"versions-to-keep"`
	// PermanentDelete skips the trash directory and removes files outright.
	PermanentDelete bool `toml:"permanent-delete"`
}

// Steps toggles the optional post-install steps.
type Steps struct {
	RegenerateGrubConfig bool `toml:"regenerate-grub-config"`
	ModuleRebuild        bool `toml:"module-rebuild"`
}

// Config is the full per-run configuration. It is immutable once loaded.
type Config struct {
	Paths     Paths     `toml:"paths"`
	Build     Build     `toml:"build"`
	Retention Retention `toml:"retention"`
	Steps     Steps     `toml:"steps"`
}

// Default returns a Config with every optional field set to its default.
// Paths have no defaults; they must come from the config file.
func Default() Config {
	return Config{
		Build: Build{
			Jobs:        8,
			LoadAverage: 8.0,
		},
		Retention: Retention{
			VersionsToKeep: 3,
		},
	}
}

// Validate checks the loaded config. source is used in error messages.
func (c *Config) Validate(source string) error {
	pathFields := []struct {
		key   string
		value string
	}{
		{"install", c.Paths.Install},
		{"kernel-source", c.Paths.KernelSource},
		{"kernel-modules", c.Paths.KernelModules},
		{"trash", c.Paths.Trash},
	}
	for _, field := range pathFields {
		if field.value == "" {
			return fmt.Errorf(messages.ConfigFieldEmptyFmt, source, field.key)
		}
	}
	if c.Build.Jobs < 1 {
		return fmt.Errorf(messages.ConfigJobsInvalidFmt, source, c.Build.Jobs)
	}
	if c.Build.LoadAverage <= 0 {
		return fmt.Errorf(messages.ConfigLoadInvalidFmt, source, c.Build.LoadAverage)
	}
	if c.Retention.VersionsToKeep < 1 {
		return fmt.Errorf(messages.ConfigKeepInvalidFmt, source, c.Retention.VersionsToKeep)
	}
	return nil
}
