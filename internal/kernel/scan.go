package kernel

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mik90/kernelup/internal/messages"
)

// Installed is one kernel version discovered in the boot directory, with
// absolute paths to its three boot artifacts.
type Installed struct {
	Version
	Image     string
	SystemMap string
	Config    string
}

// SourceDir returns the versioned source tree for this kernel, a sibling of
// the kernelSource symlink: /usr/src/linux -> /usr/src/linux-5.9.2-gentoo.
func (inst Installed) SourceDir(kernelSource string) string {
	return kernelSource + "-" + inst.Slug()
}

// ModulesDir returns this kernel's module tree under kernelModules.
func (inst Installed) ModulesDir(kernelModules string) string {
	return filepath.Join(kernelModules, inst.Slug())
}

// FindInstalled scans bootDir for kernel images and their companion
// System.map and config files. Every image must have both companions with a
// matching .old suffix; a missing companion is an error naming the version.
// Results are sorted newest first.
func FindInstalled(sys System, bootDir string) ([]Installed, error) {
	images, err := sys.Glob(filepath.Join(bootDir, imagePrefix+"*"))
	if err != nil {
		return nil, fmt.Errorf(messages.ScanGlobFailedFmt, bootDir, err)
	}

	installed := make([]Installed, 0, len(images))
	for _, image := range images {
		version, err := ParseImageName(filepath.Base(image))
		if err != nil {
			return nil, err
		}

		suffix := ""
		if version.Old {
			suffix = oldSuffix
		}
		systemMap := filepath.Join(bootDir, "System.map-"+version.Slug()+suffix)
		if _, err := sys.Stat(systemMap); err != nil {
			return nil, fmt.Errorf(messages.ScanMissingSystemMapFmt, version, bootDir)
		}
		config := filepath.Join(bootDir, "config-"+version.Slug()+suffix)
		if _, err := sys.Stat(config); err != nil {
			return nil, fmt.Errorf(messages.ScanMissingConfigFmt, version, bootDir)
		}

		installed = append(installed, Installed{
			Version:   version,
			Image:     image,
			SystemMap: systemMap,
			Config:    config,
		})
	}

	sort.Slice(installed, func(i, j int) bool {
		return installed[i].Compare(installed[j].Version) > 0
	})
	return installed, nil
}
