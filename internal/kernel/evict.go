package kernel

import (
	"fmt"
	"os"

	"github.com/mik90/kernelup/internal/messages"
)

// cleanUp deletes the oldest installed versions until at most
// versions-to-keep remain. The newest version is never touched.
func (u *Updater) cleanUp() error {
	installed, err := FindInstalled(u.sys, u.cfg.Paths.Install)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEviction, err)
	}

	keep := u.cfg.Retention.VersionsToKeep
	if len(installed) <= keep {
		u.infof(messages.EvictNothingFmt, len(installed))
		return nil
	}

	u.printInstalled(installed)
	u.infof(messages.EvictCountFmt, len(installed)-keep)
	for idx := len(installed) - 1; idx >= keep; idx-- {
		if err := u.removeVersion(installed[idx]); err != nil {
			return err
		}
	}
	return nil
}

// removeVersion deletes one version's boot artifacts plus, for non-.old
// versions, its source tree and module tree. The .old copy shares both
// directories with its non-.old sibling, so they are left alone for it.
func (u *Updater) removeVersion(inst Installed) error {
	u.infof(messages.EvictVersionFmt, inst.Version)
	targets := []string{inst.Image, inst.SystemMap, inst.Config}
	if !inst.Old {
		targets = append(targets,
			inst.SourceDir(u.cfg.Paths.KernelSource),
			inst.ModulesDir(u.cfg.Paths.KernelModules))
	}
	for _, target := range targets {
		if err := u.removePath(target); err != nil {
			return err
		}
	}
	return nil
}

// removePath trashes target, falling back to permanent removal when the
// trash move fails. Renames cannot cross filesystems, so a trash directory
// on another partition always takes the fallback.
func (u *Updater) removePath(target string) error {
	if _, err := u.sys.Stat(target); os.IsNotExist(err) {
		u.infof(messages.EvictNotPresentFmt, target)
		return nil
	}
	u.infof(messages.EvictFileFmt, target)
	if !u.cfg.Retention.PermanentDelete {
		err := u.bin.Put(target)
		if err == nil {
			return nil
		}
		u.warnf(messages.EvictTrashFallbackFmt, target, err)
	}
	if err := u.sys.RemoveAll(target); err != nil {
		return fmt.Errorf(messages.EvictFailedFmt, ErrEviction, target, err)
	}
	return nil
}
