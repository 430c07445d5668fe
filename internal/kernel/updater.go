package kernel

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"

	"github.com/mik90/kernelup/internal/config"
	"github.com/mik90/kernelup/internal/messages"
	"github.com/mik90/kernelup/internal/trash"
)

// Step failure sentinels. A build or install failure aborts the run; an
// eviction failure is reported as a warning since the new kernel is already
// installed.
var (
	ErrBuild    = errors.New("kernel build failed")
	ErrInstall  = errors.New("kernel install failed")
	ErrEviction = errors.New("eviction failed")
)

// Trasher performs recoverable deletes.
type Trasher interface {
	Put(path string) error
}

// Updater builds and installs a kernel per the loaded config. One Updater
// serves one run; concurrent runs against the same boot directory race and
// are unsupported.
type Updater struct {
	cfg *config.Config
	sys System
	run Runner
	bin Trasher
	out io.Writer
}

// New returns an Updater for cfg writing status lines to out.
func New(cfg *config.Config, sys System, run Runner, out io.Writer) *Updater {
	return &Updater{
		cfg: cfg,
		sys: sys,
		run: run,
		bin: trash.NewBin(cfg.Paths.Trash),
		out: out,
	}
}

// Update runs the full sequence: permission check, config refresh, compile,
// install, optional module rebuild, eviction, optional grub regeneration.
// manualEdit skips the config refresh. The first failing step aborts the
// rest, except eviction whose failure only warns.
func (u *Updater) Update(manualEdit bool) error {
	if err := u.checkPermissions(); err != nil {
		return err
	}
	if manualEdit {
		u.infof(messages.UpdaterManualEdit)
	} else if err := u.refreshConfig(); err != nil {
		return err
	}
	if err := u.compile(); err != nil {
		return err
	}
	if err := u.installNew(); err != nil {
		return err
	}
	if u.cfg.Steps.ModuleRebuild {
		if err := u.moduleRebuild(); err != nil {
			return err
		}
	}
	if err := u.cleanUp(); err != nil {
		u.warnf(messages.EvictWarnFmt, err)
	}
	if u.cfg.Steps.RegenerateGrubConfig {
		if err := u.regenGrubConfig(); err != nil {
			return err
		}
	}
	u.successf(messages.UpdaterDone)
	return nil
}

// Clean runs only the eviction step.
func (u *Updater) Clean() error {
	if err := u.checkPermissions(); err != nil {
		return err
	}
	return u.cleanUp()
}

// List prints the installed kernel versions, newest first.
func (u *Updater) List() error {
	installed, err := FindInstalled(u.sys, u.cfg.Paths.Install)
	if err != nil {
		return err
	}
	u.printInstalled(installed)
	return nil
}

// PendingEvictions returns how many installed versions are beyond the
// retention count.
func (u *Updater) PendingEvictions() (int, error) {
	installed, err := FindInstalled(u.sys, u.cfg.Paths.Install)
	if err != nil {
		return 0, err
	}
	pending := len(installed) - u.cfg.Retention.VersionsToKeep
	if pending < 0 {
		pending = 0
	}
	return pending, nil
}

// InstallDir returns the configured boot directory.
func (u *Updater) InstallDir() string {
	return u.cfg.Paths.Install
}

func (u *Updater) checkPermissions() error {
	u.infof(messages.UpdaterCheckingPermissions)
	if u.sys.Geteuid() != 0 {
		return errors.New(messages.UpdaterMustBeRoot)
	}
	return nil
}

// refreshConfig seeds <source>/.config from the newest installed config and
// runs `make oldconfig`, then prints what changed.
func (u *Updater) refreshConfig() error {
	installed, err := FindInstalled(u.sys, u.cfg.Paths.Install)
	if err != nil {
		return err
	}
	if len(installed) == 0 {
		u.infof(messages.UpdaterNoInstalledCfg)
		return nil
	}

	u.infof(messages.UpdaterRefreshingConfig)
	newest := installed[0]
	dest := filepath.Join(u.cfg.Paths.KernelSource, ".config")
	before, err := u.sys.ReadFile(newest.Config)
	if err != nil {
		return err
	}
	u.infof(messages.UpdaterCopyConfigFmt, newest.Config, dest)
	if err := u.sys.WriteFile(dest, before, 0o644); err != nil {
		return err
	}

	u.infof(messages.UpdaterRunningOldconfig)
	if err := u.run.Run(u.cfg.Paths.KernelSource, nil, "make", "oldconfig"); err != nil {
		return fmt.Errorf(messages.OldconfigFailedFmt, err)
	}

	after, err := u.sys.ReadFile(dest)
	if err != nil {
		return err
	}
	diff := ConfigDiff(filepath.Base(newest.Config), ".config", string(before), string(after))
	if diff == "" {
		u.infof(messages.UpdaterConfigUnchanged)
	} else {
		u.infof(messages.UpdaterConfigDiffFmt, diff)
	}
	return nil
}

func (u *Updater) compile() error {
	u.infof(messages.UpdaterCompilingFmt, u.cfg.Paths.KernelSource)
	err := u.run.Run(u.cfg.Paths.KernelSource, nil, "make",
		"--jobs", strconv.Itoa(u.cfg.Build.Jobs),
		"--load-average", strconv.FormatFloat(u.cfg.Build.LoadAverage, 'f', -1, 64))
	if err != nil {
		return fmt.Errorf(messages.BuildFailedFmt, ErrBuild, err)
	}
	return nil
}

func (u *Updater) installNew() error {
	u.infof(messages.UpdaterInstallingModules)
	if err := u.run.Run(u.cfg.Paths.KernelSource, nil, "make", "modules_install"); err != nil {
		return fmt.Errorf(messages.InstallModulesFailedFmt, ErrInstall, err)
	}

	u.infof(messages.UpdaterInstallingFmt, u.cfg.Paths.Install)
	env := []string{"INSTALL_PATH=" + u.cfg.Paths.Install}
	if err := u.run.Run(u.cfg.Paths.KernelSource, env, "make", "install"); err != nil {
		return fmt.Errorf(messages.InstallImageFailedFmt, ErrInstall, err)
	}
	return nil
}

// moduleRebuild rebuilds out-of-tree modules (nvidia-drivers and friends)
// against the freshly installed kernel.
func (u *Updater) moduleRebuild() error {
	u.infof(messages.UpdaterModuleRebuild)
	if err := u.run.Run(u.cfg.Paths.KernelSource, nil, "emerge", "@module-rebuild"); err != nil {
		return fmt.Errorf(messages.ModuleRebuildFailedFmt, ErrInstall, err)
	}
	return nil
}

func (u *Updater) regenGrubConfig() error {
	grubCfg := filepath.Join(u.cfg.Paths.Install, "grub", "grub.cfg")
	u.infof(messages.UpdaterRegenGrubFmt, grubCfg)
	if err := u.run.Run("", nil, "grub-mkconfig", "-o", grubCfg); err != nil {
		return fmt.Errorf(messages.GrubMkconfigFailedFmt, ErrInstall, err)
	}
	return nil
}

func (u *Updater) printInstalled(installed []Installed) {
	u.infof(messages.InstalledKernelsFmt, u.cfg.Paths.Install)
	for _, inst := range installed {
		u.infof(messages.InstalledKernelLineFmt, inst.Version)
	}
}

func (u *Updater) infof(format string, args ...any) {
	_, _ = fmt.Fprintln(u.out, color.CyanString(messages.Prefix)+" "+fmt.Sprintf(format, args...))
}

func (u *Updater) successf(format string, args ...any) {
	_, _ = fmt.Fprintln(u.out, color.GreenString(messages.Prefix)+" "+fmt.Sprintf(format, args...))
}

func (u *Updater) warnf(format string, args ...any) {
	_, _ = fmt.Fprintln(u.out, color.YellowString(messages.Prefix)+" "+fmt.Sprintf(format, args...))
}
