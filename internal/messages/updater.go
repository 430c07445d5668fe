package messages

// Updater messages for the build, install, and eviction steps.
const (
	// Prefix starts every status line printed by the updater.
	Prefix = "kernelup:"

	UpdaterCheckingPermissions = "Checking permissions"
	UpdaterMustBeRoot          = "this tool must be run as root"

	UpdaterManualEdit       = "Manual editing enabled; assuming the kernel config was updated by hand"
	UpdaterRefreshingConfig = "Refreshing kernel config from the newest installed version"
	UpdaterCopyConfigFmt    = "Copying %s to %s"
	UpdaterRunningOldconfig = "Creating a new config using .config as a base"
	UpdaterNoInstalledCfg   = "No installed kernel config found, skipping config refresh"
	UpdaterConfigUnchanged  = "Kernel config is unchanged"
	UpdaterConfigDiffFmt    = "Kernel config changes:\n%s"

	UpdaterCompilingFmt      = "Compiling kernel in %s"
	UpdaterInstallingModules = "Installing modules"
	UpdaterInstallingFmt     = "Installing kernel image, system map, and config to %s"
	UpdaterModuleRebuild     = "Rebuilding out-of-tree modules"
	UpdaterRegenGrubFmt      = "Regenerating grub configuration at %s"
	UpdaterDone              = "Done"

	// Step error formats. Each wraps the step sentinel.
	BuildFailedFmt          = "%w: make exited with an error: %v"
	InstallModulesFailedFmt = "%w: modules_install exited with an error: %v"
	InstallImageFailedFmt   = "%w: make install exited with an error: %v"
	ModuleRebuildFailedFmt  = "%w: emerge @module-rebuild exited with an error: %v"
	GrubMkconfigFailedFmt   = "%w: grub-mkconfig exited with an error: %v"
	OldconfigFailedFmt      = "make oldconfig exited with an error: %v"

	// Scan messages for discovering installed kernels.
	ScanGlobFailedFmt       = "scan %s: %w"
	ScanBadImageNameFmt     = "cannot parse kernel version from %q"
	ScanMissingSystemMapFmt = "no System.map found for version %s in %s"
	ScanMissingConfigFmt    = "no config found for version %s in %s"

	// Eviction messages.
	EvictNothingFmt        = "Only %d kernel version(s) installed, not deleting any"
	EvictCountFmt          = "Deleting %d old kernel version(s)"
	EvictVersionFmt        = "Deleting version %s"
	EvictFileFmt           = "Deleting %s"
	EvictNotPresentFmt     = "%s not present, skipping"
	EvictTrashFallbackFmt  = "Could not move %s to trash (%v), deleting permanently"
	EvictWarnFmt           = "Eviction incomplete: %v; the new kernel is installed and unaffected"
	EvictFailedFmt         = "%w: remove %s: %v"
	InstalledKernelsFmt    = "Installed kernels in %s (newest first):"
	InstalledKernelLineFmt = "    %s"
)
