package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "kernelup"
	// RootShort is the short description for the root command.
	RootShort = "Build and install a new kernel, then retire old versions"
	RootLong  = "kernelup compiles the kernel in the configured source tree, installs the " +
		"boot artifacts into the boot directory, and deletes the oldest installed " +
		"versions beyond the retention count."

	RootFlagManualEdit = "Assume the kernel config in the source tree was updated by hand; skip the automatic refresh"
	RootFlagConfig     = "Path to the kernelup config file (bypasses discovery)"
	RootFlagYes        = "Skip confirmation prompts"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// ListUse is the list command name.
	ListUse   = "list"
	ListShort = "List installed kernel versions and exit"

	// CleanUse is the clean command name.
	CleanUse   = "clean"
	CleanShort = "Delete kernel versions beyond the retention count and exit"

	CleanConfirmPromptFmt = "Delete %d old kernel version(s) from %s?"
	CleanAborted          = "Not deleting anything"

	// ErrorLineFmt formats fatal errors written to stderr.
	ErrorLineFmt = "kernelup: error: %v"
)
