package messages

// Config messages for loading and validating kernelup.toml.
const (
	// ConfigMissingFileFmt formats a read failure for a config file path.
	ConfigMissingFileFmt = "failed to read config file %s: %w"
	// ConfigInvalidConfigFmt formats TOML syntax errors.
	ConfigInvalidConfigFmt = "invalid TOML in %s: %w"
	// ConfigUnrecognizedKeysFmt formats strict-decode failures for unknown keys.
	ConfigUnrecognizedKeysFmt = "unrecognized config keys in %s: %v."
	// ConfigValidationGuidance directs users to the sample config.
	ConfigValidationGuidance = "See kernelup.toml.example for the supported keys."

	ConfigNoFileFoundFmt  = "no config file found; searched %s"
	ConfigResolveHomeFmt  = "resolve home directory: %w"
	ConfigUsingFileFmt    = "Using config file %s"
	ConfigFieldEmptyFmt   = "%s: paths.%s must not be empty"
	ConfigJobsInvalidFmt  = "%s: build.jobs must be at least 1, got %d"
	ConfigLoadInvalidFmt  = "%s: build.load-average must be greater than 0, got %g"
	ConfigKeepInvalidFmt  = "%s: retention.versions-to-keep must be at least 1, got %d"
)
