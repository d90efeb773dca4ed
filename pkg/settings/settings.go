// Package settings provides build metadata, runtime configuration, and
// context helpers used across the zksim CLI.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "zksim"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single execution of the shell.
type Run struct {
	// MinLogLevel is the zap level the logger is built with; -1 enables debug.
	MinLogLevel int8
	// IsQuiet suppresses the banner and the prompt.
	IsQuiet bool
	NoColor bool
	// Interactive is set when both stdin and stdout are terminals.
	Interactive bool
	// Commands, when set, are executed in order instead of reading input.
	Commands []string
}

// NewCliParams returns the defaults for an interactive CLI session.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		IsQuiet:     false,
		NoColor:     false,
	}
}
