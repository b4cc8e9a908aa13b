package buildinfo

var (
	// Version will be set via ldflags during build.
	Version = "dev"
	// Commit will be set via ldflags during build.
	Commit = "none"
	// Date will be set via ldflags during build.
	Date = "unknown"
)

// Banner is the version string shown by --version.
func Banner() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
