// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Themekit is the canonical application identifier used for filesystem paths and CLI branding.
	Themekit = "themekit"

	// Version is the current application semantic version string.
	Version = "0.3.0"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Theme document conventions shared by the generator and the validator.
const (
	// DocumentVersion is the version stamped on every generated theme document.
	DocumentVersion = "2.0.0"

	// DocumentMajor is the version prefix the validator accepts.
	DocumentMajor = "2."

	// ThemeFile is the conventional file name of a theme document.
	ThemeFile = "theme.json"

	// ThemesDir is the conventional directory holding one theme per subdirectory.
	ThemesDir = "themes"
)
