// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Theme Generation - these keys configure where and how the create command emits documents.
const (
	CreateOutput = "create.output"
	CreateAuthor = "create.author"
)

// Theme Validation - these keys define which documents the validate command discovers on its own.
const (
	ValidateDefaultPath = "validate.default_path"
	ValidateThemesDir   = "validate.themes_dir"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output.
const (
	CliColored = "cli.colored"
)
