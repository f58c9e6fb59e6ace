package schema

import (
	"fmt"

	"github.com/themekit/themekit/constant"
)

// ParseError means the candidate could not be read or is not a well-formed document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse theme: %v", e.Err)
	}

	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// VersionError means the document predates the v2 format. No structural checks were made.
type VersionError struct {
	// Found is the declared version, or "not specified"
	Found string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("theme must be version %s or higher, found %s", constant.DocumentVersion, e.Found)
}

// Hint tells the user how to get past the version gate.
func (e *VersionError) Hint() string {
	return "Please update your theme to v2.0 format with light/dark variants"
}
