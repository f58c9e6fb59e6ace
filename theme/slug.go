package theme

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonSlugChar   = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify derives the machine name of a theme from its display name:
// lowercased, whitespace runs collapsed to a hyphen, everything outside
// [a-z0-9-] dropped.
func Slugify(displayName string) string {
	s := strings.ToLower(displayName)
	s = whitespaceRun.ReplaceAllString(s, "-")
	return nonSlugChar.ReplaceAllString(s, "")
}
