// Package schema checks theme documents against the strict v2 contract.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/themekit/themekit/constant"
	"github.com/themekit/themekit/version"
)

// Violation keywords.
const (
	KeywordRequired   = "required"
	KeywordAdditional = "additionalProperties"
	KeywordType       = "type"
	KeywordPattern    = "pattern"
	KeywordEnum       = "enum"
)

// Violation is one broken rule.
type Violation struct {
	// Path is a JSON pointer to the offending value, "/" for the root
	Path    string `json:"path"`
	Message string `json:"message"`
	Keyword string `json:"keyword"`
	// Field names the missing or unexpected property, if any
	Field string `json:"field,omitempty"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Info identifies a valid document.
type Info struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Version     string `json:"version"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
}

// Feature flags reported for valid documents.
const (
	FeatureEffects    = "effects"
	FeatureTypography = "custom typography"
	FeatureShadows    = "custom shadows"
)

// MigrationTip is attached to failures of documents without variants.
const MigrationTip = `Your theme needs to be updated to v2.0 format. Use "themekit create" to generate a new v2.0 theme, or manually add "variants" with light and dark modes.`

// Result is the outcome of validating one document.
type Result struct {
	Path       string      `json:"path,omitempty"`
	Valid      bool        `json:"valid"`
	Info       *Info       `json:"info,omitempty"`
	Features   []string    `json:"features,omitempty"`
	Notes      []string    `json:"notes,omitempty"`
	Violations []Violation `json:"violations,omitempty"`
	Tip        string      `json:"tip,omitempty"`

	// Err is a *ParseError or a *VersionError
	Err error `json:"-"`
}

// MarshalJSON adds the error, if any, with its kind.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result

	out := struct {
		plain
		Error string `json:"error,omitempty"`
		Kind  string `json:"errorKind,omitempty"`
	}{plain: plain(r)}

	if r.Err != nil {
		out.Error = r.Err.Error()

		var versionErr *VersionError
		switch {
		case errors.As(r.Err, &versionErr):
			out.Kind = "version"
		default:
			out.Kind = "parse"
		}
	}

	return json.Marshal(out)
}

// Validate checks a decoded document, typically a map[string]any from JSON or YAML.
// It never modifies doc.
func Validate(doc any) Result {
	obj, _ := doc.(map[string]any)

	declared, ok := obj["version"].(string)
	if !ok || !version.Supported(declared) {
		found := "not specified"
		if v, present := obj["version"]; present && v != nil {
			found = fmt.Sprint(v)
		}

		return Result{Err: &VersionError{Found: found}}
	}

	if violations := check(doc); len(violations) > 0 {
		result := Result{Violations: violations}
		if _, ok := obj["variants"]; !ok {
			result.Tip = MigrationTip
		}

		return result
	}

	result := Result{
		Valid:    true,
		Info:     infoOf(obj),
		Features: featuresOf(obj),
	}

	if version.Newer(declared) {
		result.Notes = append(result.Notes, fmt.Sprintf(
			"document version %s is newer than %s, fields added since are not checked",
			declared,
			constant.DocumentVersion,
		))
	}

	return result
}

func infoOf(obj map[string]any) *Info {
	text := func(key string) string {
		s, _ := obj[key].(string)
		return s
	}

	info := &Info{
		Name:        text("name"),
		DisplayName: text("displayName"),
		Version:     text("version"),
		Author:      text("author"),
		Description: text("description"),
	}

	if info.DisplayName == "" {
		info.DisplayName = info.Name
	}

	return info
}

// lookup walks nested objects and reports whether a non-null value sits at the end.
func lookup(obj map[string]any, keys ...string) bool {
	var current any = obj
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return false
		}

		current = m[key]
	}

	return current != nil
}

func featuresOf(obj map[string]any) []string {
	features := []lo.Tuple2[string, bool]{
		{A: FeatureEffects, B: lookup(obj, "variants", "light", "effects") || lookup(obj, "variants", "dark", "effects")},
		{A: FeatureTypography, B: lookup(obj, "variants", "light", "typography", "fontFamily")},
		{A: FeatureShadows, B: lookup(obj, "variants", "light", "shadows")},
	}

	return lo.FilterMap(features, func(f lo.Tuple2[string, bool], _ int) (string, bool) {
		return f.A, f.B
	})
}
