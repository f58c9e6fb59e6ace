package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/themekit/themekit/constant"
	"github.com/themekit/themekit/theme"
	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned for files that hold no document at all.
var ErrEmptyDocument = errors.New("document is empty")

// Decode parses a document without interpreting it.
func Decode(data []byte, format theme.Format) (any, error) {
	var doc any

	switch format {
	case theme.YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		doc = normalize(doc)
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}

	if doc == nil {
		return nil, ErrEmptyDocument
	}

	return doc, nil
}

// normalize turns YAML mappings with non-string keys into the shape JSON decoding produces.
func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for k, child := range v {
			v[k] = normalize(child)
		}
		return v
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, child := range v {
			m[fmt.Sprint(k)] = normalize(child)
		}
		return m
	case []any:
		for i, child := range v {
			v[i] = normalize(child)
		}
		return v
	default:
		return v
	}
}

// ValidateFile reads, decodes and validates the document at path.
func ValidateFile(fs afero.Fs, path string) Result {
	fail := func(err error) Result {
		return Result{Path: path, Err: &ParseError{Path: path, Err: err}}
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fail(err)
	}

	doc, err := Decode(data, theme.FormatOf(path))
	if err != nil {
		return fail(err)
	}

	result := Validate(doc)
	result.Path = path
	return result
}

// ValidateFiles validates every path on its own; one bad file never stops the rest.
func ValidateFiles(fs afero.Fs, paths []string) []Result {
	return lo.Map(paths, func(path string, _ int) Result {
		return ValidateFile(fs, path)
	})
}

// Discover lists the documents validated when no paths are given:
// defaultPath if it exists, then every <themesDir>/<name>/theme.json.
func Discover(fs afero.Fs, defaultPath, themesDir string) ([]string, error) {
	var paths []string

	if isFile(fs, defaultPath) {
		paths = append(paths, defaultPath)
	}

	exists, err := afero.DirExists(fs, themesDir)
	if err != nil {
		return nil, err
	}

	if !exists {
		return paths, nil
	}

	entries, err := afero.ReadDir(fs, themesDir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		candidate := filepath.Join(themesDir, entry.Name(), constant.ThemeFile)
		if isFile(fs, candidate) {
			paths = append(paths, candidate)
		}
	}

	return paths, nil
}

func isFile(fs afero.Fs, path string) bool {
	if path == "" {
		return false
	}

	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}

// Summary counts the outcome of a batch.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// OK reports whether every document passed.
func (s Summary) OK() bool {
	return s.Failed == 0
}

// Summarize counts passed and failed results.
func Summarize(results []Result) Summary {
	passed := lo.CountBy(results, func(r Result) bool {
		return r.Valid
	})

	return Summary{
		Total:  len(results),
		Passed: passed,
		Failed: len(results) - passed,
	}
}
