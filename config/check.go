package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/themekit/themekit/filesystem"
	"github.com/themekit/themekit/icon"
	"github.com/themekit/themekit/key"
	"github.com/themekit/themekit/theme"
)

// checks holds the field rules that go beyond the value type.
var checks = map[string]func(string) error{
	key.CreateOutput:        documentPath,
	key.ValidateDefaultPath: documentPath,
	key.ValidateThemesDir:   directoryPath,
	key.IconsVariant: func(v string) error {
		return oneOf(v, icon.AvailableVariants())
	},
	key.LogsLevel: func(v string) error {
		_, err := logrus.ParseLevel(v)
		return err
	},
}

// Parse converts raw into the field's type and checks it against the
// field's rule. The returned value is ready for viper.Set.
func (f *Field) Parse(raw string) (any, error) {
	var value any

	switch f.Value.(type) {
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", f.Key, raw)
		}
		value = b
	default:
		value = raw
	}

	if check, ok := checks[f.Key]; ok {
		if err := check(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Key, err)
		}
	}

	return value, nil
}

// documentPath accepts a path create and validate can read and write.
func documentPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is empty")
	}

	ext := strings.ToLower(filepath.Ext(path))
	if theme.FormatOf(path) == theme.JSON && ext != ".json" {
		return fmt.Errorf("%q must end in .json, .yaml or .yml", path)
	}

	return nil
}

// directoryPath accepts a path that is a directory or does not exist yet.
func directoryPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is empty")
	}

	info, err := filesystem.API().Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is a file, expected a directory", path)
	}

	return nil
}

func oneOf(v string, options []string) error {
	if lo.Contains(options, v) {
		return nil
	}

	return fmt.Errorf(
		"unknown value %q, did you mean %q? Available options are: %s",
		v,
		theme.Closest(v, options),
		strings.Join(options, ", "),
	)
}
