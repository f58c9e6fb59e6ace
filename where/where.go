// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/themekit/themekit/constant"
	"github.com/themekit/themekit/filesystem"
	"github.com/themekit/themekit/key"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "THEMEKIT_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden with the THEMEKIT_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(".", ".config")
	}
	return ensureDir(filepath.Join(base, constant.Themekit))
}

// Logs resolves the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Output resolves the path the create command writes its document to.
func Output() string {
	return viper.GetString(key.CreateOutput)
}

// DefaultTheme resolves the document validated when no explicit paths are given.
func DefaultTheme() string {
	return viper.GetString(key.ValidateDefaultPath)
}

// ThemesDir resolves the directory holding one theme per subdirectory.
func ThemesDir() string {
	return viper.GetString(key.ValidateThemesDir)
}
