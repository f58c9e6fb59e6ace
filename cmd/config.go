package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/themekit/themekit/color"
	"github.com/themekit/themekit/config"
	"github.com/themekit/themekit/constant"
	"github.com/themekit/themekit/filesystem"
	"github.com/themekit/themekit/icon"
	"github.com/themekit/themekit/style"
	"github.com/themekit/themekit/theme"
	"github.com/themekit/themekit/where"
)

func configFile() string {
	return filepath.Join(where.Config(), constant.Themekit+".toml")
}

// saveConfig writes the in-memory settings, creating themekit.toml on first use.
func saveConfig() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfigAs(configFile())
	}

	return err
}

// lookupField finds a registered setting or suggests the nearest one.
func lookupField(name string) (config.Field, error) {
	field, ok := config.Default[name]
	if ok {
		return field, nil
	}

	closest := theme.Closest(name, lo.Keys(config.Default))

	return config.Field{}, fmt.Errorf(
		"unknown setting %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)
}

// settingName takes the setting from the first argument or, failing that, the --key flag.
func settingName(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if name, _ := cmd.Flags().GetString("key"); name != "" {
		return name, nil
	}

	return "", errors.New("setting is required as an argument or --key flag")
}

// setSetting checks raw against the field's rule, then stores and saves it.
func setSetting(name, raw string) (any, error) {
	field, err := lookupField(name)
	if err != nil {
		return nil, err
	}

	value, err := field.Parse(raw)
	if err != nil {
		return nil, err
	}

	viper.Set(name, value)

	return value, saveConfig()
}

// resetSettings restores defaults. With no names every setting is restored
// and themekit.toml is removed.
func resetSettings(names ...string) error {
	if len(names) == 0 {
		for name, field := range config.Default {
			viper.Set(name, field.Value)
		}

		exists, err := filesystem.API().Exists(configFile())
		if err != nil || !exists {
			return err
		}

		return filesystem.API().Remove(configFile())
	}

	for _, name := range names {
		field, err := lookupField(name)
		if err != nil {
			return err
		}

		viper.Set(name, field.Value)
	}

	return saveConfig()
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	keys := lo.Keys(config.Default)
	sort.Strings(keys)

	return keys, cobra.ShellCompDirectiveNoFileComp
}

func done(cmd *cobra.Command, format string, args ...any) {
	cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "settings to describe")
	configInfoCmd.Flags().BoolP("json", "j", false, "print the settings as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "setting to print")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "setting to change")
	configSetCmd.Flags().StringP("value", "v", "", "new value")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().StringSliceP("key", "k", []string{}, "settings to restore")
	configResetCmd.Flags().BoolP("all", "a", false, "restore every setting and remove the config file")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change themekit settings",
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe settings with their current and default values",
	Run: func(cmd *cobra.Command, args []string) {
		names := lo.Must(cmd.Flags().GetStringSlice("key"))
		if len(names) == 0 {
			names = lo.Keys(config.Default)
		}

		fields := make([]config.Field, 0, len(names))
		for _, name := range names {
			field, err := lookupField(name)
			handleErr(err)
			fields = append(fields, field)
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i, field := range fields {
			if i > 0 {
				cmd.Print("\n\n")
			}
			cmd.Print(field.Pretty())
		}
		cmd.Println()
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the current value of a setting",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		name, err := settingName(cmd, args)
		handleErr(err)

		_, err = lookupField(name)
		handleErr(err)

		cmd.Println(viper.Get(name))
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting and save it to themekit.toml",
	Long: `Change a setting and save it to themekit.toml.

Values are checked before saving: document paths must end in .json, .yaml
or .yml, the themes directory must not be a file, icon variants and log
levels must be ones themekit knows.`,
	Args:              cobra.MaximumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		name, err := settingName(cmd, args)
		handleErr(err)

		raw, _ := cmd.Flags().GetString("value")
		if len(args) == 2 {
			raw = args[1]
		} else if !cmd.Flags().Changed("value") {
			handleErr(errors.New("value is required as an argument or --value flag"))
		}

		value, err := setSetting(name, raw)
		handleErr(err)

		done(cmd, "set %s to %s", style.Fg(color.Purple)(name), style.Fg(color.Yellow)(fmt.Sprint(value)))
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore settings to their defaults",
	Run: func(cmd *cobra.Command, args []string) {
		names := lo.Must(cmd.Flags().GetStringSlice("key"))
		handleErr(resetSettings(names...))

		if len(names) == 0 {
			done(cmd, "restored every setting")
			return
		}

		for _, name := range names {
			done(cmd, "restored %s to %s", style.Fg(color.Purple)(name), style.Fg(color.Yellow)(fmt.Sprint(config.Default[name].Value)))
		}
	},
}
