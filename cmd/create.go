package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/themekit/themekit/filesystem"
	"github.com/themekit/themekit/key"
	"github.com/themekit/themekit/log"
	"github.com/themekit/themekit/prompt"
	"github.com/themekit/themekit/report"
	"github.com/themekit/themekit/theme"
	"github.com/themekit/themekit/where"
)

var seedFlags = []string{"primary", "secondary", "tertiary", "accent"}

func init() {
	rootCmd.AddCommand(createCmd)
	addCreateFlags(createCmd)

	complete := func(names func() []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return names(), cobra.ShellCompDirectiveNoFileComp
		}
	}

	lo.Must0(createCmd.RegisterFlagCompletionFunc("preset", complete(theme.PresetNames)))
	lo.Must0(createCmd.RegisterFlagCompletionFunc("style", complete(theme.StyleNames)))
	lo.Must0(createCmd.RegisterFlagCompletionFunc("animation", complete(func() []string {
		return theme.LoadingAnimations
	})))

	lo.Must0(viper.BindPFlag(key.CreateOutput, createCmd.Flags().Lookup("output")))
}

// addCreateFlags declares one flag per question of the create command.
func addCreateFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("name", "n", "", "Theme display name")
	flags.StringP("description", "d", "", "Brief description of the theme")
	flags.StringP("author", "a", "", "Theme author")
	flags.StringP("preset", "p", "", "Color preset, matched fuzzily (e.g. ocean, purp), or custom")

	for _, name := range seedFlags {
		flags.String(name, "", fmt.Sprintf("Custom %s seed color as #RRGGBB", name))
	}

	flags.StringP("style", "s", "", "Visual style")
	flags.String("animation", "", "Loading animation")
	flags.StringP("output", "o", "", "Path to write the theme to, .yaml or .yml for YAML")
}

// createCmd collects seed inputs and writes a two-variant theme document.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a new theme document interactively or from flags",
	Long: `Generate a new v2 theme document with light and dark variants.
Every prompt can be answered up front with a flag; flags that are not given are asked for.`,
	Example: `  themekit create
  themekit create --name "Deep Sea" --preset ocean --style glass --animation wave
  themekit create -n Neon -s neon --primary "#00d4ff" -o themes/neon/theme.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		answers, err := answersFromFlags(cmd)
		handleErr(err)

		handleErr(generate(prompt.Default(), answers, where.Output(), cmd.OutOrStdout()))
	},
}

func stringFlag(cmd *cobra.Command, name string) mo.Option[string] {
	if !cmd.Flags().Changed(name) {
		return mo.None[string]()
	}

	return mo.Some(lo.Must(cmd.Flags().GetString(name)))
}

// answersFromFlags resolves every given flag; invalid values are errors, never prompts.
func answersFromFlags(cmd *cobra.Command) (prompt.Answers, error) {
	answers := prompt.Answers{
		DisplayName:   stringFlag(cmd, "name"),
		Description:   stringFlag(cmd, "description"),
		Author:        stringFlag(cmd, "author"),
		Primary:       stringFlag(cmd, "primary"),
		Secondary:     stringFlag(cmd, "secondary"),
		Tertiary:      stringFlag(cmd, "tertiary"),
		Accent:        stringFlag(cmd, "accent"),
		DefaultAuthor: viper.GetString(key.CreateAuthor),
	}

	if name, ok := stringFlag(cmd, "preset").Get(); ok {
		switch {
		case theme.IsCustom(name):
			answers.Custom = true
		case lo.SomeBy(seedFlags, cmd.Flags().Changed):
			return answers, fmt.Errorf("seed colors can only be combined with --preset %s", strings.ToLower(theme.Custom))
		default:
			preset, err := theme.FindPreset(name)
			if err != nil {
				return answers, err
			}
			answers.Preset = mo.Some(preset)
		}
	}

	if name, ok := stringFlag(cmd, "style").Get(); ok {
		s, err := theme.ParseStyle(name)
		if err != nil {
			return answers, err
		}
		answers.Style = mo.Some(s)
	}

	if name, ok := stringFlag(cmd, "animation").Get(); ok {
		animation, err := theme.ParseLoadingAnimation(name)
		if err != nil {
			return answers, err
		}
		answers.Animation = mo.Some(animation)
	}

	return answers, nil
}

// generate collects the request, assembles the document and writes it as the last step.
func generate(p prompt.Prompter, answers prompt.Answers, output string, out io.Writer) error {
	sel, err := prompt.Collect(p, answers)
	if err != nil {
		return err
	}

	if err := sel.Request.Seeds.Validate(); err != nil {
		return err
	}

	doc := theme.Assemble(sel.Request)

	data, err := doc.Encode(theme.FormatOf(output))
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"name":   doc.Name,
		"style":  sel.Request.Style.String(),
		"preset": sel.Preset,
		"format": theme.FormatOf(output).String(),
	}).Infof("writing theme to %s", output)
	if err := filesystem.WriteAtomic(output, data); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}

	shown := output
	if abs, err := filepath.Abs(output); err == nil {
		shown = abs
	}

	report.New(out).Created(sel.Request, sel.Preset, shown)
	return nil
}
