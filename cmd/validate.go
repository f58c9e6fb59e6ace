package cmd

import (
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/themekit/themekit/filesystem"
	"github.com/themekit/themekit/log"
	"github.com/themekit/themekit/report"
	"github.com/themekit/themekit/schema"
	"github.com/themekit/themekit/where"
)

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolP("json", "j", false, "Format the results as JSON")
	validateCmd.SetOut(os.Stdout)
}

// validateCmd checks theme documents against the v2 contract.
var validateCmd = &cobra.Command{
	Use:   "validate [paths...]",
	Short: "Validate theme documents against the strict v2 format",
	Long: `Validate theme documents against the strict v2 format and report every violation.
Without arguments the default theme file and every <themes dir>/<name>/theme.json are validated.
Exits with status 1 unless every document is valid.`,
	Run: func(cmd *cobra.Command, args []string) {
		paths := args
		if len(paths) == 0 {
			var err error
			paths, err = schema.Discover(filesystem.API(), where.DefaultTheme(), where.ThemesDir())
			handleErr(err)
			log.Debugf("discovered %d theme documents", len(paths))
		}

		if len(paths) == 0 {
			report.New(cmd.OutOrStdout()).Usage(where.DefaultTheme(), where.ThemesDir())
			os.Exit(1)
		}

		ok, err := validateAll(paths, lo.Must(cmd.Flags().GetBool("json")), cmd.OutOrStdout())
		handleErr(err)

		if !ok {
			os.Exit(1)
		}
	},
}

// validateAll reports on every path and tells whether all of them passed.
func validateAll(paths []string, asJSON bool, out io.Writer) (bool, error) {
	results := schema.ValidateFiles(filesystem.API(), paths)

	for _, r := range results {
		switch {
		case r.Valid:
			log.Infof("%s is valid", r.Path)
		case r.Err != nil:
			log.Warnf("%s: %s", r.Path, r.Err)
		default:
			log.Warnf("%s has %d violations", r.Path, len(r.Violations))
		}
	}

	summary := schema.Summarize(results)
	printer := report.New(out)

	if asJSON {
		return summary.OK(), printer.JSON(results)
	}

	printer.Header()
	for _, r := range results {
		printer.Result(r)
	}
	printer.Summary(summary)

	return summary.OK(), nil
}
