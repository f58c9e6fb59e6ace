package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/themekit/themekit/report"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	presetsCmd.SetOut(os.Stdout)
}

// presetsCmd lists the choices offered by the create command.
var presetsCmd = &cobra.Command{
	Use:     "presets",
	Short:   "List color presets, styles and loading animations",
	Aliases: []string{"styles"},
	Run: func(cmd *cobra.Command, args []string) {
		printer := report.New(cmd.OutOrStdout())

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printer.PresetsJSON())
			return
		}

		printer.Presets()
	},
}
