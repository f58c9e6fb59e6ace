package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"github.com/themekit/themekit/schema"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd prints the JSON Schema of generated theme documents.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of generated theme documents",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema.JSONSchema()))
	},
}
