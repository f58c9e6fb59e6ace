package cmd

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/themekit/themekit/color"
	"github.com/themekit/themekit/constant"
	"github.com/themekit/themekit/style"
	"github.com/themekit/themekit/where"
)

// whereTarget is a resolvable path and the flag that prints only it.
type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c")},
	{"Config file", func() string {
		return filepath.Join(where.Config(), constant.Themekit+".toml")
	}, "config-file", mo.None[string]()},
	{"Logs", where.Logs, "logs", mo.Some("l")},
	{"Output", where.Output, "output", mo.Some("o")},
	{"Themes", where.ThemesDir, "themes", mo.Some("t")},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		if short, ok := n.argShort.Get(); ok {
			whereCmd.Flags().BoolP(n.argLong, short, false, n.name+" path")
		} else {
			whereCmd.Flags().Bool(n.argLong, false, n.name+" path")
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd displays the paths themekit reads from and writes to.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the paths themekit reads from and writes to",
	Run: func(cmd *cobra.Command, args []string) {
		headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render

		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				cmd.Println(n.where())
				return
			}
		}

		for i, n := range wherePaths {
			cmd.Printf("%s %s\n", headerStyle(n.name+"?"), style.Fg(color.Yellow)("--"+n.argLong))
			cmd.Println(n.where())

			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}
