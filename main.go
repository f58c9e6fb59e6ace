// Package main is the entry point for the themekit application.
package main

import (
	"github.com/samber/lo"
	"github.com/themekit/themekit/cmd"
	"github.com/themekit/themekit/config"
	"github.com/themekit/themekit/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
