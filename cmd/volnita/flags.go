// Package main provides CLI flag definitions for volnita.
package main

import (
	"fmt"
	"strings"

	urfavecli "github.com/urfave/cli/v2"

	"github.com/volnita/volnita/internal/theme"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via App.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   fmt.Sprintf("Override the UI theme (%s)", strings.Join(theme.AvailableThemes(), ", ")),
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
	}
}
