package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"surge/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show basecore build identification",
	RunE: func(cmd *cobra.Command, args []string) error {
		prev := color.NoColor
		defer func() { color.NoColor = prev }()
		color.NoColor = !wantColor()

		label := color.New(color.FgCyan, color.Bold).Sprint("basecore")
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", label, versionString())
		return nil
	},
}

func versionString() string {
	return version.String()
}
