// Command basecore is a minimal front end over the semantic core: it
// loads session options from a manifest and reports them, and prints
// build identification. It deliberately does not parse source itself —
// tokenizing and parsing are a host collaborator's job (§1), so this
// shim only exercises the pieces owned by this module (config loading
// and the session's option surface).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var colorMode string

var rootCmd = &cobra.Command{
	Use:   "basecore",
	Short: "Tools around the surge semantic core",
}

func main() {
	rootCmd.Version = versionString()
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write heap profile to file")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write Go runtime trace to file")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// wantColor resolves --color against whether stdout is a terminal.
func wantColor() bool {
	switch colorMode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
