package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"surge/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <manifest.toml>",
	Short: "Load and print a session options manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cleanup, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		prev := color.NoColor
		defer func() { color.NoColor = prev }()
		color.NoColor = !wantColor()

		opts, err := config.Load(args[0])
		if err != nil {
			return err
		}

		key := color.New(color.FgBlue)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", key.Sprint("allocator:"), opts.Allocator)
		fmt.Fprintf(out, "%s %d\n", key.Sprint("heap_size:"), opts.HeapSize)
		fmt.Fprintf(out, "%s %d\n", key.Sprint("stack_size:"), opts.StackSize)
		fmt.Fprintf(out, "%s %d\n", key.Sprint("ffi_heap_size:"), opts.FFIHeapSize)
		fmt.Fprintf(out, "%s %t\n", key.Sprint("debugger_enabled:"), opts.DebuggerEnabled)
		fmt.Fprintf(out, "%s %t\n", key.Sprint("output_ast_graphs:"), opts.OutputASTGraphs)
		fmt.Fprintf(out, "%s %s\n", key.Sprint("dom_graph_file:"), opts.DomGraphFile)
		fmt.Fprintf(out, "%s %s\n", key.Sprint("compile_callback:"), opts.CompileCallback)
		fmt.Fprintf(out, "%s %t\n", key.Sprint("verbose:"), opts.Verbose)
		return nil
	},
}
