// Package main provides the CLI entry point for luaubench.
//
// Usage:
//
//	luaubench parse input.luau
//	luaubench bench sample1.luau sample2.luau
//	luaubench dump input.luau
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var verbose bool

	cmdRoot := &cobra.Command{
		Use:   "luaubench",
		Short: "luaubench is a benchmark runner for the Luau syntax parser",
		Long: `luaubench is an external collaborator of the syntax package: it reads
source files, invokes Parse, measures wall-clock time, and prints a result
table. It is not part of the core parser contract.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
			return nil
		},
	}
	cmdRoot.PersistentFlags().BoolVar(&verbose, "verbose", false, "log debug-level progress")

	cmdRoot.AddCommand(cmdParse())
	cmdRoot.AddCommand(cmdBench())
	cmdRoot.AddCommand(cmdDump())

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func fail(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
