// Package cmd implements the envrex command tree: one file per
// subcommand, each registering itself onto rootCmd from init(), in the
// style of gastown's internal/cmd package.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	GroupCore    = "core"
	GroupInspect = "inspect"
	GroupDiag    = "diag"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "envrex",
	Short: "Record environment-mutating DSL scripts and render them for any shell",
	Long: `envrex evaluates a small environment-mutation DSL, recording every
SETENV/UNSETENV/PREPENDENV/APPENDENV/ALIAS as it runs, then renders the
resulting log as POSIX sh, csh, or Windows cmd source, applies it to a
live process environment, or launches a child process under it.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core:"},
		&cobra.Group{ID: GroupInspect, Title: "Inspection:"},
		&cobra.Group{ID: GroupDiag, Title: "Diagnostics:"},
	)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "envrex.toml", "path to config file")
}

// Execute runs the root command, exiting non-zero on error. It is the
// sole entry point cmd/envrex/main.go calls.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
