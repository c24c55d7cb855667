package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cairnforge/envrex/internal/interp"
)

var detectShellCmd = &cobra.Command{
	Use:     "detect-shell",
	Short:   "Print the autodetected shell target",
	Args:    cobra.NoArgs,
	GroupID: GroupDiag,
	RunE:    runDetectShell,
}

func init() {
	rootCmd.AddCommand(detectShellCmd)
}

func runDetectShell(cmd *cobra.Command, args []string) error {
	target, err := interp.DetectShell()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), target)
	return nil
}
