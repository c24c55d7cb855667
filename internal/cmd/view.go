package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cairnforge/envrex/internal/view"
)

var viewCmd = &cobra.Command{
	Use:     "view SCRIPT",
	Short:   "Evaluate a DSL script and browse the recorded command log",
	Args:    cobra.ExactArgs(1),
	GroupID: GroupInspect,
	RunE:    runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	log, sess, _, err := evalScript(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if view.IsInteractive(out) {
		return view.Run(log, sess)
	}
	return view.RenderPlain(out, log, sess)
}
