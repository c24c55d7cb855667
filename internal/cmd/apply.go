package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cairnforge/envrex/internal/interp"
)

var applyRespectParentEnv bool

var applyCmd = &cobra.Command{
	Use:     "apply SCRIPT",
	Short:   "Evaluate a DSL script and print the resulting environment",
	Args:    cobra.ExactArgs(1),
	GroupID: GroupCore,
	RunE:    runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyRespectParentEnv, "respect-parent-env", true, "consult the inherited environment for the first prepend/append of a variable")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	log, _, cfg, err := evalScript(args[0])
	if err != nil {
		return err
	}

	policy := cfg.ToPolicy(nil)
	policy.RespectParentEnv = applyRespectParentEnv

	live := interp.NewLive(policy)
	if err := live.Apply(log); err != nil {
		return fmt.Errorf("cmd: apply environment: %w", err)
	}

	keys := make([]string, 0, len(live.Env))
	for k := range live.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := cmd.OutOrStdout()
	for _, k := range keys {
		fmt.Fprintf(w, "%s=%s\n", k, live.Env[k])
	}
	return nil
}
