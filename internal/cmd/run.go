package cmd

import (
	"fmt"
	"os/exec"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cairnforge/envrex/internal/interp"
)

var runRespectParentEnv bool

var runCmd = &cobra.Command{
	Use:     "run SCRIPT -- CMD [ARGS...]",
	Short:   "Evaluate a DSL script, then exec CMD under the resulting environment",
	Args:    cobra.MinimumNArgs(2),
	GroupID: GroupCore,
	RunE:    runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runRespectParentEnv, "respect-parent-env", true, "consult the inherited environment for the first prepend/append of a variable")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	log, _, cfg, err := evalScript(args[0])
	if err != nil {
		return err
	}
	targetCmd, targetArgs := args[1], args[1:]

	policy := cfg.ToPolicy(nil)
	policy.RespectParentEnv = runRespectParentEnv

	live := interp.NewLive(policy)
	if err := live.Apply(log); err != nil {
		return fmt.Errorf("cmd: apply environment: %w", err)
	}

	absTarget, err := exec.LookPath(targetCmd)
	if err != nil {
		return fmt.Errorf("cmd: %s not found in PATH: %w", targetCmd, err)
	}

	envp := make([]string, 0, len(live.Env))
	for k, v := range live.Env {
		envp = append(envp, k+"="+v)
	}

	return syscall.Exec(absTarget, targetArgs, envp)
}
