package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cairnforge/envrex/internal/interp"
)

var (
	renderShell            string
	renderRespectParentEnv bool
	renderPersist          bool
	renderSepFlags         []string
)

var renderCmd = &cobra.Command{
	Use:     "render SCRIPT",
	Short:   "Evaluate a DSL script and print shell source for it",
	Args:    cobra.ExactArgs(1),
	GroupID: GroupCore,
	RunE:    runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderShell, "shell", "", "target shell: sh, bash, tcsh, csh, or cmd (default: autodetect)")
	renderCmd.Flags().BoolVar(&renderRespectParentEnv, "respect-parent-env", false, "consult the inherited environment for the first prepend/append of a variable")
	renderCmd.Flags().BoolVar(&renderPersist, "persist", false, "also emit Windows volatile-registry writes (cmd target only)")
	renderCmd.Flags().StringArrayVar(&renderSepFlags, "sep", nil, "override the join separator for a variable, KEY=SEP")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	log, _, cfg, err := evalScript(args[0])
	if err != nil {
		return err
	}

	overrides, err := parseSepFlags(renderSepFlags)
	if err != nil {
		return err
	}
	policy := cfg.ToPolicy(overrides)
	policy.RespectParentEnv = policy.RespectParentEnv || renderRespectParentEnv
	policy.Persist = policy.Persist || renderPersist

	target, err := resolveTarget(renderShell, cfg)
	if err != nil {
		return err
	}

	emitter, err := interp.New(target, policy)
	if err != nil {
		return err
	}
	out, err := emitter.Emit(log)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// resolveTarget picks the render target in order: explicit --shell flag,
// config's [shell] default, then autodetection.
func resolveTarget(flag string, cfg interface{ DefaultShell() string }) (interp.Target, error) {
	name := flag
	if name == "" {
		name = cfg.DefaultShell()
	}
	switch name {
	case "sh", "bash":
		return interp.TargetPosix, nil
	case "tcsh", "csh":
		return interp.TargetCsh, nil
	case "cmd":
		return interp.TargetWinCmd, nil
	case "":
		return interp.DetectShell()
	default:
		return "", fmt.Errorf("cmd: unknown --shell %q", name)
	}
}
