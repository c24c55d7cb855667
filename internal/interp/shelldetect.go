package interp

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cairnforge/envrex/internal/command"
)

// Target names a shell family an interpreter renders for.
type Target string

const (
	TargetPosix  Target = "posix"
	TargetCsh    Target = "csh"
	TargetWinCmd Target = "wincmd"
)

// DetectShell identifies the caller's shell from its environment,
// returning the Target an interpreter should be built for. On Windows
// it trusts ComSpec unconditionally (cmd.exe, the only target this
// package renders for Windows). Elsewhere it inspects $SHELL, falling
// back to ErrShellDetectionFailed when neither variable is set or the
// shell named is not one of the families this package knows how to
// render.
func DetectShell() (Target, error) {
	if runtime.GOOS == "windows" {
		if os.Getenv("ComSpec") != "" {
			return TargetWinCmd, nil
		}
		return "", ErrShellDetectionFailed
	}

	shell := os.Getenv("SHELL")
	if shell == "" {
		return "", ErrShellDetectionFailed
	}

	switch base := filepath.Base(shell); {
	case strings.HasPrefix(base, "csh"), strings.HasPrefix(base, "tcsh"):
		return TargetCsh, nil
	case strings.HasPrefix(base, "sh"), strings.HasPrefix(base, "bash"), strings.HasPrefix(base, "zsh"), strings.HasPrefix(base, "dash"), strings.HasPrefix(base, "ksh"):
		return TargetPosix, nil
	default:
		return "", ErrShellDetectionFailed
	}
}

// Emitter renders a command log as shell source for one target family.
type Emitter interface {
	Emit(log []command.Command) (string, error)
	Reset()
}

// New builds the Emitter for target, wired with the given policy.
func New(target Target, p Policy) (Emitter, error) {
	switch target {
	case TargetPosix:
		return NewPosix(p), nil
	case TargetCsh:
		return NewCsh(p), nil
	case TargetWinCmd:
		return NewWinCmd(p), nil
	default:
		return nil, ErrShellDetectionFailed
	}
}
