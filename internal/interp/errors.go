package interp

import (
	"errors"
	"fmt"

	"github.com/cairnforge/envrex/internal/command"
)

// ErrUnsupportedCommand is returned when an interpreter is asked to emit
// or apply a Command kind it does not implement, per spec.md §7.
var ErrUnsupportedCommand = errors.New("interp: unsupported command")

// ErrShellDetectionFailed is returned by DetectShell when the parent
// process's shell could not be identified, per spec.md §7.
var ErrShellDetectionFailed = errors.New("interp: could not autodetect shell")

func unsupported(target string, k command.Kind) error {
	return fmt.Errorf("%w: %s does not support %s", ErrUnsupportedCommand, target, k)
}
