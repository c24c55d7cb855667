package interp

import (
	"fmt"
	"strings"

	"github.com/cairnforge/envrex/internal/command"
	"github.com/cairnforge/envrex/internal/sepmap"
)

// Csh renders a command log as C-shell (csh/tcsh) source.
type Csh struct {
	Policy Policy
	state  *execState
}

// NewCsh returns a Csh emitter with its per-execution state reset.
func NewCsh(p Policy) *Csh {
	return &Csh{Policy: p, state: newExecState()}
}

// Reset clears per-execution state so the emitter can be reused.
func (e *Csh) Reset() { e.state = newExecState() }

// Emit renders log as C-shell source.
func (e *Csh) Emit(log []command.Command) (string, error) {
	var b strings.Builder
	sepMap := sepmap.Merge(sepmap.Default(), e.Policy.SepMap)
	for _, c := range log {
		line, err := e.emitOne(c, sepMap)
		if err != nil {
			return "", err
		}
		b.WriteString(line)
	}
	return b.String(), nil
}

func (e *Csh) emitOne(c command.Command, sepMap map[string]string) (string, error) {
	val := flatten(c.Value(), c.Key(), "tcsh", sepMap)

	switch c.Kind() {
	case command.Setenv:
		e.state.mark(c.Key())
		return fmt.Sprintf("setenv %s %s\n", c.Key(), cshQuote(val)), nil

	case command.Unsetenv:
		return fmt.Sprintf("unsetenv %s\n", c.Key()), nil

	case command.Prependenv:
		return e.emitExtend(c.Key(), val, sepMap, true), nil

	case command.Appendenv:
		return e.emitExtend(c.Key(), val, sepMap, false), nil

	case command.Alias:
		return fmt.Sprintf("alias %s '%s';\n", c.Key(), strings.ReplaceAll(val, "'", `'"'"'`)), nil

	case command.Info:
		return fmt.Sprintf("echo %s\n", cshQuote(val)), nil

	case command.Error:
		return fmt.Sprintf("echo %s 1>&2\n", cshQuote(val)), nil

	case command.Comment:
		return commentLines(val, "#"), nil

	case command.Source:
		return fmt.Sprintf("source %s\n", cshQuote(val)), nil

	case command.Command_:
		return val + "\n", nil

	default:
		return "", unsupported("csh", c.Kind())
	}
}

func (e *Csh) emitExtend(key, val string, sepMap map[string]string, prepend bool) string {
	sep := sepmap.Resolve(key, "tcsh", sepMap)
	extended := fmt.Sprintf("%s%s$%s", val, sep, key)
	if !prepend {
		extended = fmt.Sprintf("$%s%s%s", key, sep, val)
	}

	if e.state.seen(key) {
		e.state.mark(key)
		return fmt.Sprintf("setenv %s %s\n", key, cshQuote(extended))
	}

	if e.Policy.RespectParentEnv {
		e.state.mark(key)
		return fmt.Sprintf(
			"if ( ! $?%s ) then\n    setenv %s %s\nelse\n    setenv %s %s\nendif\n",
			key, key, cshQuote(val), key, cshQuote(extended),
		)
	}

	e.state.mark(key)
	return fmt.Sprintf("setenv %s %s\n", key, cshQuote(val))
}

// cshQuote wraps v in double quotes. As in the POSIX emitter, `$` is left
// unescaped so env-template references survive for the shell to expand.
func cshQuote(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(v) + `"`
}
