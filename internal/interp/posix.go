package interp

import (
	"fmt"
	"strings"

	"github.com/cairnforge/envrex/internal/command"
	"github.com/cairnforge/envrex/internal/sepmap"
)

// Posix renders a command log as POSIX sh/bash source. Reusable across
// executions after a Reset.
type Posix struct {
	Policy Policy
	state  *execState
}

// NewPosix returns a Posix emitter with its per-execution state reset.
func NewPosix(p Policy) *Posix {
	return &Posix{Policy: p, state: newExecState()}
}

// Reset clears per-execution state so the emitter can be reused.
func (e *Posix) Reset() { e.state = newExecState() }

// Emit renders log as a single POSIX shell script.
func (e *Posix) Emit(log []command.Command) (string, error) {
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

func (e *Posix) emitOne(c command.Command, sepMap map[string]string) (string, error) {
	val := flatten(c.Value(), c.Key(), "bash", sepMap)

	switch c.Kind() {
	case command.Setenv:
		e.state.mark(c.Key())
		return fmt.Sprintf("export %s=%s\n", c.Key(), posixQuote(val)), nil

	case command.Unsetenv:
		return fmt.Sprintf("unset %s\n", c.Key()), nil

	case command.Prependenv:
		return e.emitExtend(c.Key(), val, sepMap, true), nil

	case command.Appendenv:
		return e.emitExtend(c.Key(), val, sepMap, false), nil

	case command.Alias:
		return fmt.Sprintf("%s() {\n%s\n}\nexport -f %s\n", c.Key(), val, c.Key()), nil

	case command.Info:
		return fmt.Sprintf("echo %s\n", posixQuote(val)), nil

	case command.Error:
		return fmt.Sprintf("echo %s 1>&2\n", posixQuote(val)), nil

	case command.Comment:
		return commentLines(val, "#"), nil

	case command.Source:
		return fmt.Sprintf("source %s\n", posixQuote(val)), nil

	case command.Command_:
		return val + "\n", nil

	default:
		return "", unsupported("posix", c.Kind())
	}
}

// emitExtend implements the PREPENDENV/APPENDENV emission table from
// spec.md §4.7: once a variable has been touched earlier in this log, it
// always extends; otherwise it extends conditionally on the parent
// environment only if RespectParentEnv is set, and is a plain set
// otherwise.
func (e *Posix) emitExtend(key, val string, sepMap map[string]string, prepend bool) string {
	sep := sepmap.Resolve(key, "bash", sepMap)
	extended := fmt.Sprintf("%s%s$%s", val, sep, key)
	if !prepend {
		extended = fmt.Sprintf("$%s%s%s", key, sep, val)
	}

	if e.state.seen(key) {
		e.state.mark(key)
		return fmt.Sprintf("export %s=%s\n", key, posixQuote(extended))
	}

	if e.Policy.RespectParentEnv {
		e.state.mark(key)
		return fmt.Sprintf(
			"if [ \"${%s:+x}\" ]; then\n    export %s=%s\nelse\n    export %s=%s\nfi\n",
			key, key, posixQuote(extended), key, posixQuote(val),
		)
	}

	e.state.mark(key)
	return fmt.Sprintf("export %s=%s\n", key, posixQuote(val))
}

// posixQuote wraps v in double quotes, escaping the characters that are
// special inside POSIX double quotes. `$` is deliberately left unescaped:
// env-template references ($VAR / ${VAR}) must survive into the emitted
// source so the target shell performs the expansion itself (spec.md §4.3).
func posixQuote(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`")
	return `"` + r.Replace(v) + `"`
}

func commentLines(v, prefix string) string {
	lines := strings.Split(v, "\n")
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(prefix)
		if l != "" {
			b.WriteString(" ")
			b.WriteString(l)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// flatten joins a sequence value with the resolved separator for key under
// the given shell family, or returns the scalar string unchanged. Spec.md
// §8: "a sequence value is treated identically to sep.join(v)".
func flatten(v command.Value, key, family string, sepMap map[string]string) string {
	if v.IsSeq {
		return sepmap.Join(v.Seq, key, family, sepMap)
	}
	return v.Str
}
