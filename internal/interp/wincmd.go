package interp

import (
	"fmt"
	"strings"

	"github.com/cairnforge/envrex/internal/command"
	"github.com/cairnforge/envrex/internal/sepmap"
)

// WinCmd renders a command log as Windows cmd.exe source. Path-valued
// arguments have '/' translated to '\' (spec.md §6). When Policy.Persist
// is set, SETENV/PREPENDENV/APPENDENV additionally emit a volatile-registry
// write line; for PATH-like variables (and variables with a separator
// override) that line is deduped against ExistingPersistedEnv (the union
// of system+user values the caller read from the registry). The
// process-local `set` line is never deduped. The conditional `if defined`
// form emitted for a first PREPENDENV/APPENDENV under RespectParentEnv
// carries no volatile-registry write line.
type WinCmd struct {
	Policy Policy
	state  *execState

	// ExistingPersistedEnv is the union of HKLM (system) and HKCU (user)
	// environment values, keyed by variable name, used only to dedupe the
	// volatile-registry write when Policy.Persist is set.
	ExistingPersistedEnv map[string]string
}

// NewWinCmd returns a WinCmd emitter with its per-execution state reset.
func NewWinCmd(p Policy) *WinCmd {
	return &WinCmd{Policy: p, state: newExecState()}
}

// Reset clears per-execution state so the emitter can be reused.
func (e *WinCmd) Reset() { e.state = newExecState() }

// Emit renders log as Windows cmd.exe source.
func (e *WinCmd) Emit(log []command.Command) (string, error) {
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

func (e *WinCmd) emitOne(c command.Command, sepMap map[string]string) (string, error) {
	val := toBackslashes(flatten(c.Value(), c.Key(), "cmd", sepMap))

	switch c.Kind() {
	case command.Setenv:
		e.state.mark(c.Key())
		return e.withPersist(c.Key(), val, fmt.Sprintf("set %s=%s\n", c.Key(), val)), nil

	case command.Unsetenv:
		return fmt.Sprintf("set %s=\n", c.Key()), nil

	case command.Prependenv:
		return e.emitExtend(c.Key(), val, sepMap, true), nil

	case command.Appendenv:
		return e.emitExtend(c.Key(), val, sepMap, false), nil

	case command.Alias:
		return fmt.Sprintf("doskey %s=%s\n", c.Key(), val), nil

	case command.Info:
		return fmt.Sprintf("echo %s\n", flatten(c.Value(), c.Key(), "cmd", sepMap)), nil

	case command.Error:
		return fmt.Sprintf("echo %s 1>&2\n", flatten(c.Value(), c.Key(), "cmd", sepMap)), nil

	case command.Comment:
		return commentLines(flatten(c.Value(), c.Key(), "cmd", sepMap), "rem"), nil

	case command.Source:
		return fmt.Sprintf("call %q\n", val), nil

	case command.Command_:
		return flatten(c.Value(), c.Key(), "cmd", sepMap) + "\n", nil

	default:
		return "", unsupported("wincmd", c.Kind())
	}
}

func (e *WinCmd) emitExtend(key, val string, sepMap map[string]string, prepend bool) string {
	sep := sepmap.Resolve(key, "cmd", sepMap)
	extended := fmt.Sprintf("%s%s%%%s%%", val, sep, key)
	if !prepend {
		extended = fmt.Sprintf("%%%s%%%s%s", key, sep, val)
	}

	if e.state.seen(key) {
		e.state.mark(key)
		return e.withPersist(key, extended, fmt.Sprintf("set %s=%s\n", key, extended))
	}

	if e.Policy.RespectParentEnv {
		e.state.mark(key)
		return fmt.Sprintf(
			"if defined %s (set %s=%s) else (set %s=%s)\n",
			key, key, extended, key, val,
		)
	}

	e.state.mark(key)
	return e.withPersist(key, val, fmt.Sprintf("set %s=%s\n", key, val))
}

// withPersist appends the volatile-registry write line for key when
// Policy.Persist is set, deduping PATH-like sequence entries against
// ExistingPersistedEnv per spec.md §6 scenario 6. setLine is the
// process-local `set` line, always emitted in full.
func (e *WinCmd) withPersist(key, val, setLine string) string {
	if !e.Policy.Persist {
		return setLine
	}
	persistVal := val
	if sep := e.Policy.SepMap[key]; sep != "" || isPathLike(key) {
		persistVal = dedupJoined(val, e.resolvedSep(key), e.ExistingPersistedEnv[key])
	}
	return setLine + fmt.Sprintf("setenv -v %s %s\n", key, persistVal)
}

func (e *WinCmd) resolvedSep(key string) string {
	merged := sepmap.Merge(sepmap.Default(), e.Policy.SepMap)
	return sepmap.Resolve(key, "cmd", merged)
}

func isPathLike(key string) bool {
	return strings.HasSuffix(key, "PATH") || strings.Contains(key, "PATH_")
}

// dedupJoined removes from joined any entries already present in
// existing (a sep-joined string), preserving joined's order.
func dedupJoined(joined, sep, existing string) string {
	if existing == "" {
		return joined
	}
	have := make(map[string]bool)
	for _, e := range strings.Split(existing, sep) {
		have[e] = true
	}
	var kept []string
	for _, part := range strings.Split(joined, sep) {
		if !have[part] {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}

func toBackslashes(v string) string {
	return strings.ReplaceAll(v, "/", "\\")
}
