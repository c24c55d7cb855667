package interp

import (
	"fmt"
	"os"

	"github.com/cairnforge/envrex/internal/command"
	"github.com/cairnforge/envrex/internal/sepmap"
)

// Live applies a command log directly to an in-process environment,
// rather than rendering shell source. Env starts as a copy of the
// process environment (or a caller-supplied snapshot) and is mutated
// in place; Commands holds the accumulated Command_, Alias and Source
// invocations for the caller to run, since Live has no shell to hand
// them to.
type Live struct {
	Policy Policy
	state  *execState
	Env    map[string]string

	// Commands accumulates command.Command_, command.Alias and
	// command.Source values the caller is responsible for executing; Live
	// does not fork processes.
	Commands []string

	info []string
	errs []string
}

// NewLive returns a Live executor seeded from the current process
// environment.
func NewLive(p Policy) *Live {
	return &Live{Policy: p, state: newExecState(), Env: snapshotEnviron()}
}

func snapshotEnviron() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				env[kv[:i]] = kv[i+1:]
				break
			}
		}
	}
	return env
}

// Reset clears per-execution state so the executor can be reused.
func (e *Live) Reset() {
	e.state = newExecState()
	e.Commands = nil
	e.info = nil
	e.errs = nil
}

// Info returns the accumulated INFO message text, in log order.
func (e *Live) Info() []string { return e.info }

// Errors returns the accumulated ERROR message text, in log order.
func (e *Live) Errors() []string { return e.errs }

// Apply mutates e.Env in place per log, in order.
func (e *Live) Apply(log []command.Command) error {
	sepMap := sepmap.Merge(sepmap.Default(), e.Policy.SepMap)
	for _, c := range log {
		if err := e.applyOne(c, sepMap); err != nil {
			return err
		}
	}
	return nil
}

func (e *Live) applyOne(c command.Command, sepMap map[string]string) error {
	val := flatten(c.Value(), c.Key(), "live", sepMap)

	switch c.Kind() {
	case command.Setenv:
		e.Env[c.Key()] = val
		e.state.mark(c.Key())

	case command.Unsetenv:
		// Deleting an absent key is a no-op in Go maps; unsetenv must
		// tolerate an already-absent variable (spec.md §7).
		delete(e.Env, c.Key())

	case command.Prependenv:
		e.extend(c.Key(), val, sepMap, true)

	case command.Appendenv:
		e.extend(c.Key(), val, sepMap, false)

	case command.Alias:
		e.Commands = append(e.Commands, fmt.Sprintf("alias %s=%q", c.Key(), val))

	case command.Info:
		e.info = append(e.info, flatten(c.Value(), c.Key(), "live", sepMap))

	case command.Error:
		e.errs = append(e.errs, flatten(c.Value(), c.Key(), "live", sepMap))

	case command.Comment:
		// Comments carry no runtime effect for the live executor.

	case command.Source:
		e.Commands = append(e.Commands, "source "+val)

	case command.Command_:
		e.Commands = append(e.Commands, flatten(c.Value(), c.Key(), "live", sepMap))

	default:
		return unsupported("live", c.Kind())
	}
	return nil
}

// extend implements the same already-seen / RespectParentEnv branching
// table as the shell emitters, against e.Env directly instead of
// generated source (spec.md §4.7, §5).
func (e *Live) extend(key, val string, sepMap map[string]string, prepend bool) {
	sep := sepmap.Resolve(key, "live", sepMap)
	cur, hasParent := e.Env[key]

	if e.state.seen(key) {
		e.Env[key] = joinOrdered(val, cur, sep, prepend)
		e.state.mark(key)
		return
	}

	if e.Policy.RespectParentEnv && hasParent {
		e.Env[key] = joinOrdered(val, cur, sep, prepend)
	} else {
		e.Env[key] = val
	}
	e.state.mark(key)
}

func joinOrdered(val, cur, sep string, prepend bool) string {
	if prepend {
		return val + sep + cur
	}
	return cur + sep + val
}
