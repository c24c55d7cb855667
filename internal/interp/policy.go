// Package interp implements the multi-target Interpreters described in
// SPEC_FULL.md §"Interpreters": shell emitters for POSIX sh/bash, C-shell,
// and Windows cmd, plus an in-process live executor, all consuming the
// same Command log and agreeing on semantics.
package interp

// Policy carries the shared inputs every interpreter consults, per
// spec.md §4.7.
type Policy struct {
	// RespectParentEnv: when true, prepend/append of a variable not yet
	// seen in this command log must consult the inherited parent
	// environment; when false, such an operation is promoted to a plain
	// set.
	RespectParentEnv bool

	// SepMap holds per-variable separator overrides (each interpreter
	// overlays them on sepmap.Default()).
	SepMap map[string]string

	// Persist enables the Windows volatile-registry write path and its
	// PATH-like dedup rule (spec.md §6). Ignored by non-Windows targets.
	Persist bool
}

// execState is the per-execution state an interpreter instance carries:
// the set of variable names already touched by SETENV/PREPENDENV/
// APPENDENV earlier in the current command log. This is the sole
// mechanism distinguishing "already set by us" from "inherited from the
// parent" (spec.md §5).
type execState struct {
	setEnvVars map[string]bool
}

func newExecState() *execState {
	return &execState{setEnvVars: make(map[string]bool)}
}

func (s *execState) seen(key string) bool {
	return s.setEnvVars[key]
}

func (s *execState) mark(key string) {
	s.setEnvVars[key] = true
}
