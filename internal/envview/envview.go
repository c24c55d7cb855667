// Package envview implements the Environment View described in
// SPEC_FULL.md §"Environment View": a proxy over variable names whose
// member access returns a per-name handle that forwards set/prepend/
// append/unset to the Command Recorder. A handle never reads current
// environment state; it only records intent.
package envview

import (
	"github.com/cairnforge/envrex/internal/command"
	"github.com/cairnforge/envrex/internal/recorder"
)

// Handle is the per-variable object returned by View.Get. It is stateless
// beyond its name; all side effects are recorded by the shared Recorder.
type Handle struct {
	name string
	rec  *recorder.Recorder
}

// Name returns the environment variable name this handle addresses.
func (h *Handle) Name() string { return h.name }

// Set records a SETENV. Equivalent to assigning a value to the variable
// directly in the DSL.
func (h *Handle) Set(val command.Value) { h.rec.Setenv(h.name, val) }

// Prepend records a PREPENDENV.
func (h *Handle) Prepend(val command.Value) { h.rec.Prependenv(h.name, val) }

// Append records an APPENDENV.
func (h *Handle) Append(val command.Value) { h.rec.Appendenv(h.name, val) }

// Unset records an UNSETENV.
func (h *Handle) Unset() { h.rec.Unsetenv(h.name) }

// View is a mapping from variable name to Handle. Handles are created on
// first access and memoized so repeated references share recorded state
// (not that state matters — handles are stateless — but memoization keeps
// object identity stable, which callers may rely on).
type View struct {
	rec     *recorder.Recorder
	handles map[string]*Handle
}

// New returns a View backed by rec.
func New(rec *recorder.Recorder) *View {
	return &View{rec: rec, handles: make(map[string]*Handle)}
}

// Get returns the handle for name, creating it on first access.
func (v *View) Get(name string) *Handle {
	if h, ok := v.handles[name]; ok {
		return h
	}
	h := &Handle{name: name, rec: v.rec}
	v.handles[name] = h
	return h
}
