// Package recorder implements the append-only Command Recorder described
// in SPEC_FULL.md §"Command Recorder": its public methods mirror the
// Command kinds and it applies custom-template expansion to string/sequence
// values at record time. The DSL binds to these methods through its own
// callFuncs table in internal/dsl.
package recorder

import "github.com/cairnforge/envrex/internal/command"

// Expander is installed by the Routing Namespace and runs custom-template
// expansion against the namespace known at record time. A nil Expander
// means values are recorded verbatim.
type Expander func(string) string

// Recorder is the append-only command log. Not safe for concurrent use.
type Recorder struct {
	log    []command.Command
	expand Expander
}

// New returns an empty Recorder with no expander installed.
func New() *Recorder {
	return &Recorder{}
}

// SetExpander installs (or replaces) the record-time expansion callback.
func (r *Recorder) SetExpander(e Expander) {
	r.expand = e
}

func (r *Recorder) expandValue(v command.Value) command.Value {
	if r.expand == nil {
		return v
	}
	if v.IsSeq {
		out := make([]string, len(v.Seq))
		for i, s := range v.Seq {
			out[i] = r.expand(s)
		}
		return command.SeqValue(out)
	}
	return command.StringValue(r.expand(v.Str))
}

// Setenv records a SETENV command. Keys are never expanded.
func (r *Recorder) Setenv(key string, val command.Value) {
	r.log = append(r.log, command.NewKeyed(command.Setenv, key, r.expandValue(val)))
}

// Unsetenv records an UNSETENV command.
func (r *Recorder) Unsetenv(key string) {
	r.log = append(r.log, command.NewUnsetenv(key))
}

// Prependenv records a PREPENDENV command.
func (r *Recorder) Prependenv(key string, val command.Value) {
	r.log = append(r.log, command.NewKeyed(command.Prependenv, key, r.expandValue(val)))
}

// Appendenv records an APPENDENV command.
func (r *Recorder) Appendenv(key string, val command.Value) {
	r.log = append(r.log, command.NewKeyed(command.Appendenv, key, r.expandValue(val)))
}

// Alias records an ALIAS command.
func (r *Recorder) Alias(key string, val command.Value) {
	r.log = append(r.log, command.NewKeyed(command.Alias, key, r.expandValue(val)))
}

// Info records an INFO command.
func (r *Recorder) Info(val command.Value) {
	r.log = append(r.log, command.NewValued(command.Info, r.expandValue(val)))
}

// Error records an ERROR command.
func (r *Recorder) Error(val command.Value) {
	r.log = append(r.log, command.NewValued(command.Error, r.expandValue(val)))
}

// Comment records a COMMENT command.
func (r *Recorder) Comment(val command.Value) {
	r.log = append(r.log, command.NewValued(command.Comment, r.expandValue(val)))
}

// Source records a SOURCE command.
func (r *Recorder) Source(val command.Value) {
	r.log = append(r.log, command.NewValued(command.Source, r.expandValue(val)))
}

// Command records a COMMAND command.
func (r *Recorder) Command(val command.Value) {
	r.log = append(r.log, command.NewValued(command.Command_, r.expandValue(val)))
}

// Reset clears the log.
func (r *Recorder) Reset() {
	r.log = nil
}

// Snapshot returns a defensive copy of the log; never a live alias.
func (r *Recorder) Snapshot() []command.Command {
	cp := make([]command.Command, len(r.log))
	copy(cp, r.log)
	return cp
}

// Len reports the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.log)
}
