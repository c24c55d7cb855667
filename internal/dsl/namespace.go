// Package dsl implements the Routing Namespace and a small interpreter for
// the environment-mutation DSL described in SPEC_FULL.md. Go has no
// dynamic `exec`, so the DSL is executed by a hand-written lexer, parser,
// and tree-walking evaluator rather than by reusing a host interpreter —
// the one place this repo necessarily diverges in mechanism (not
// semantics) from the original.
package dsl

import (
	"regexp"

	"github.com/cairnforge/envrex/internal/attrns"
	"github.com/cairnforge/envrex/internal/envview"
	"github.com/cairnforge/envrex/internal/expand"
	"github.com/cairnforge/envrex/internal/recorder"
)

// allCaps matches the ALL-CAPS environment-variable convention: identifiers
// routed to the Environment View rather than the plain local scope.
var allCaps = regexp.MustCompile(`^[_A-Z][_A-Z0-9]*$`)

func isAllCaps(name string) bool { return allCaps.MatchString(name) }

// Namespace is the hybrid execution scope for a single DSL evaluation: an
// Environment View for ALL-CAPS keys, and an Attribute Namespace that
// serves both as the plain local-variable scope and as the backing store
// for custom-template (`!name`) expansion. Constructing a Namespace also
// installs the Recorder's record-time expander, per SPEC_FULL.md.
type Namespace struct {
	Env   *envview.View
	Rec   *recorder.Recorder
	Attrs *attrns.Namespace
}

// New creates a Namespace bound to rec, installing the custom-template
// expander that runs at record time.
func New(rec *recorder.Recorder) *Namespace {
	ns := &Namespace{
		Env:   envview.New(rec),
		Rec:   rec,
		Attrs: attrns.New(),
	}
	rec.SetExpander(func(s string) string {
		return expand.Custom(s, ns.Attrs)
	})
	return ns
}
