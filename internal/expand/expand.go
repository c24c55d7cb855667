// Package expand implements the two template dialects described in
// SPEC_FULL.md §"Expansion Engine": env-templates ($NAME / ${NAME}),
// resolved against a live environment at emission/execution time, and
// custom-templates (!NAME / !{dotted.path}), resolved against the
// attribute namespace at recording time. The two passes are independent;
// an occurrence of one delimiter is never treated as the other.
package expand

import (
	"fmt"
	"regexp"

	"github.com/cairnforge/envrex/internal/attrns"
)

// envPattern matches $NAME or ${NAME}. Group 1 is the unbraced name,
// group 2 the braced name.
var envPattern = regexp.MustCompile(`\$(?:([A-Za-z_][A-Za-z0-9_]*)|\{([A-Za-z_][A-Za-z0-9_]*)\})`)

// customPattern matches !NAME (no dots) or !{a.b.c} (dots only inside
// braces). Group 1 is the unbraced name, group 2 the braced dotted path.
var customPattern = regexp.MustCompile(`!(?:([A-Za-z_][A-Za-z0-9_]*)|\{([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*)\})`)

// Lookup resolves a plain environment-variable name to its value. The bool
// reports whether the name is bound; unbound names are left literal.
type Lookup func(name string) (value string, ok bool)

// Env performs env-template expansion: $NAME / ${NAME} are replaced using
// lookup. Unknown names are left untouched (safe substitution — spec.md §7
// is explicit that expansion never fails on an unknown name).
func Env(s string, lookup Lookup) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		sub := envPattern.FindStringSubmatch(match)
		name := sub[1]
		if name == "" {
			name = sub[2]
		}
		if v, ok := lookup(name); ok {
			return v
		}
		return match
	})
}

// Custom performs custom-template expansion: !NAME / !{a.b.c} are replaced
// by looking the identifier up in ns, case-insensitively, substituting the
// value exactly as stored (case-preserving — the looked-up value is never
// re-cased to match the reference). Unknown names are left literal.
func Custom(s string, ns *attrns.Namespace) string {
	if ns == nil {
		return s
	}
	return customPattern.ReplaceAllStringFunc(s, func(match string) string {
		sub := customPattern.FindStringSubmatch(match)
		name := sub[1]
		if name == "" {
			name = sub[2]
		}
		v, err := ns.GetFold(name)
		if err != nil {
			return match
		}
		if str, ok := v.(string); ok {
			return str
		}
		return fmt.Sprint(v)
	})
}
