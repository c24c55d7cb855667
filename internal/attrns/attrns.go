// Package attrns implements the attribute namespace described in
// SPEC_FULL.md: a map keyed by dotted identifiers that resolves the
// longest stored prefix and walks any remaining segments via attribute
// access on the resolved value.
//
// Grounded on rez's AttrDict (original_source/python/rez/rex.py): the
// longest-prefix-then-attribute-walk algorithm is carried over verbatim,
// re-expressed with an explicit accessor interface instead of Python's
// getattr fallback.
package attrns

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrInvalidKey is returned when Set is called with a key that doesn't
	// match the dotted-identifier shape.
	ErrInvalidKey = errors.New("attrns: invalid key")

	// ErrUnknownKey is returned when Get exhausts the longest-prefix search
	// without finding a stored key.
	ErrUnknownKey = errors.New("attrns: unknown key")
)

// keyPattern matches `[_A-Za-z][_A-Za-z0-9]*(\.[_A-Za-z][_A-Za-z0-9]*)*`.
var keyPattern = regexp.MustCompile(`^[_A-Za-z][_A-Za-z0-9]*(\.[_A-Za-z][_A-Za-z0-9]*)*$`)

// AttrGetter is the capability interface objects stored in the namespace
// may implement to expose attribute-style reads to the DSL. This is the Go
// analogue of Python's getattr-based attribute walk (Design Notes, §4.4).
type AttrGetter interface {
	GetAttr(name string) (value any, ok bool)
}

// Namespace is a hybrid map+object store keyed by dotted identifiers.
type Namespace struct {
	data map[string]any
}

// New returns an empty Namespace.
func New() *Namespace {
	return &Namespace{data: make(map[string]any)}
}

// ValidKey reports whether key matches the dotted-identifier grammar.
func ValidKey(key string) bool {
	return keyPattern.MatchString(key)
}

// Set inserts value under key. Returns ErrInvalidKey if key does not match
// the dotted-identifier shape.
func (n *Namespace) Set(key string, value any) error {
	if !ValidKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	n.data[key] = value
	return nil
}

// Get resolves a dotted key by probing the map for the longest stored
// prefix, then walking the remaining segments (in order) via attribute
// access on the value found at that prefix.
func (n *Namespace) Get(key string) (any, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	segments := strings.Split(key, ".")

	var stash []string
	for len(segments) > 0 {
		prefix := strings.Join(segments, ".")
		if v, ok := n.data[prefix]; ok {
			return walkAttrs(v, reverse(stash))
		}
		stash = append(stash, segments[len(segments)-1])
		segments = segments[:len(segments)-1]
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

var folder = cases.Fold()

func foldKey(s string) string { return folder.String(s) }

// GetFold resolves a dotted key the same way Get does, but matches stored
// prefixes case-insensitively (used by custom-template expansion, which
// per SPEC_FULL.md does case-insensitive, case-preserving substitution).
// The value returned is whatever was stored — its case is never altered.
func (n *Namespace) GetFold(key string) (any, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	folded := make(map[string]string, len(n.data))
	for k := range n.data {
		folded[foldKey(k)] = k
	}

	segments := strings.Split(key, ".")
	var stash []string
	for len(segments) > 0 {
		prefix := strings.Join(segments, ".")
		if orig, ok := folded[foldKey(prefix)]; ok {
			return walkAttrs(n.data[orig], reverse(stash))
		}
		stash = append(stash, segments[len(segments)-1])
		segments = segments[:len(segments)-1]
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// GetString is a convenience wrapper for the common case of expecting a
// string-valued attribute; non-string values are rendered with fmt.Sprint.
func (n *Namespace) GetString(key string) (string, bool) {
	v, err := n.Get(key)
	if err != nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

func reverse(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[len(ss)-1-i] = s
	}
	return out
}

// walkAttrs applies each attribute access in attrs, in order, to base.
func walkAttrs(base any, attrs []string) (any, error) {
	cur := base
	for _, attr := range attrs {
		next, ok := getAttr(cur, attr)
		if !ok {
			return nil, fmt.Errorf("%w: no attribute %q on %T", ErrUnknownKey, attr, cur)
		}
		cur = next
	}
	return cur, nil
}

// getAttr reads one attribute off v, preferring the explicit AttrGetter
// capability interface and falling back to exported-field reflection for
// plain structs so DSL authors can reference ordinary Go values too.
func getAttr(v any, name string) (any, bool) {
	if ag, ok := v.(AttrGetter); ok {
		return ag.GetAttr(name)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		// DSL attribute names are conventionally lower-case; Go exported
		// fields are not, so match case-insensitively.
		f := rv.FieldByNameFunc(func(fieldName string) bool {
			return strings.EqualFold(fieldName, name)
		})
		if f.IsValid() && f.CanInterface() {
			return f.Interface(), true
		}
	case reflect.Map:
		mv := rv.MapIndex(reflect.ValueOf(name))
		if mv.IsValid() {
			return mv.Interface(), true
		}
	}
	return nil, false
}
