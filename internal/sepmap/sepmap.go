// Package sepmap implements the Variable Separator Map described in
// SPEC_FULL.md §3 and §6: a per-variable override of the join separator
// used when a sequence value is flattened to a single string, defaulting
// to the host OS path separator.
package sepmap

import (
	"runtime"
	"strings"
)

// posixSep and windowsSep mirror os.PathListSeparator for the two target
// families this package cares about, independent of the host the tool
// itself runs on (an emitter targeting cmd.exe on a Linux CI box must still
// use ';').
const (
	posixSep   = ":"
	windowsSep = ";"
)

// Default returns the built-in separator map: CMAKE_MODULE_PATH overridden
// to ';' (per spec.md §6), nothing else special-cased. Callers overlay
// their own overrides with Merge.
func Default() map[string]string {
	return map[string]string{
		"CMAKE_MODULE_PATH": ";",
	}
}

// Merge layers override on top of base, returning a new map. Neither input
// is mutated.
func Merge(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// OSSeparator returns the default join separator for a named shell family
// ("sh", "bash", "tcsh", "csh" => ':'; "cmd" => ';'). Unknown families fall
// back to the separator of the host this binary runs on.
func OSSeparator(shellFamily string) string {
	switch shellFamily {
	case "cmd":
		return windowsSep
	case "sh", "bash", "tcsh", "csh":
		return posixSep
	default:
		if runtime.GOOS == "windows" {
			return windowsSep
		}
		return posixSep
	}
}

// Resolve returns the separator to use for key, given a separator map
// (caller overrides already merged over Default()) and the target shell
// family used to pick the OS default when key has no override.
func Resolve(key, shellFamily string, sepMap map[string]string) string {
	if sep, ok := sepMap[key]; ok {
		return sep
	}
	return OSSeparator(shellFamily)
}

// Join flattens a sequence value to a single string using the resolved
// separator for key.
func Join(values []string, key, shellFamily string, sepMap map[string]string) string {
	return strings.Join(values, Resolve(key, shellFamily, sepMap))
}
