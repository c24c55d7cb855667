package sepmap

import "testing"

func TestDefaultOverridesCMakeModulePath(t *testing.T) {
	d := Default()
	if d["CMAKE_MODULE_PATH"] != ";" {
		t.Errorf("CMAKE_MODULE_PATH = %q, want ;", d["CMAKE_MODULE_PATH"])
	}
}

func TestMergeOverridesWin(t *testing.T) {
	base := Default()
	got := Merge(base, map[string]string{"CMAKE_MODULE_PATH": ":::"})
	if got["CMAKE_MODULE_PATH"] != ":::" {
		t.Errorf("override did not win: %q", got["CMAKE_MODULE_PATH"])
	}
	if base["CMAKE_MODULE_PATH"] != ";" {
		t.Error("Merge mutated its base argument")
	}
}

func TestResolveFallsBackToOSSeparator(t *testing.T) {
	if got := Resolve("PATH", "bash", Default()); got != ":" {
		t.Errorf("Resolve(PATH, bash) = %q, want :", got)
	}
	if got := Resolve("PATH", "cmd", Default()); got != ";" {
		t.Errorf("Resolve(PATH, cmd) = %q, want ;", got)
	}
}

// TestSequenceEquivalentToSeparatorJoin covers the universal invariant in
// spec.md §8: emission treats a sequence value identically to sep.join(v).
func TestSequenceEquivalentToSeparatorJoin(t *testing.T) {
	got := Join([]string{"a", "b", "c"}, "PATH", "bash", Default())
	if got != "a:b:c" {
		t.Errorf("got %q, want a:b:c", got)
	}
}
