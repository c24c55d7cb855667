package command

import "testing"

func TestKindName(t *testing.T) {
	cases := map[Kind]string{
		Setenv:     "setenv",
		Unsetenv:   "unsetenv",
		Prependenv: "prependenv",
		Appendenv:  "appendenv",
		Alias:      "alias",
		Info:       "info",
		Error:      "error",
		Comment:    "comment",
		Source:     "source",
		Command_:   "command",
	}
	for k, want := range cases {
		if got := k.Name(); got != want {
			t.Errorf("Kind(%d).Name() = %q, want %q", k, got, want)
		}
	}
}

func TestNewKeyedPanicsOnUnsetenv(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic constructing Unsetenv via NewKeyed")
		}
	}()
	NewKeyed(Unsetenv, "X", StringValue("v"))
}

func TestNewValuedPanicsOnKeyedKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic constructing Setenv via NewValued")
		}
	}()
	NewValued(Setenv, StringValue("v"))
}

func TestEqualStructural(t *testing.T) {
	a := NewKeyed(Setenv, "X", StringValue("1"))
	b := NewKeyed(Setenv, "X", StringValue("1"))
	c := NewKeyed(Setenv, "X", StringValue("2"))
	if !a.Equal(b) {
		t.Error("expected a == b")
	}
	if a.Equal(c) {
		t.Error("expected a != c")
	}
}

func TestEqualSequence(t *testing.T) {
	a := NewKeyed(Prependenv, "X", SeqValue([]string{"a", "b"}))
	b := NewKeyed(Prependenv, "X", SeqValue([]string{"a", "b"}))
	c := NewKeyed(Prependenv, "X", SeqValue([]string{"a", "c"}))
	if !a.Equal(b) {
		t.Error("expected a == b")
	}
	if a.Equal(c) {
		t.Error("expected a != c")
	}
}

func TestSeqValueDefensiveCopy(t *testing.T) {
	src := []string{"a", "b"}
	v := SeqValue(src)
	src[0] = "mutated"
	if v.Seq[0] != "a" {
		t.Error("SeqValue did not defensively copy its input")
	}
}
