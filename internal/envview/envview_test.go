package envview

import (
	"testing"

	"github.com/cairnforge/envrex/internal/command"
	"github.com/cairnforge/envrex/internal/recorder"
)

func TestHandleMemoized(t *testing.T) {
	v := New(recorder.New())
	a := v.Get("PATH")
	b := v.Get("PATH")
	if a != b {
		t.Error("expected the same handle instance for repeated Get of the same name")
	}
}

func TestHandleOperationsForwardToRecorder(t *testing.T) {
	rec := recorder.New()
	v := New(rec)

	v.Get("X").Set(command.StringValue("1"))
	v.Get("X").Prepend(command.StringValue("0"))
	v.Get("X").Append(command.StringValue("2"))
	v.Get("Y").Unset()

	log := rec.Snapshot()
	if len(log) != 4 {
		t.Fatalf("len(log) = %d, want 4", len(log))
	}
	wantKinds := []command.Kind{command.Setenv, command.Prependenv, command.Appendenv, command.Unsetenv}
	for i, want := range wantKinds {
		if log[i].Kind() != want {
			t.Errorf("log[%d].Kind() = %v, want %v", i, log[i].Kind(), want)
		}
	}
	if log[0].Key() != "X" || log[3].Key() != "Y" {
		t.Errorf("unexpected keys: %q, %q", log[0].Key(), log[3].Key())
	}
}
