package interp

import (
	"strings"
	"testing"

	"github.com/cairnforge/envrex/internal/command"
)

func TestWinCmdSetenvTranslatesSlashes(t *testing.T) {
	w := NewWinCmd(Policy{})
	out, err := w.Emit([]command.Command{
		command.NewKeyed(command.Setenv, "FOO", command.Value{Str: "C:/a/b"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if out != `set FOO=C:\a\b`+"\n" {
		t.Fatalf("got %q", out)
	}
}

func TestWinCmdUnsetenvIsEmptyAssignment(t *testing.T) {
	w := NewWinCmd(Policy{})
	out, err := w.Emit([]command.Command{command.NewUnsetenv("FOO")})
	if err != nil {
		t.Fatal(err)
	}
	if out != "set FOO=\n" {
		t.Fatalf("got %q", out)
	}
}

func TestWinCmdNotSeenRespectParentEnvUsesIfDefined(t *testing.T) {
	w := NewWinCmd(Policy{RespectParentEnv: true})
	out, err := w.Emit([]command.Command{
		command.NewKeyed(command.Prependenv, "PATH", command.Value{Str: "C:/a"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "if defined PATH (") {
		t.Fatalf("got %q", out)
	}
}

func TestWinCmdAlreadySeenAlwaysExtends(t *testing.T) {
	w := NewWinCmd(Policy{RespectParentEnv: true})
	out, err := w.Emit([]command.Command{
		command.NewKeyed(command.Setenv, "PATH", command.Value{Str: "C:/a"}),
		command.NewKeyed(command.Prependenv, "PATH", command.Value{Str: "C:/b"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "if defined") {
		t.Fatalf("second touch must always extend, no conditional: %q", out)
	}
	if !strings.Contains(out, `set PATH=C:\b;%PATH%`) {
		t.Fatalf("got %q", out)
	}
}

func TestWinCmdPersistDedupesAgainstExisting(t *testing.T) {
	w := NewWinCmd(Policy{Persist: true})
	w.ExistingPersistedEnv = map[string]string{"PATH": `C:\a`}
	out, err := w.Emit([]command.Command{
		command.NewKeyed(command.Setenv, "PATH", command.Value{Seq: []string{"C:/a", "C:/b"}, IsSeq: true}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "set PATH=") {
		t.Fatalf("missing process-local set line: %q", out)
	}
	if !strings.Contains(out, `setenv -v PATH C:\b`) {
		t.Fatalf("expected dedup to drop C:\\a from persisted line, got %q", out)
	}
	if strings.Count(out, `C:\a`) != 1 {
		t.Fatalf("C:\\a should only appear in the process-local set line, got %q", out)
	}
}

func TestWinCmdPersistSkippedWhenPolicyOff(t *testing.T) {
	w := NewWinCmd(Policy{Persist: false})
	out, err := w.Emit([]command.Command{
		command.NewKeyed(command.Setenv, "PATH", command.Value{Str: "C:/a"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "setenv -v") {
		t.Fatalf("persist line should not appear when Policy.Persist is false: %q", out)
	}
}
