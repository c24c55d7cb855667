package interp

import (
	"testing"

	"github.com/cairnforge/envrex/internal/command"
)

func TestLiveSetenvMutatesEnv(t *testing.T) {
	l := NewLive(Policy{})
	l.Env = map[string]string{}
	err := l.Apply([]command.Command{
		command.NewKeyed(command.Setenv, "FOO", command.Value{Str: "bar"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if l.Env["FOO"] != "bar" {
		t.Fatalf("got %q", l.Env["FOO"])
	}
}

func TestLiveUnsetenvToleratesAbsentKey(t *testing.T) {
	l := NewLive(Policy{})
	l.Env = map[string]string{}
	err := l.Apply([]command.Command{command.NewUnsetenv("NEVER_SET")})
	if err != nil {
		t.Fatalf("unsetenv of an absent key must not error: %v", err)
	}
}

func TestLiveAlreadySeenAlwaysExtends(t *testing.T) {
	l := NewLive(Policy{RespectParentEnv: true})
	l.Env = map[string]string{}
	err := l.Apply([]command.Command{
		command.NewKeyed(command.Setenv, "PATH", command.Value{Str: "/a"}),
		command.NewKeyed(command.Appendenv, "PATH", command.Value{Str: "/b"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if l.Env["PATH"] != "/a:/b" {
		t.Fatalf("got %q", l.Env["PATH"])
	}
}

func TestLiveNotSeenRespectParentEnvConsultsParent(t *testing.T) {
	l := NewLive(Policy{RespectParentEnv: true})
	l.Env = map[string]string{"PATH": "/parent"}
	err := l.Apply([]command.Command{
		command.NewKeyed(command.Appendenv, "PATH", command.Value{Str: "/b"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if l.Env["PATH"] != "/parent:/b" {
		t.Fatalf("got %q", l.Env["PATH"])
	}
}

func TestLiveNotSeenRespectParentEnvButAbsentIsPlainSet(t *testing.T) {
	l := NewLive(Policy{RespectParentEnv: true})
	l.Env = map[string]string{}
	err := l.Apply([]command.Command{
		command.NewKeyed(command.Appendenv, "PATH", command.Value{Str: "/b"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if l.Env["PATH"] != "/b" {
		t.Fatalf("got %q", l.Env["PATH"])
	}
}

func TestLiveIgnoreParentEnvIsPlainSetEvenWhenPresent(t *testing.T) {
	l := NewLive(Policy{RespectParentEnv: false})
	l.Env = map[string]string{"PATH": "/parent"}
	err := l.Apply([]command.Command{
		command.NewKeyed(command.Appendenv, "PATH", command.Value{Str: "/b"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if l.Env["PATH"] != "/b" {
		t.Fatalf("got %q", l.Env["PATH"])
	}
}

func TestLiveCommandAccumulatesRawInvocation(t *testing.T) {
	l := NewLive(Policy{})
	err := l.Apply([]command.Command{
		command.NewValued(command.Command_, command.Value{Str: "echo hi"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Commands) != 1 || l.Commands[0] != "echo hi" {
		t.Fatalf("got %v", l.Commands)
	}
}

func TestLiveInfoAndErrorAccumulate(t *testing.T) {
	l := NewLive(Policy{})
	err := l.Apply([]command.Command{
		command.NewValued(command.Info, command.Value{Str: "building"}),
		command.NewValued(command.Error, command.Value{Str: "failed"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Info()) != 1 || l.Info()[0] != "building" {
		t.Fatalf("got %v", l.Info())
	}
	if len(l.Errors()) != 1 || l.Errors()[0] != "failed" {
		t.Fatalf("got %v", l.Errors())
	}
}

func TestLiveResetClearsAccumulatedState(t *testing.T) {
	l := NewLive(Policy{RespectParentEnv: true})
	l.Env = map[string]string{}
	_ = l.Apply([]command.Command{
		command.NewKeyed(command.Setenv, "PATH", command.Value{Str: "/a"}),
		command.NewValued(command.Info, command.Value{Str: "x"}),
	})
	l.Reset()
	if len(l.Info()) != 0 || len(l.Commands) != 0 {
		t.Fatalf("reset should clear accumulated info/commands")
	}
	err := l.Apply([]command.Command{
		command.NewKeyed(command.Appendenv, "PATH", command.Value{Str: "/b"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if l.Env["PATH"] != "/a:/b" {
		t.Fatalf("reset must not wipe e.Env, only per-execution tracking state: got %q", l.Env["PATH"])
	}
}
