package interp

import (
	"strings"
	"testing"

	"github.com/cairnforge/envrex/internal/command"
)

func TestCshSetenvForm(t *testing.T) {
	c := NewCsh(Policy{})
	out, err := c.Emit([]command.Command{
		command.NewKeyed(command.Setenv, "FOO", command.Value{Str: "bar"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if out != `setenv FOO "bar"`+"\n" {
		t.Fatalf("got %q", out)
	}
}

func TestCshUnsetenvForm(t *testing.T) {
	c := NewCsh(Policy{})
	out, err := c.Emit([]command.Command{command.NewUnsetenv("FOO")})
	if err != nil {
		t.Fatal(err)
	}
	if out != "unsetenv FOO\n" {
		t.Fatalf("got %q", out)
	}
}

func TestCshNotSeenRespectParentEnvUsesIfEndif(t *testing.T) {
	c := NewCsh(Policy{RespectParentEnv: true})
	out, err := c.Emit([]command.Command{
		command.NewKeyed(command.Appendenv, "PATH", command.Value{Str: "/b"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "if ( ! $?PATH ) then") || !strings.Contains(out, "endif") {
		t.Fatalf("got %q", out)
	}
}

func TestCshAlreadySeenAlwaysExtends(t *testing.T) {
	c := NewCsh(Policy{RespectParentEnv: true})
	out, err := c.Emit([]command.Command{
		command.NewKeyed(command.Setenv, "PATH", command.Value{Str: "/a"}),
		command.NewKeyed(command.Appendenv, "PATH", command.Value{Str: "/b"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "if (") {
		t.Fatalf("second touch must always extend, no conditional: %q", out)
	}
	if !strings.Contains(out, `setenv PATH "$PATH:/b"`) {
		t.Fatalf("got %q", out)
	}
}

func TestCshEnvTemplateSurvivesQuoting(t *testing.T) {
	c := NewCsh(Policy{})
	out, err := c.Emit([]command.Command{
		command.NewKeyed(command.Setenv, "X", command.Value{Str: "b:c:$X"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if out != `setenv X "b:c:$X"`+"\n" {
		t.Fatalf("got %q", out)
	}
}
