package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cairnforge/envrex/internal/command"
	"github.com/cairnforge/envrex/internal/session"
)

func TestRenderPlainIncludesEveryCommand(t *testing.T) {
	log := []command.Command{
		command.NewKeyed(command.Setenv, "FOO", command.Value{Str: "bar"}),
		command.NewValued(command.Info, command.Value{Str: "hello"}),
	}
	sess := session.New("script.env")

	var buf bytes.Buffer
	if err := RenderPlain(&buf, log, sess); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, sess.ID) {
		t.Fatalf("missing session id in output: %q", out)
	}
	if !strings.Contains(out, "FOO") || !strings.Contains(out, "hello") {
		t.Fatalf("missing command content: %q", out)
	}
}

func TestIsInteractiveFalseForPlainBuffer(t *testing.T) {
	var buf bytes.Buffer
	if IsInteractive(&buf) {
		t.Fatal("a bytes.Buffer is never a terminal")
	}
}

func TestItemAdaptsCommandForList(t *testing.T) {
	c := command.NewKeyed(command.Setenv, "FOO", command.Value{Str: "bar"})
	it := item(c)
	if it.FilterValue() != c.String() {
		t.Fatalf("got %q", it.FilterValue())
	}
	if it.Description() != c.String() {
		t.Fatalf("got %q", it.Description())
	}
}
