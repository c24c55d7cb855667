package dsl

import (
	"fmt"

	"github.com/cairnforge/envrex/internal/command"
	"github.com/cairnforge/envrex/internal/expand"
)

// Exec parses src and executes it against ns, statement by statement, left
// to right, with no reordering — mutations land on ns.Rec's log in exactly
// the order the script issues them.
func Exec(src string, ns *Namespace) error {
	prog, err := Parse(src)
	if err != nil {
		return err
	}
	for _, stmt := range prog.Statements {
		if err := ns.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (ns *Namespace) exec(stmt Statement) error {
	switch s := stmt.(type) {
	case Assignment:
		return ns.execAssignment(s)
	case MethodCall:
		return ns.execMethodCall(s)
	case Call:
		return ns.execCall(s)
	default:
		return fmt.Errorf("dsl: unhandled statement type %T", stmt)
	}
}

func (ns *Namespace) execAssignment(a Assignment) error {
	val, err := ns.evalValue(a.Value)
	if err != nil {
		return err
	}

	if isAllCaps(a.Target) {
		// Sugar for ENV_NAME.set(v). Expansion happens inside the recorder,
		// via the installed expander, not here — the custom namespace is
		// already known, but §4.6 keeps the two expansion sites distinct.
		ns.Env.Get(a.Target).Set(val)
		return nil
	}

	// A local/custom-namespace write: expand immediately, since everything
	// the custom namespace needs to resolve references is already known.
	expanded := expandValueNow(val, ns)
	return ns.setLocal(a.Target, expanded)
}

func (ns *Namespace) setLocal(name string, val command.Value) error {
	if val.IsSeq {
		return ns.Attrs.Set(name, append([]string(nil), val.Seq...))
	}
	return ns.Attrs.Set(name, val.Str)
}

func expandValueNow(val command.Value, ns *Namespace) command.Value {
	if val.IsSeq {
		out := make([]string, len(val.Seq))
		for i, s := range val.Seq {
			out[i] = expand.Custom(s, ns.Attrs)
		}
		return command.SeqValue(out)
	}
	return command.StringValue(expand.Custom(val.Str, ns.Attrs))
}

func (ns *Namespace) execMethodCall(m MethodCall) error {
	if !isAllCaps(m.Receiver) {
		return fmt.Errorf("dsl: method calls are only valid on environment variables (ALL_CAPS), got %q", m.Receiver)
	}
	h := ns.Env.Get(m.Receiver)

	switch m.Method {
	case "set":
		v, err := ns.oneArg(m.Args)
		if err != nil {
			return err
		}
		h.Set(v)
	case "prepend":
		v, err := ns.oneArg(m.Args)
		if err != nil {
			return err
		}
		h.Prepend(v)
	case "append":
		v, err := ns.oneArg(m.Args)
		if err != nil {
			return err
		}
		h.Append(v)
	case "unset":
		if len(m.Args) != 0 {
			return fmt.Errorf("dsl: %s.unset() takes no arguments", m.Receiver)
		}
		h.Unset()
	default:
		return fmt.Errorf("dsl: unknown handle method %q", m.Method)
	}
	return nil
}

// callFuncs is the explicit dispatch table the Design Notes call for: one
// entry per recorder method, keyed by the same canonical name the Command
// Model uses (command.Kind.Name()). internal/interp dispatches emission
// with a switch on command.Kind instead.
var callFuncs = map[string]func(ns *Namespace, args []Expr) error{
	"setenv":     (*Namespace).callSetenv,
	"unsetenv":   (*Namespace).callUnsetenv,
	"prependenv": (*Namespace).callPrependenv,
	"appendenv":  (*Namespace).callAppendenv,
	"alias":      (*Namespace).callAlias,
	"info":       (*Namespace).callInfo,
	"error":      (*Namespace).callError,
	"comment":    (*Namespace).callComment,
	"source":     (*Namespace).callSource,
	"command":    (*Namespace).callCommand,
}

func (ns *Namespace) execCall(c Call) error {
	fn, ok := callFuncs[c.Func]
	if !ok {
		return fmt.Errorf("dsl: unknown function %q", c.Func)
	}
	return fn(ns, c.Args)
}

func (ns *Namespace) callSetenv(args []Expr) error {
	key, val, err := ns.keyValueArgs(args, "setenv")
	if err != nil {
		return err
	}
	ns.Rec.Setenv(key, val)
	return nil
}

func (ns *Namespace) callUnsetenv(args []Expr) error {
	key, err := ns.keyArg(args, "unsetenv")
	if err != nil {
		return err
	}
	ns.Rec.Unsetenv(key)
	return nil
}

func (ns *Namespace) callPrependenv(args []Expr) error {
	key, val, err := ns.keyValueArgs(args, "prependenv")
	if err != nil {
		return err
	}
	ns.Rec.Prependenv(key, val)
	return nil
}

func (ns *Namespace) callAppendenv(args []Expr) error {
	key, val, err := ns.keyValueArgs(args, "appendenv")
	if err != nil {
		return err
	}
	ns.Rec.Appendenv(key, val)
	return nil
}

func (ns *Namespace) callAlias(args []Expr) error {
	key, val, err := ns.keyValueArgs(args, "alias")
	if err != nil {
		return err
	}
	ns.Rec.Alias(key, val)
	return nil
}

func (ns *Namespace) callInfo(args []Expr) error {
	v, err := ns.oneArg(args)
	if err != nil {
		return err
	}
	ns.Rec.Info(v)
	return nil
}

func (ns *Namespace) callError(args []Expr) error {
	v, err := ns.oneArg(args)
	if err != nil {
		return err
	}
	ns.Rec.Error(v)
	return nil
}

func (ns *Namespace) callComment(args []Expr) error {
	v, err := ns.oneArg(args)
	if err != nil {
		return err
	}
	ns.Rec.Comment(v)
	return nil
}

func (ns *Namespace) callSource(args []Expr) error {
	v, err := ns.oneArg(args)
	if err != nil {
		return err
	}
	ns.Rec.Source(v)
	return nil
}

func (ns *Namespace) callCommand(args []Expr) error {
	v, err := ns.oneArg(args)
	if err != nil {
		return err
	}
	ns.Rec.Command(v)
	return nil
}

func (ns *Namespace) oneArg(args []Expr) (command.Value, error) {
	if len(args) != 1 {
		return command.Value{}, fmt.Errorf("dsl: expected exactly 1 argument, got %d", len(args))
	}
	return ns.evalValue(args[0])
}

func (ns *Namespace) keyArg(args []Expr, fn string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("dsl: %s expects 1 argument (key), got %d", fn, len(args))
	}
	return ns.evalKey(args[0])
}

func (ns *Namespace) keyValueArgs(args []Expr, fn string) (string, command.Value, error) {
	if len(args) != 2 {
		return "", command.Value{}, fmt.Errorf("dsl: %s expects 2 arguments (key, value), got %d", fn, len(args))
	}
	key, err := ns.evalKey(args[0])
	if err != nil {
		return "", command.Value{}, err
	}
	val, err := ns.evalValue(args[1])
	if err != nil {
		return "", command.Value{}, err
	}
	return key, val, nil
}

// evalKey evaluates an argument expected to be an environment-variable
// name: a scalar string, never a sequence.
func (ns *Namespace) evalKey(e Expr) (string, error) {
	v, err := ns.evalValue(e)
	if err != nil {
		return "", err
	}
	if v.IsSeq {
		return "", fmt.Errorf("dsl: expected a single key, got a list")
	}
	return v.Str, nil
}

// evalValue evaluates an expression to a command.Value. String literals
// are returned verbatim (unexpanded — $ and ! sequences are resolved
// later, by the recorder's expander for custom-templates and by the
// target interpreter for env-templates). Identifiers resolve against the
// local/custom-namespace scope, which already holds expanded values.
func (ns *Namespace) evalValue(e Expr) (command.Value, error) {
	switch ex := e.(type) {
	case StringLit:
		return command.StringValue(ex.Value), nil
	case ListLit:
		out := make([]string, 0, len(ex.Elements))
		for _, el := range ex.Elements {
			v, err := ns.evalValue(el)
			if err != nil {
				return command.Value{}, err
			}
			if v.IsSeq {
				return command.Value{}, fmt.Errorf("dsl: nested lists are not supported")
			}
			out = append(out, v.Str)
		}
		return command.SeqValue(out), nil
	case Ident:
		raw, err := ns.Attrs.Get(ex.Name)
		if err != nil {
			return command.Value{}, fmt.Errorf("dsl: undefined variable %q", ex.Name)
		}
		switch rv := raw.(type) {
		case string:
			return command.StringValue(rv), nil
		case []string:
			return command.SeqValue(rv), nil
		default:
			return command.Value{}, fmt.Errorf("dsl: variable %q does not hold a usable value (%T)", ex.Name, raw)
		}
	default:
		return command.Value{}, fmt.Errorf("dsl: unhandled expression type %T", e)
	}
}
