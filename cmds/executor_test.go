package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{"+a"}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatalf("got %d", a)
	}

	if err := executor.Execute([]string{"a", "1"}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatalf("got %d", a)
	}

	err := executor.Execute([]string{"foo"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"a", "x"})
	if err == nil || !strings.Contains(err.Error(), "a: convert x to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"a"})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestErrorReturn(t *testing.T) {
	executor := NewExecutor()
	errBad := errors.New("bad")
	var got []string
	executor.Define("-x", Func(func(s string) error {
		if s == "bad" {
			return errBad
		}
		got = append(got, s)
		return nil
	}))

	if err := executor.Execute([]string{"-x", "v", "-x", "w"}); err != nil {
		t.Fatal(err)
	}
	if strings.Join(got, " ") != "v w" {
		t.Fatalf("got %v", got)
	}

	if err := executor.Execute([]string{"-x", "bad", "-x", "z"}); !errors.Is(err, errBad) {
		t.Fatalf("got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n *uint
	var calls int
	executor.Define("-n", Func(func(arg *uint) {
		n = arg
		calls++
	}))
	var s string
	executor.Define("-s", Var(&s))

	if err := executor.Execute([]string{"-n", "3", "-s", "foo"}); err != nil {
		t.Fatal(err)
	}
	if n == nil || *n != 3 || s != "foo" {
		t.Fatalf("got %v %s", n, s)
	}

	// followed by a command
	if err := executor.Execute([]string{"-n", "-s", "bar"}); err != nil {
		t.Fatal(err)
	}
	if n != nil || s != "bar" {
		t.Fatalf("got %v %s", n, s)
	}

	// at the end
	n = new(uint)
	if err := executor.Execute([]string{"-n"}); err != nil {
		t.Fatal(err)
	}
	if n != nil || calls != 3 {
		t.Fatalf("got %v %d", n, calls)
	}

	err := executor.Execute([]string{"-n", "x"})
	if err == nil || !strings.Contains(err.Error(), "convert x to unsigned int") {
		t.Fatalf("got %v", err)
	}
}

func TestVarAndSwitch(t *testing.T) {
	type Path string
	executor := NewExecutor()
	var path Path
	var steps int
	var tap bool
	executor.Define("-in", Var(&path))
	executor.Define("-max-steps", Var(&steps))
	executor.Define("-tap", Switch(&tap))

	if err := executor.Execute([]string{"-tap", "-in", "m.txt", "-max-steps", "42"}); err != nil {
		t.Fatal(err)
	}
	if path != "m.txt" || steps != 42 || !tap {
		t.Fatalf("got %s %d %v", path, steps, tap)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("a", Func(func() {}))
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		executor.Define("b", Func(func() {}).Alias("a"))
	}()
}
