package shells

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tagmachines/logs"
	"github.com/reusee/tagmachines/modes"
	"github.com/reusee/tagmachines/programs"
)

type call struct {
	name programs.Name
	args []string
}

func TestDispatch(t *testing.T) {
	output := new(bytes.Buffer)
	var calls []call
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() programs.Output {
			return output
		},
		func() logs.Writer {
			return io.Discard
		},
		func() programs.Run {
			return func(ctx context.Context, name programs.Name, args []string) error {
				calls = append(calls, call{name, args})
				if slices.Contains(args, "bad") {
					return errors.New("bad")
				}
				return nil
			}
		},
	).Call(func(
		dispatch Dispatch,
	) {
		for _, line := range []string{
			"ETM -in m.txt",
			"/usr/local/bin/CTS -in t.txt -out c.txt",
			"foo -in m.txt",
			"etm",
			"ECTS -in bad",
		} {
			if dispatch(t.Context(), line) {
				t.Fatalf("%s: quit", line)
			}
		}
		if !dispatch(t.Context(), "q") {
			t.Fatal()
		}
	})

	if output.String() != "ok\nok\nno such program\nno such program\nerror\n" {
		t.Fatalf("got %q", output.String())
	}
	if len(calls) != 3 ||
		calls[0].name != programs.ETM ||
		!slices.Equal(calls[0].args, []string{"-in", "m.txt"}) ||
		calls[1].name != programs.CTS ||
		!slices.Equal(calls[1].args, []string{"-in", "t.txt", "-out", "c.txt"}) ||
		calls[2].name != programs.ECTS {
		t.Fatalf("got %+v", calls)
	}
}

func TestDispatchRuns(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "s.txt")
	if err := os.WriteFile(in, []byte(`
tags: x h
halt: h
table:
x -> h
initial: x x
`), 0644); err != nil {
		t.Fatal(err)
	}

	output := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() programs.Output {
			return output
		},
		func() logs.Writer {
			return io.Discard
		},
	).Call(func(
		dispatch Dispatch,
	) {
		dispatch(t.Context(), "ETS -in "+in)
		dispatch(t.Context(), "ETS -in "+filepath.Join(dir, "none.txt"))
	})

	if output.String() != "ok\nerror\n" {
		t.Fatalf("got %q", output.String())
	}
	content, err := os.ReadFile(filepath.Join(dir, "s_dump.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "h\n" {
		t.Fatalf("got %q", content)
	}
}
