package turing

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/reusee/tagmachines/machines"
)

const trivialMachine = `
states:
a hlt
halt:
hlt
table:
a 0 1 hlt R
a 1 1 hlt R
initial:
0[a]0
`

const walkingMachine = `
states:
a b c hlt

halt:
hlt

table:
a 0 1 b R
a 1 0 a L
b 0 1 c L
b 1 1 b R
c 0 0 hlt R
c 1 1 c L

initial:
101[a]1
`

func TestTrivialHalt(t *testing.T) {
	buf := new(bytes.Buffer)
	m, err := Execute(strings.NewReader(trivialMachine), buf, machines.DumpFinal)
	if err != nil {
		t.Fatal(err)
	}
	if m.Steps != 1 {
		t.Fatalf("got %d", m.Steps)
	}
	if !m.Halted() {
		t.Fatal()
	}
	tape := m.Tape
	if !slices.Equal(tape.Left, []machines.Symbol{machines.One}) {
		t.Fatalf("got %v", tape.Left)
	}
	if tape.Head != machines.Zero {
		t.Fatalf("got %v", tape.Head)
	}
	if len(tape.Right) != 0 {
		t.Fatalf("got %v", tape.Right)
	}
	if m.Table.Name(tape.State) != "hlt" {
		t.Fatalf("got %s", m.Table.Name(tape.State))
	}
	if str := buf.String(); str != "10[hlt]\n" {
		t.Fatalf("got %q", str)
	}
}

func TestTrace(t *testing.T) {
	buf := new(bytes.Buffer)
	m, err := Execute(strings.NewReader(walkingMachine), buf, machines.DumpNotable)
	if err != nil {
		t.Fatal(err)
	}
	if m.Steps != 6 {
		t.Fatalf("got %d", m.Steps)
	}
	expected := strings.Join([]string{
		"101[a]1",
		"10[a]01",
		"110[b]1",
		"11[c]11",
		"1[c]111",
		"0[c]1111",
		"1[hlt]111",
	}, "\n") + "\n"
	if str := buf.String(); str != expected {
		t.Fatalf("got %q", str)
	}
}

func TestRunStop(t *testing.T) {
	table, tape, err := Parse(strings.NewReader(walkingMachine))
	if err != nil {
		t.Fatal(err)
	}
	m := NewMachine(table, tape)
	n := 0
	for range m.Run {
		n++
		if n == 3 {
			break
		}
	}
	if m.Steps != 2 {
		t.Fatalf("got %d", m.Steps)
	}
}

func TestStepOnHalted(t *testing.T) {
	table, tape, err := Parse(strings.NewReader(strings.Replace(trivialMachine, "0[a]0", "1[hlt]", 1)))
	if err != nil {
		t.Fatal(err)
	}
	m := NewMachine(table, tape)
	m.Step()
	if m.Steps != 0 {
		t.Fatalf("got %d", m.Steps)
	}
	if str := m.Tape.Format(table); str != "1[hlt]" {
		t.Fatalf("got %s", str)
	}
}

func TestFormat(t *testing.T) {
	table, tape, err := Parse(strings.NewReader(walkingMachine))
	if err != nil {
		t.Fatal(err)
	}
	buf := new(bytes.Buffer)
	if err := Format(buf, table, tape); err != nil {
		t.Fatal(err)
	}
	table2, tape2, err := Parse(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("%v\n%s", err, buf.Bytes())
	}
	buf2 := new(bytes.Buffer)
	if err := Format(buf2, table2, tape2); err != nil {
		t.Fatal(err)
	}
	if buf.String() != buf2.String() {
		t.Fatalf("got %s", buf2.Bytes())
	}
	if !strings.Contains(buf.String(), "a 1 0 a L\n") {
		t.Fatalf("got %s", buf.Bytes())
	}
}

func TestTapeNumbers(t *testing.T) {
	table, err := NewTable([]string{"a"}, "a")
	if err != nil {
		t.Fatal(err)
	}
	tape, err := ParseTape("1101[a]011", table)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := tape.LeftNumber(); n != 6 {
		t.Fatalf("got %d", n)
	}
	if tape.Head != machines.One {
		t.Fatal()
	}
	if n, _ := tape.RightNumber(); n != 3 {
		t.Fatalf("got %d", n)
	}
	clone := tape.Clone()
	clone.MoveLeft(machines.One)
	if str := tape.Format(table); str != "1101[a]011" {
		t.Fatalf("got %s", str)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"unknown read symbol", strings.Replace(trivialMachine, "a 0 1 hlt R", "a 2 1 hlt R", 1), machines.ErrUnknownSymbol},
		{"unknown move", strings.Replace(trivialMachine, "a 0 1 hlt R", "a 0 1 hlt U", 1), machines.ErrUnknownMove},
		{"undefined state", strings.Replace(trivialMachine, "a 0 1 hlt R", "a 0 1 zzz R", 1), machines.ErrUndefinedName},
		{"undefined halt", strings.Replace(trivialMachine, "halt:\nhlt", "halt:\nzzz", 1), machines.ErrUndefinedName},
		{"missing transition", strings.Replace(trivialMachine, "a 1 1 hlt R\n", "", 1), machines.ErrMissingTransition},
		{"duplicated transition", strings.Replace(trivialMachine, "a 1 1 hlt R", "a 0 1 hlt R", 1), machines.ErrDuplicateName},
		{"halting transition", strings.Replace(trivialMachine, "a 1 1 hlt R", "a 1 1 hlt R\nhlt 0 0 a L", 1), machines.ErrMalformedRow},
		{"short row", strings.Replace(trivialMachine, "a 0 1 hlt R", "a 0 1 hlt", 1), machines.ErrMalformedRow},
		{"no head", strings.Replace(trivialMachine, "0[a]0", "[a]0", 1), machines.ErrMalformedTape},
		{"no bracket", strings.Replace(trivialMachine, "0[a]0", "0a]0", 1), machines.ErrMalformedTape},
		{"two brackets", strings.Replace(trivialMachine, "0[a]0", "0[a]0]", 1), machines.ErrMalformedTape},
		{"reversed brackets", strings.Replace(trivialMachine, "0[a]0", "0]a[0", 1), machines.ErrMalformedTape},
		{"tape symbol", strings.Replace(trivialMachine, "0[a]0", "0[a]2", 1), machines.ErrUnknownSymbol},
		{"tape state", strings.Replace(trivialMachine, "0[a]0", "0[b]0", 1), machines.ErrUndefinedName},
		{"missing initial", strings.Replace(trivialMachine, "initial:\n0[a]0", "", 1), machines.ErrMissingSection},
		{"duplicated state", strings.Replace(trivialMachine, "a hlt", "a a hlt", 1), machines.ErrDuplicateName},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			_, err := Execute(strings.NewReader(c.src), buf, machines.DumpAll)
			if !errors.Is(err, c.err) {
				t.Fatalf("got %v", err)
			}
			if buf.Len() != 0 {
				t.Fatalf("got output %q", buf.String())
			}
		})
	}
}
