package turing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/reusee/tagmachines/machines"
)

// Tape holds the cells around the head. Left is stored farthest first, so the
// cell next to the head is its last element; Right is stored nearest first.
// Cells beyond either end read as zero.
type Tape struct {
	Head  machines.Symbol
	Left  []machines.Symbol
	Right []machines.Symbol
	State StateIndex
}

func (t *Tape) Clone() *Tape {
	return &Tape{
		Head:  t.Head,
		Left:  slices.Clone(t.Left),
		Right: slices.Clone(t.Right),
		State: t.State,
	}
}

func (t *Tape) MoveRight(write machines.Symbol) {
	t.Left = append(t.Left, write)
	if len(t.Right) > 0 {
		t.Head = t.Right[0]
		t.Right = t.Right[1:]
	} else {
		t.Head = machines.Zero
	}
	// leading blank
	if t.Left[0] == machines.Zero {
		t.Left = t.Left[1:]
	}
}

func (t *Tape) MoveLeft(write machines.Symbol) {
	t.Right = slices.Insert(t.Right, 0, write)
	if n := len(t.Left); n > 0 {
		t.Head = t.Left[n-1]
		t.Left = t.Left[:n-1]
	} else {
		t.Head = machines.Zero
	}
	// trailing blank
	if n := len(t.Right); t.Right[n-1] == machines.Zero {
		t.Right = t.Right[:n-1]
	}
}

// LeftNumber reads Left as stored, most significant first.
func (t *Tape) LeftNumber() (uint64, error) {
	return machines.Number(t.Left)
}

// RightNumber reads Right as stored, most significant first.
func (t *Tape) RightNumber() (uint64, error) {
	return machines.Number(t.Right)
}

// ParseTape reads a tape like 10[a]01: the character just before '[' is the
// head, everything before it the left side, everything after ']' the right
// side.
func ParseTape(str string, table *Table) (*Tape, error) {
	if strings.Count(str, "[") != 1 || strings.Count(str, "]") != 1 {
		return nil, fmt.Errorf("%w: %q needs exactly one '[' and one ']'", machines.ErrMalformedTape, str)
	}
	lb := strings.IndexByte(str, '[')
	rb := strings.IndexByte(str, ']')
	if rb < lb {
		return nil, fmt.Errorf("%w: %q has ']' before '['", machines.ErrMalformedTape, str)
	}
	if lb == 0 {
		return nil, fmt.Errorf("%w: %q has no head symbol", machines.ErrMalformedTape, str)
	}

	tape := new(Tape)
	var err error
	for i := 0; i < lb-1; i++ {
		sym, err := machines.ParseBinary(str[i])
		if err != nil {
			return nil, err
		}
		tape.Left = append(tape.Left, sym)
	}
	tape.Head, err = machines.ParseBinary(str[lb-1])
	if err != nil {
		return nil, err
	}
	for i := rb + 1; i < len(str); i++ {
		sym, err := machines.ParseBinary(str[i])
		if err != nil {
			return nil, err
		}
		tape.Right = append(tape.Right, sym)
	}
	tape.State, err = table.Lookup(str[lb+1 : rb])
	if err != nil {
		return nil, err
	}
	return tape, nil
}

func (t *Tape) Format(table *Table) string {
	var b strings.Builder
	for _, sym := range t.Left {
		b.WriteByte(sym.Binary())
	}
	b.WriteByte(t.Head.Binary())
	b.WriteByte('[')
	b.WriteString(table.Name(t.State))
	b.WriteByte(']')
	for _, sym := range t.Right {
		b.WriteByte(sym.Binary())
	}
	return b.String()
}
