package turing

import (
	"fmt"

	"github.com/reusee/tagmachines/machines"
)

type StateIndex int

type Jump struct {
	Write machines.Symbol
	Move  machines.Move
	Next  StateIndex
}

type State struct {
	Name    string
	Index   StateIndex
	Jumps   [2]Jump
	Halting bool
	defined [2]bool
}

// Table owns the states in a dense arena. Names are only used while parsing
// and printing.
type Table struct {
	States  []State
	Halt    StateIndex
	indices map[string]StateIndex
}

func NewTable(names []string, halt string) (*Table, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no states", machines.ErrMissingSection)
	}
	t := &Table{
		indices: make(map[string]StateIndex, len(names)),
	}
	for _, name := range names {
		if _, ok := t.indices[name]; ok {
			return nil, fmt.Errorf("%w: state %s", machines.ErrDuplicateName, name)
		}
		idx := StateIndex(len(t.States))
		t.indices[name] = idx
		t.States = append(t.States, State{
			Name:  name,
			Index: idx,
		})
	}
	haltIdx, err := t.Lookup(halt)
	if err != nil {
		return nil, err
	}
	t.Halt = haltIdx
	t.States[haltIdx].Halting = true
	return t, nil
}

func (t *Table) Lookup(name string) (StateIndex, error) {
	idx, ok := t.indices[name]
	if !ok {
		return 0, fmt.Errorf("%w: state %s", machines.ErrUndefinedName, name)
	}
	return idx, nil
}

func (t *Table) Name(idx StateIndex) string {
	return t.States[idx].Name
}

func (t *Table) IsHalting(idx StateIndex) bool {
	return idx == t.Halt
}

func (t *Table) SetJump(idx StateIndex, read machines.Symbol, jump Jump) error {
	state := &t.States[idx]
	if state.Halting {
		return fmt.Errorf("%w: halting state %s has a transition", machines.ErrMalformedRow, state.Name)
	}
	if state.defined[read] {
		return fmt.Errorf("%w: transition %s %c", machines.ErrDuplicateName, state.Name, read.Binary())
	}
	if int(jump.Next) < 0 || int(jump.Next) >= len(t.States) {
		return fmt.Errorf("%w: state index %d", machines.ErrUndefinedName, jump.Next)
	}
	state.Jumps[read] = jump
	state.defined[read] = true
	return nil
}

// Validate checks that every non-halting state defines both transitions.
func (t *Table) Validate() error {
	for _, state := range t.States {
		if state.Halting {
			continue
		}
		for read, ok := range state.defined {
			if !ok {
				return fmt.Errorf("%w: state %s on %d", machines.ErrMissingTransition, state.Name, read)
			}
		}
	}
	return nil
}
