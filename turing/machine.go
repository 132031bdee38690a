package turing

import "github.com/reusee/tagmachines/machines"

type Machine struct {
	Table *Table
	Tape  *Tape
	Steps int
}

func NewMachine(table *Table, tape *Tape) *Machine {
	return &Machine{
		Table: table,
		Tape:  tape,
	}
}

func (m *Machine) Halted() bool {
	return m.Table.IsHalting(m.Tape.State)
}

// Step applies one transition. It does nothing on a halted machine.
func (m *Machine) Step() {
	if m.Halted() {
		return
	}
	jump := m.Table.States[m.Tape.State].Jumps[m.Tape.Head]
	switch jump.Move {
	case machines.Left:
		m.Tape.MoveLeft(jump.Write)
	case machines.Right:
		m.Tape.MoveRight(jump.Write)
	}
	m.Tape.State = jump.Next
	m.Steps++
}

// Run yields the tape before every step and once more after halting. The
// yielded tape is mutated by later steps; clone it to keep it. A machine that
// never halts runs forever.
func (m *Machine) Run(yield func(*Tape) bool) {
	for {
		if !yield(m.Tape) {
			return
		}
		if m.Halted() {
			return
		}
		m.Step()
	}
}
