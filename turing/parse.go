package turing

import (
	"fmt"
	"io"

	"github.com/reusee/tagmachines/machines"
)

var keywords = []string{"states:", "halt:", "table:", "initial:"}

func Parse(r io.Reader) (*Table, *Tape, error) {
	sections, err := machines.ReadSections(r, keywords...)
	if err != nil {
		return nil, nil, err
	}
	statesSection, haltSection, tableSection, initialSection := sections[0], sections[1], sections[2], sections[3]

	halts := haltSection.Fields()
	if len(halts) != 1 {
		return nil, nil, machines.WithLine(
			fmt.Errorf("%w: expecting one halting state, got %d", machines.ErrMalformedRow, len(halts)),
			haltSection.Line,
		)
	}
	table, err := NewTable(statesSection.Fields(), halts[0])
	if err != nil {
		return nil, nil, machines.WithLine(err, statesSection.Line)
	}

	for _, line := range tableSection.Lines {
		if err := parseRow(table, line.Fields); err != nil {
			return nil, nil, machines.WithLine(err, line.Number)
		}
	}
	if err := table.Validate(); err != nil {
		return nil, nil, machines.WithLine(err, tableSection.Line)
	}

	initial := initialSection.Fields()
	if len(initial) != 1 {
		return nil, nil, machines.WithLine(
			fmt.Errorf("%w: expecting one tape, got %d", machines.ErrMalformedTape, len(initial)),
			initialSection.Line,
		)
	}
	tape, err := ParseTape(initial[0], table)
	if err != nil {
		return nil, nil, machines.WithLine(err, initialSection.Line)
	}

	return table, tape, nil
}

func parseRow(table *Table, fields []string) error {
	if len(fields) != 5 {
		return fmt.Errorf("%w: expecting <state> <read> <write> <next> <L|R>, got %v", machines.ErrMalformedRow, fields)
	}
	state, err := table.Lookup(fields[0])
	if err != nil {
		return err
	}
	read, err := parseSymbol(fields[1])
	if err != nil {
		return err
	}
	write, err := parseSymbol(fields[2])
	if err != nil {
		return err
	}
	next, err := table.Lookup(fields[3])
	if err != nil {
		return err
	}
	move, err := machines.ParseMove(fields[4])
	if err != nil {
		return err
	}
	return table.SetJump(state, read, Jump{
		Write: write,
		Move:  move,
		Next:  next,
	})
}

func parseSymbol(str string) (machines.Symbol, error) {
	if len(str) != 1 {
		return 0, fmt.Errorf("%w: %q", machines.ErrUnknownSymbol, str)
	}
	return machines.ParseBinary(str[0])
}
