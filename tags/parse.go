package tags

import (
	"fmt"
	"io"

	"github.com/reusee/tagmachines/machines"
)

var keywords = []string{"tags:", "halt:", "table:", "initial:"}

func Parse(r io.Reader) (*Table, *Queue, error) {
	sections, err := machines.ReadSections(r, keywords...)
	if err != nil {
		return nil, nil, err
	}
	tagsSection, haltSection, tableSection, initialSection := sections[0], sections[1], sections[2], sections[3]

	table, err := NewTable(tagsSection.Fields())
	if err != nil {
		return nil, nil, machines.WithLine(err, tagsSection.Line)
	}

	for _, line := range haltSection.Lines {
		for _, name := range line.Fields {
			idx, err := table.Lookup(name)
			if err != nil {
				return nil, nil, machines.WithLine(err, line.Number)
			}
			if err := table.SetHalting(idx); err != nil {
				return nil, nil, machines.WithLine(err, line.Number)
			}
		}
	}

	for _, line := range tableSection.Lines {
		if err := parseRow(table, line.Fields); err != nil {
			return nil, nil, machines.WithLine(err, line.Number)
		}
	}
	if err := table.Validate(); err != nil {
		return nil, nil, machines.WithLine(err, tableSection.Line)
	}

	queue := NewQueue()
	for _, line := range initialSection.Lines {
		for _, name := range line.Fields {
			idx, err := table.Lookup(name)
			if err != nil {
				return nil, nil, machines.WithLine(err, line.Number)
			}
			queue.Push(idx)
		}
	}

	return table, queue, nil
}

func parseRow(table *Table, fields []string) error {
	if len(fields) < 2 || fields[1] != "->" {
		return fmt.Errorf("%w: expecting <tag> -> <tags...>, got %v", machines.ErrMalformedRow, fields)
	}
	idx, err := table.Lookup(fields[0])
	if err != nil {
		return err
	}
	names := fields[2:]
	if len(names) == 1 && names[0] == "-" {
		names = nil
	}
	production := make([]TagIndex, 0, len(names))
	for _, name := range names {
		p, err := table.Lookup(name)
		if err != nil {
			return err
		}
		production = append(production, p)
	}
	return table.SetProduction(idx, production)
}
