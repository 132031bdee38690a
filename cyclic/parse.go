package cyclic

import (
	"fmt"
	"io"

	"github.com/reusee/tagmachines/machines"
)

var keywords = []string{"table:", "halt:", "initial:"}

func Parse(r io.Reader) (*Table, *Queue, error) {
	sections, err := machines.ReadSections(r, keywords...)
	if err != nil {
		return nil, nil, err
	}
	tableSection, haltSection, initialSection := sections[0], sections[1], sections[2]

	rows, err := parseWords(tableSection)
	if err != nil {
		return nil, nil, err
	}
	halts, err := parseWords(haltSection)
	if err != nil {
		return nil, nil, err
	}
	table, err := NewTable(rows, halts)
	if err != nil {
		return nil, nil, machines.WithLine(err, haltSection.Line)
	}

	initial := initialSection.Fields()
	if len(initial) != 1 {
		return nil, nil, machines.WithLine(
			fmt.Errorf("%w: expecting one initial word, got %d", machines.ErrMalformedRow, len(initial)),
			initialSection.Line,
		)
	}
	word, err := ParseWord(initial[0])
	if err != nil {
		return nil, nil, machines.WithLine(err, initialSection.Line)
	}

	return table, NewQueue(word...), nil
}

func parseWords(section *machines.Section) (ret []Word, err error) {
	for _, line := range section.Lines {
		for _, field := range line.Fields {
			word, err := ParseWord(field)
			if err != nil {
				return nil, machines.WithLine(err, line.Number)
			}
			ret = append(ret, word)
		}
	}
	return
}
