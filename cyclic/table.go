package cyclic

import (
	"fmt"
	"slices"

	"github.com/reusee/tagmachines/machines"
)

// Table selects Rows by the cyclic index. All halting words share HaltSize.
type Table struct {
	Rows     []Word
	Halts    []Word
	HaltSize int
	halts    map[string]bool
}

func NewTable(rows []Word, halts []Word) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", machines.ErrMalformedRow)
	}
	t := &Table{
		halts: make(map[string]bool, len(halts)),
	}
	for _, row := range rows {
		t.Rows = append(t.Rows, slices.Clone(row))
	}
	for i, halt := range halts {
		if len(halt) == 0 {
			return nil, fmt.Errorf("%w: empty halting word", machines.ErrMalformedRow)
		}
		if i == 0 {
			t.HaltSize = len(halt)
		} else if len(halt) != t.HaltSize {
			return nil, fmt.Errorf("%w: %s is not %d long", machines.ErrHaltSize, halt, t.HaltSize)
		}
		key := halt.String()
		if t.halts[key] {
			continue
		}
		t.halts[key] = true
		t.Halts = append(t.Halts, slices.Clone(halt))
	}
	return t, nil
}

func (t *Table) Size() int {
	return len(t.Rows)
}

// IsHalting reports whether bits start with a halting word. A table without
// halting words never halts.
func (t *Table) IsHalting(bits []machines.Symbol) bool {
	if t.HaltSize == 0 || len(bits) < t.HaltSize {
		return false
	}
	return t.halts[Word(bits[:t.HaltSize]).String()]
}
