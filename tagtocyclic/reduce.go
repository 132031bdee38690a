package tagtocyclic

import (
	"github.com/reusee/tagmachines/cyclic"
	"github.com/reusee/tagmachines/tags"
)

// Reduce builds a cyclic tag system with 2N rows for a tag system of N tags.
// Row i appends the encoded production of tag i, the last N rows are empty so
// that the second tag of every consumed pair never fires. One tag system step
// takes exactly 2N cyclic steps.
func Reduce(table *tags.Table, queue *tags.Queue) (*cyclic.Table, *cyclic.Queue, error) {
	n := len(table.Tags)
	rows := make([]cyclic.Word, 0, 2*n)
	for _, tag := range table.Tags {
		if tag.Halting {
			rows = append(rows, cyclic.Word{})
			continue
		}
		rows = append(rows, encodeAll(tag.Production, n))
	}
	for range n {
		rows = append(rows, cyclic.Word{})
	}

	halts := make([]cyclic.Word, 0, len(table.Halts))
	for _, idx := range table.Halts {
		halts = append(halts, Encode(idx, n))
	}

	ret, err := cyclic.NewTable(rows, halts)
	if err != nil {
		return nil, nil, err
	}
	return ret, cyclic.NewQueue(encodeAll(queue.Items(), n)...), nil
}
