package cyclic

import (
	"bufio"
	"fmt"
	"io"

	"github.com/reusee/tagmachines/machines"
)

// Execute parses a description from r and runs it to halt, writing queue
// snapshots to w. At DumpNotable only cycle boundaries are printed.
func Execute(r io.Reader, w io.Writer, level machines.DumpLevel, opts ...Option) (*Machine, error) {
	table, queue, err := Parse(r)
	if err != nil {
		return nil, err
	}
	m := NewMachine(table, queue, opts...)
	bw := bufio.NewWriter(w)
	for queue, err := range m.Run {
		if err != nil {
			if ferr := bw.Flush(); ferr != nil {
				return m, ferr
			}
			return m, err
		}
		if m.Halted() ||
			level >= machines.DumpAll ||
			level == machines.DumpNotable && m.AtBoundary() {
			fmt.Fprintln(bw, queue.Format())
		}
	}
	return m, bw.Flush()
}
