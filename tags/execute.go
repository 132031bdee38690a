package tags

import (
	"bufio"
	"fmt"
	"io"

	"github.com/reusee/tagmachines/machines"
)

// Execute parses a description from r and runs it to halt, writing queue
// snapshots to w. At DumpNotable only the queues whose front is a simulated
// head bit are printed.
func Execute(r io.Reader, w io.Writer, level machines.DumpLevel) (*Machine, error) {
	table, queue, err := Parse(r)
	if err != nil {
		return nil, err
	}
	m := NewMachine(table, queue)
	bw := bufio.NewWriter(w)
	for queue, err := range m.Run {
		if err != nil {
			if ferr := bw.Flush(); ferr != nil {
				return m, ferr
			}
			return m, err
		}
		halted, _ := m.Halted()
		if halted ||
			level >= machines.DumpAll ||
			level == machines.DumpNotable && m.OnHead() {
			fmt.Fprintln(bw, queue.Format(table))
		}
	}
	return m, bw.Flush()
}
