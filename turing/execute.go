package turing

import (
	"bufio"
	"fmt"
	"io"

	"github.com/reusee/tagmachines/machines"
)

// Execute parses a description from r and runs it to halt, writing tape
// snapshots to w. Every step is a notable boundary for a turing machine, so
// any level above zero prints all of them.
func Execute(r io.Reader, w io.Writer, level machines.DumpLevel) (*Machine, error) {
	table, tape, err := Parse(r)
	if err != nil {
		return nil, err
	}
	m := NewMachine(table, tape)
	bw := bufio.NewWriter(w)
	for tape := range m.Run {
		if level > machines.DumpFinal || m.Halted() {
			fmt.Fprintln(bw, tape.Format(table))
		}
	}
	return m, bw.Flush()
}
