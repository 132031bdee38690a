package turing

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Format writes a description that Parse reads back.
func Format(w io.Writer, table *Table, tape *Tape) error {
	bw := bufio.NewWriter(w)

	names := make([]string, 0, len(table.States))
	for _, state := range table.States {
		names = append(names, state.Name)
	}
	fmt.Fprintf(bw, "states:\n%s\n\n", strings.Join(names, " "))
	fmt.Fprintf(bw, "halt:\n%s\n\n", table.Name(table.Halt))

	fmt.Fprintf(bw, "table:\n")
	for _, state := range table.States {
		if state.Halting {
			continue
		}
		for read, jump := range state.Jumps {
			fmt.Fprintf(bw, "%s %d %c %s %s\n",
				state.Name,
				read,
				jump.Write.Binary(),
				table.Name(jump.Next),
				jump.Move,
			)
		}
	}
	fmt.Fprintf(bw, "\n")

	fmt.Fprintf(bw, "initial:\n%s\n", tape.Format(table))
	return bw.Flush()
}
