package tags

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Format writes a description that Parse reads back. Empty productions are
// written as -.
func Format(w io.Writer, table *Table, queue *Queue) error {
	bw := bufio.NewWriter(w)

	names := make([]string, 0, len(table.Tags))
	for _, tag := range table.Tags {
		names = append(names, tag.Name)
	}
	fmt.Fprintf(bw, "tags:\n%s\n\n", strings.Join(names, " "))

	halts := make([]string, 0, len(table.Halts))
	for _, idx := range table.Halts {
		halts = append(halts, table.Name(idx))
	}
	fmt.Fprintf(bw, "halt:\n%s\n\n", strings.Join(halts, " "))

	fmt.Fprintf(bw, "table:\n")
	for _, tag := range table.Tags {
		if tag.Halting {
			continue
		}
		production := "-"
		if len(tag.Production) > 0 {
			production = NewQueue(tag.Production...).Format(table)
		}
		fmt.Fprintf(bw, "%s -> %s\n", tag.Name, production)
	}
	fmt.Fprintf(bw, "\n")

	fmt.Fprintf(bw, "initial:\n%s\n", queue.Format(table))
	return bw.Flush()
}
