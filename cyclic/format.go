package cyclic

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func joinWords(words []Word) string {
	strs := make([]string, 0, len(words))
	for _, word := range words {
		strs = append(strs, word.String())
	}
	return strings.Join(strs, " ")
}

// Format writes a description that Parse reads back.
func Format(w io.Writer, table *Table, queue *Queue) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "table:\n%s\n\n", joinWords(table.Rows))
	fmt.Fprintf(bw, "halt:\n%s\n\n", joinWords(table.Halts))
	fmt.Fprintf(bw, "initial:\n%s\n", queue.Format())
	return bw.Flush()
}
