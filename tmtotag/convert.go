package tmtotag

import (
	"io"

	"github.com/reusee/tagmachines/tags"
	"github.com/reusee/tagmachines/turing"
)

// Convert reads a turing machine description and writes the equivalent tag
// system description.
func Convert(r io.Reader, w io.Writer) error {
	table, tape, err := turing.Parse(r)
	if err != nil {
		return err
	}
	tagTable, queue, err := Reduce(table, tape)
	if err != nil {
		return err
	}
	return tags.Format(w, tagTable, queue)
}
