package tagtocyclic

import (
	"io"

	"github.com/reusee/tagmachines/cyclic"
	"github.com/reusee/tagmachines/tags"
)

// Convert reads a tag system description and writes the equivalent cyclic
// tag system description.
func Convert(r io.Reader, w io.Writer) error {
	table, queue, err := tags.Parse(r)
	if err != nil {
		return err
	}
	cyclicTable, cyclicQueue, err := Reduce(table, queue)
	if err != nil {
		return err
	}
	return cyclic.Format(w, cyclicTable, cyclicQueue)
}
