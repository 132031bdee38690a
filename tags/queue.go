package tags

import (
	"fmt"
	"slices"
	"strings"

	"github.com/reusee/tagmachines/machines"
)

type Queue struct {
	items []TagIndex
}

func NewQueue(items ...TagIndex) *Queue {
	return &Queue{
		items: slices.Clone(items),
	}
}

func (q *Queue) Len() int {
	return len(q.items)
}

func (q *Queue) Front() (TagIndex, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	return q.items[0], true
}

func (q *Queue) At(i int) TagIndex {
	return q.items[i]
}

func (q *Queue) Items() []TagIndex {
	return slices.Clone(q.items)
}

func (q *Queue) Clone() *Queue {
	return NewQueue(q.items...)
}

func (q *Queue) Push(items ...TagIndex) {
	q.items = append(q.items, items...)
}

// PopTwo removes the two front tags, leaving the queue untouched when it holds
// fewer.
func (q *Queue) PopTwo() error {
	if len(q.items) < 2 {
		return fmt.Errorf("%w: popping two tags from %d", machines.ErrQueueExhausted, len(q.items))
	}
	q.items = q.items[2:]
	return nil
}

func (q *Queue) Format(table *Table) string {
	names := make([]string, 0, len(q.items))
	for _, idx := range q.items {
		names = append(names, table.Name(idx))
	}
	return strings.Join(names, " ")
}
