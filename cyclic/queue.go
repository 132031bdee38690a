package cyclic

import (
	"fmt"
	"slices"

	"github.com/reusee/tagmachines/machines"
)

// Queue is the bit queue plus the cyclic index selecting the next row.
type Queue struct {
	bits  []machines.Symbol
	Index int
}

func NewQueue(bits ...machines.Symbol) *Queue {
	return &Queue{
		bits: slices.Clone(bits),
	}
}

func (q *Queue) Len() int {
	return len(q.bits)
}

func (q *Queue) Bits() []machines.Symbol {
	return slices.Clone(q.bits)
}

func (q *Queue) Clone() *Queue {
	ret := NewQueue(q.bits...)
	ret.Index = q.Index
	return ret
}

func (q *Queue) Push(bits ...machines.Symbol) {
	q.bits = append(q.bits, bits...)
}

func (q *Queue) Pop() (machines.Symbol, error) {
	if len(q.bits) == 0 {
		return 0, fmt.Errorf("%w: popping from empty queue", machines.ErrQueueExhausted)
	}
	ret := q.bits[0]
	q.bits = q.bits[1:]
	return ret, nil
}

func (q *Queue) Format() string {
	return Word(q.bits).String()
}
