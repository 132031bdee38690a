package tags

import (
	"fmt"
	"strings"

	"github.com/reusee/tagmachines/machines"
)

type Machine struct {
	Table *Table
	Queue *Queue
	Steps int
}

func NewMachine(table *Table, queue *Queue) *Machine {
	return &Machine{
		Table: table,
		Queue: queue,
	}
}

// Halted reports whether the front tag is a halting tag. An empty queue can
// never reach a halting tag.
func (m *Machine) Halted() (bool, error) {
	front, ok := m.Queue.Front()
	if !ok {
		return false, fmt.Errorf("%w: empty queue after %d steps", machines.ErrQueueExhausted, m.Steps)
	}
	return m.Table.IsHalting(front), nil
}

// OnHead reports whether the front tag looks like a simulated head bit, a name
// starting with H and ending with 0 or 1. It only affects tracing.
func (m *Machine) OnHead() bool {
	front, ok := m.Queue.Front()
	if !ok {
		return false
	}
	name := m.Table.Name(front)
	return strings.HasPrefix(name, "H") &&
		(strings.HasSuffix(name, "0") || strings.HasSuffix(name, "1"))
}

// Step appends the production of the front tag, then removes two tags from
// the front. It does nothing on a halted machine.
func (m *Machine) Step() error {
	halted, err := m.Halted()
	if err != nil {
		return err
	}
	if halted {
		return nil
	}
	front, _ := m.Queue.Front()
	m.Queue.Push(m.Table.Tags[front].Production...)
	if err := m.Queue.PopTwo(); err != nil {
		return fmt.Errorf("step %d: %w", m.Steps+1, err)
	}
	m.Steps++
	return nil
}

// Run yields the queue before every step and once more after halting. The
// run is not bounded.
func (m *Machine) Run(yield func(*Queue, error) bool) {
	for {
		halted, err := m.Halted()
		if err != nil {
			yield(nil, err)
			return
		}
		if !yield(m.Queue, nil) || halted {
			return
		}
		if err := m.Step(); err != nil {
			yield(nil, err)
			return
		}
	}
}
