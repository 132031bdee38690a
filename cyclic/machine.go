package cyclic

import (
	"fmt"

	"github.com/reusee/tagmachines/machines"
)

// DefaultMaxSteps is the step fuse separating runaway programs from
// legitimately long ones.
const DefaultMaxSteps = 10000

type Machine struct {
	Table    *Table
	Queue    *Queue
	Steps    int
	MaxSteps int
}

type Option func(*Machine)

// MaxSteps sets the step fuse. Values below one keep the default.
func MaxSteps(n int) Option {
	return func(m *Machine) {
		if n > 0 {
			m.MaxSteps = n
		}
	}
}

func NewMachine(table *Table, queue *Queue, opts ...Option) *Machine {
	m := &Machine{
		Table:    table,
		Queue:    queue,
		MaxSteps: DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AtBoundary reports whether the index starts a full table cycle.
func (m *Machine) AtBoundary() bool {
	return m.Queue.Index == 0
}

// Halted is only ever true at a cycle boundary.
func (m *Machine) Halted() bool {
	return m.AtBoundary() && m.Table.IsHalting(m.Queue.bits)
}

// Step pops one bit, appends the current row if the bit is set, and advances
// the index whatever the bit was.
func (m *Machine) Step() error {
	bit, err := m.Queue.Pop()
	if err != nil {
		return fmt.Errorf("step %d: %w", m.Steps+1, err)
	}
	if bit == machines.One {
		m.Queue.Push(m.Table.Rows[m.Queue.Index]...)
	}
	m.Queue.Index = (m.Queue.Index + 1) % m.Table.Size()
	m.Steps++
	if m.Steps > m.MaxSteps {
		return fmt.Errorf("%w: exceeded %d", machines.ErrStepLimit, m.MaxSteps)
	}
	return nil
}

// Run yields the queue before every step and once more after halting.
func (m *Machine) Run(yield func(*Queue, error) bool) {
	for {
		if !yield(m.Queue, nil) || m.Halted() {
			return
		}
		if err := m.Step(); err != nil {
			yield(nil, err)
			return
		}
	}
}
