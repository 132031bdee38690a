package programs

import (
	"io"

	"github.com/reusee/tagmachines/cyclic"
	"github.com/reusee/tagmachines/machines"
	"github.com/reusee/tagmachines/tagtocyclic"
	"github.com/reusee/tagmachines/tags"
	"github.com/reusee/tagmachines/tmtotag"
	"github.com/reusee/tagmachines/turing"
)

// result summarizes a machine run. It is nil when the description did not
// parse.
type result struct {
	steps   int
	halted  bool
	globals map[string]any
}

func executeTuring(r io.Reader, w io.Writer, level machines.DumpLevel) (*result, error) {
	m, err := turing.Execute(r, w, level)
	if m == nil {
		return nil, err
	}
	globals := map[string]any{
		"steps": m.Steps,
		"tape":  m.Tape.Format(m.Table),
		"state": m.Table.Name(m.Tape.State),
		"head":  int(m.Tape.Head),
	}
	if left, e := m.Tape.LeftNumber(); e == nil {
		globals["left"] = left
	}
	if right, e := m.Tape.RightNumber(); e == nil {
		globals["right"] = right
	}
	return &result{
		steps:   m.Steps,
		halted:  m.Halted(),
		globals: globals,
	}, err
}

func executeTags(r io.Reader, w io.Writer, level machines.DumpLevel) (*result, error) {
	m, err := tags.Execute(r, w, level)
	if m == nil {
		return nil, err
	}
	halted, _ := m.Halted()
	globals := map[string]any{
		"steps": m.Steps,
		"queue": m.Queue.Format(m.Table),
	}
	// meaningful when the system was converted from a turing machine
	if conf, ok := tmtotag.Decode(m.Queue); ok {
		globals["configuration"] = map[string]any{
			"head_tag": m.Table.Name(m.Queue.At(0)),
			"head":     int(conf.Head),
			"left":     conf.Left,
			"right":    conf.Right,
		}
	}
	return &result{
		steps:   m.Steps,
		halted:  halted,
		globals: globals,
	}, err
}

func executeCyclic(r io.Reader, w io.Writer, level machines.DumpLevel, maxSteps int) (*result, error) {
	m, err := cyclic.Execute(r, w, level, cyclic.MaxSteps(maxSteps))
	if m == nil {
		return nil, err
	}
	globals := map[string]any{
		"steps": m.Steps,
		"queue": m.Queue.Format(),
		"index": m.Queue.Index,
	}
	// meaningful when the system was converted from a tag system
	if m.Table.Size()%2 == 0 {
		if indices, e := tagtocyclic.Decode(m.Queue.Bits(), m.Table.Size()/2); e == nil {
			globals["tags"] = indices
		}
	}
	return &result{
		steps:   m.Steps,
		halted:  m.Halted(),
		globals: globals,
	}, err
}
