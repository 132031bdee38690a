package tags

import (
	"fmt"
	"slices"

	"github.com/reusee/tagmachines/machines"
)

type TagIndex int

type Tag struct {
	Name       string
	Index      TagIndex
	Halting    bool
	Production []TagIndex
	defined    bool
}

// Table owns the tags in a dense arena; queues and productions refer to tags
// by index only.
type Table struct {
	Tags    []Tag
	Halts   []TagIndex
	indices map[string]TagIndex
}

func NewTable(names []string) (*Table, error) {
	t := &Table{
		indices: make(map[string]TagIndex, len(names)),
	}
	for _, name := range names {
		if _, ok := t.indices[name]; ok {
			return nil, fmt.Errorf("%w: tag %s", machines.ErrDuplicateName, name)
		}
		idx := TagIndex(len(t.Tags))
		t.indices[name] = idx
		t.Tags = append(t.Tags, Tag{
			Name:  name,
			Index: idx,
		})
	}
	return t, nil
}

func (t *Table) Lookup(name string) (TagIndex, error) {
	idx, ok := t.indices[name]
	if !ok {
		return 0, fmt.Errorf("%w: tag %s", machines.ErrUndefinedName, name)
	}
	return idx, nil
}

func (t *Table) Name(idx TagIndex) string {
	return t.Tags[idx].Name
}

func (t *Table) IsHalting(idx TagIndex) bool {
	return t.Tags[idx].Halting
}

func (t *Table) SetHalting(idx TagIndex) error {
	tag := &t.Tags[idx]
	if tag.Halting {
		return fmt.Errorf("%w: halting tag %s", machines.ErrDuplicateName, tag.Name)
	}
	if tag.defined {
		return fmt.Errorf("%w: halting tag %s has a production", machines.ErrMalformedRow, tag.Name)
	}
	tag.Halting = true
	pos, _ := slices.BinarySearch(t.Halts, idx)
	t.Halts = slices.Insert(t.Halts, pos, idx)
	return nil
}

func (t *Table) SetProduction(idx TagIndex, production []TagIndex) error {
	tag := &t.Tags[idx]
	if tag.Halting {
		return fmt.Errorf("%w: halting tag %s has a production", machines.ErrMalformedRow, tag.Name)
	}
	if tag.defined {
		return fmt.Errorf("%w: production of %s", machines.ErrDuplicateName, tag.Name)
	}
	for _, p := range production {
		if int(p) < 0 || int(p) >= len(t.Tags) {
			return fmt.Errorf("%w: tag index %d", machines.ErrUndefinedName, p)
		}
	}
	tag.Production = slices.Clone(production)
	tag.defined = true
	return nil
}

// Validate checks that every non-halting tag owns a production, possibly empty.
func (t *Table) Validate() error {
	for _, tag := range t.Tags {
		if !tag.Halting && !tag.defined {
			return fmt.Errorf("%w: tag %s has no production", machines.ErrMissingTransition, tag.Name)
		}
	}
	return nil
}
