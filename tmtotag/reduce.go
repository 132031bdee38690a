package tmtotag

import (
	"fmt"

	"github.com/reusee/tagmachines/machines"
	"github.com/reusee/tagmachines/tags"
	"github.com/reusee/tagmachines/turing"
)

// MaxInitialTags bounds the initial queue, which grows with the tape
// magnitudes rather than the tape lengths.
const MaxInitialTags = 1 << 24

// Reduce builds a 2-tag system simulating table from tape. Every turing state
// owns ten tags, see Role; the bit-tags of the halting state halt.
func Reduce(table *turing.Table, tape *turing.Tape) (*tags.Table, *tags.Queue, error) {
	names := make([]string, 0, len(table.States)*numRoles)
	for _, state := range table.States {
		for role := range Role(numRoles) {
			names = append(names, Name(state.Name, role))
		}
	}
	ret, err := tags.NewTable(names)
	if err != nil {
		return nil, nil, err
	}

	for _, state := range table.States {
		for role := range Role(numRoles) {
			v := Variant{
				State: state.Index,
				Role:  role,
			}
			if _, isBit := role.Bit(); isBit && state.Halting {
				if err := ret.SetHalting(v.Index()); err != nil {
					return nil, nil, err
				}
				continue
			}
			variants := production(table, v)
			indices := make([]tags.TagIndex, 0, len(variants))
			for _, p := range variants {
				indices = append(indices, p.Index())
			}
			if err := ret.SetProduction(v.Index(), indices); err != nil {
				return nil, nil, err
			}
		}
	}

	queue, err := initialQueue(tape)
	if err != nil {
		return nil, nil, err
	}
	return ret, queue, nil
}

// initialQueue encodes the tape as Hk_h Hk_x, then L Left times, then R Right
// times, each as an h-first pair; the last tag is dropped when the head is 0.
func initialQueue(tape *turing.Tape) (*tags.Queue, error) {
	left, err := tape.LeftNumber()
	if err != nil {
		return nil, fmt.Errorf("left side: %w", err)
	}
	right, err := tape.RightNumber()
	if err != nil {
		return nil, fmt.Errorf("right side: %w", err)
	}
	if left+right+1 > MaxInitialTags/2 {
		return nil, fmt.Errorf("%w: %d left and %d right cells to encode", machines.ErrTooLarge, left, right)
	}

	h := tape.Head
	x := 1 - h
	pair := func(family Family) [2]tags.TagIndex {
		return [2]tags.TagIndex{
			Variant{tape.State, bitRole(family, h)}.Index(),
			Variant{tape.State, bitRole(family, x)}.Index(),
		}
	}

	items := make([]tags.TagIndex, 0, 2*(left+right+1))
	hk := pair(FamilyH)
	items = append(items, hk[:]...)
	l := pair(FamilyL)
	for range left {
		items = append(items, l[:]...)
	}
	r := pair(FamilyR)
	for range right {
		items = append(items, r[:]...)
	}
	if h == machines.Zero {
		items = items[:len(items)-1]
	}
	return tags.NewQueue(items...), nil
}
