package tmtotag

import (
	"github.com/reusee/tagmachines/machines"
	"github.com/reusee/tagmachines/turing"
)

func repeat(v Variant, n int) []Variant {
	ret := make([]Variant, n)
	for i := range ret {
		ret[i] = v
	}
	return ret
}

// production lists what the tag v appends. Bit-tags of the halting state have
// no production and must not be passed here.
func production(table *turing.Table, v Variant) (ret []Variant) {
	if v.Role.IsDispatcher() {
		family := v.Role.Family()
		return []Variant{
			{v.State, bitRole(family, machines.One)},
			{v.State, bitRole(family, machines.Zero)},
		}
	}
	if v.Role == Rkk {
		return repeat(Variant{v.State, Rk}, 2)
	}

	read, _ := v.Role.Bit()
	jump := table.States[v.State].Jumps[read]
	next := jump.Next
	a := jump.Write == machines.One && jump.Move == machines.Left
	b := read == machines.Zero
	c := jump.Write == machines.One && jump.Move == machines.Right
	d := jump.Move == machines.Right
	e := jump.Move == machines.Left

	switch v.Role.Family() {

	case FamilyH:
		if a {
			ret = append(ret, repeat(Variant{next, Rkk}, 2)...)
		}
		if b {
			ret = append(ret, Variant{next, Hk})
		}
		ret = append(ret, Variant{next, Hk})
		if c {
			ret = append(ret, repeat(Variant{next, Lk}, 2)...)
		}

	case FamilyL:
		if d {
			ret = append(ret, repeat(Variant{next, Lk}, 3)...)
		}
		ret = append(ret, Variant{next, Lk})

	case FamilyR:
		ret = append(ret, Variant{next, Rk})
		if e {
			ret = append(ret, repeat(Variant{next, Rk}, 3)...)
		}

	}
	return
}
