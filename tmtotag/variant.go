package tmtotag

import (
	"github.com/reusee/tagmachines/machines"
	"github.com/reusee/tagmachines/tags"
	"github.com/reusee/tagmachines/turing"
)

// Role is the part a tag plays for one turing machine state k.
type Role uint8

const (
	Hk0 Role = iota
	Hk1
	Hk
	Lk0
	Lk1
	Lk
	Rk0
	Rk1
	Rk
	Rkk

	numRoles = 10
)

type Family uint8

const (
	FamilyH Family = iota
	FamilyL
	FamilyR
)

func (r Role) Family() Family {
	switch r {
	case Hk0, Hk1, Hk:
		return FamilyH
	case Lk0, Lk1, Lk:
		return FamilyL
	}
	return FamilyR
}

// Bit returns the simulated bit of a bit-tag.
func (r Role) Bit() (machines.Symbol, bool) {
	switch r {
	case Hk0, Lk0, Rk0:
		return machines.Zero, true
	case Hk1, Lk1, Rk1:
		return machines.One, true
	}
	return 0, false
}

// IsDispatcher reports whether the role expands into its two bit children.
func (r Role) IsDispatcher() bool {
	return r == Hk || r == Lk || r == Rk
}

func bitRole(family Family, bit machines.Symbol) Role {
	return Role(family)*3 + Role(bit)
}

type Variant struct {
	State turing.StateIndex
	Role  Role
}

func (v Variant) Index() tags.TagIndex {
	return tags.TagIndex(int(v.State)*numRoles + int(v.Role))
}

func VariantOf(idx tags.TagIndex) Variant {
	return Variant{
		State: turing.StateIndex(int(idx) / numRoles),
		Role:  Role(int(idx) % numRoles),
	}
}

// Name spells a variant for the tag system description.
func Name(state string, role Role) string {
	switch role {
	case Hk0:
		return "H" + state + "0"
	case Hk1:
		return "H" + state + "1"
	case Hk:
		return "H" + state
	case Lk0:
		return "L" + state + "0"
	case Lk1:
		return "L" + state + "1"
	case Lk:
		return "L" + state
	case Rk0:
		return "R" + state + "0"
	case Rk1:
		return "R" + state + "1"
	case Rk:
		return "R" + state
	}
	return "R" + state + state
}
