package programs

import "slices"

type Name string

const (
	ETM  Name = "ETM"
	ETS  Name = "ETS"
	ECTS Name = "ECTS"
	CTM  Name = "CTM"
	CTS  Name = "CTS"
)

var Names = []Name{ETM, ETS, ECTS, CTM, CTS}

func Lookup(str string) (Name, bool) {
	name := Name(str)
	return name, slices.Contains(Names, name)
}

// Executes reports whether the program runs a machine rather than converting
// a description.
func (n Name) Executes() bool {
	return n == ETM || n == ETS || n == ECTS
}

func (n Name) model() string {
	switch n {
	case ETM, CTM:
		return "turing machine"
	case ETS, CTS:
		return "tag system"
	}
	return "cyclic tag system"
}

func (n Name) outputSuffix() string {
	if n.Executes() {
		return "_dump"
	}
	return "_converted"
}
