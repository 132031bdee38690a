package machines

// DumpLevel controls trace verbosity only, never engine semantics.
// 0 prints the final state, 1 the notable boundaries of each model, 2 and
// above every intermediate state.
type DumpLevel uint

const (
	DumpFinal DumpLevel = iota
	DumpNotable
	DumpAll
)
