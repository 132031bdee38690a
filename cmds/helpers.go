package cmds

// Var sets *ptr to its argument.
func Var[T any](ptr *T) *Command {
	return Func(func(v T) {
		*ptr = v
	})
}

// Switch sets *ptr to true.
func Switch(ptr *bool) *Command {
	return Func(func() {
		*ptr = true
	})
}
