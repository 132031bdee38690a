package programs

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tagmachines/modes"
)

// Main runs one program with the process arguments and exits non-zero on
// failure.
func Main(name Name) {
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		run Run,
	) {
		if err := run(context.Background(), name, os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			os.Exit(1)
		}
	})
}
