package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tagmachines/cmds"
	"github.com/reusee/tagmachines/modes"
	"github.com/reusee/tagmachines/shells"
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, cmds.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	dscope.New(
		new(shells.Module),
		modes.ForProduction(),
	).Call(func(
		shell shells.Shell,
	) {
		if err := shell(context.Background()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	})
}
