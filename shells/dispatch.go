package shells

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/reusee/tagmachines/programs"
)

const quitCommand = "q"

// Dispatch runs one shell line and reports whether the shell should quit. The
// first field names the program, optionally as a path.
type Dispatch func(ctx context.Context, line string) (quit bool)

func (Module) Dispatch(
	run programs.Run,
	output programs.Output,
) Dispatch {
	return func(ctx context.Context, line string) bool {
		if line == quitCommand {
			return true
		}

		fields := strings.Fields(line)
		var name programs.Name
		ok := false
		if len(fields) > 0 {
			name, ok = programs.Lookup(filepath.Base(fields[0]))
		}
		if !ok {
			fmt.Fprintln(output, "no such program")
			return false
		}

		if err := run(ctx, name, fields[1:]); err != nil {
			fmt.Fprintln(output, "error")
		} else {
			fmt.Fprintln(output, "ok")
		}
		return false
	}
}
