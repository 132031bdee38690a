package cmds

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// PrintUsage lists the commands by name, one line each, aliases after the
// name they belong to.
func (p *Executor) PrintUsage() {
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if slices.Contains(command.Aliases, name) {
			continue
		}

		names := name
		for _, arg := range command.ArgNames {
			names += " <" + arg + ">"
		}
		if len(command.Aliases) > 0 {
			names += ", " + strings.Join(command.Aliases, ", ")
		}
		if command.Description != "" {
			fmt.Fprintf(p.Output, "%s\t%s\n", names, command.Description)
		} else {
			fmt.Fprintf(p.Output, "%s\n", names)
		}
	}
}
