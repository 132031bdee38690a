package programs

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/reusee/tagmachines/cmds"
	"github.com/reusee/tagmachines/machines"
)

type Options struct {
	In        string
	Out       string
	Dump      *machines.DumpLevel
	MaxSteps  int
	TraceYAML string
	Replay    string
	Tap       bool
}

func parseOptions(name Name, args []string, output io.Writer) (*Options, error) {
	opts := new(Options)

	executor := cmds.NewExecutor()
	executor.Output = output
	executor.Define("-in", cmds.Var(&opts.In).
		Args("path").Desc("input file of the "+name.model()))
	executor.Define("-out", cmds.Var(&opts.Out).
		Args("path").Desc("output file, default derived from -in"))

	if name.Executes() {
		executor.Define("-dump", cmds.Func(func(level *uint) {
			dump := machines.DumpNotable
			if level != nil {
				dump = machines.DumpLevel(*level)
			}
			opts.Dump = &dump
		}).Args("level").Desc("dump level during execution: 0 final, 1 notable (no level given), 2 all"))
		executor.Define("-trace-yaml", cmds.Var(&opts.TraceYAML).
			Args("path").Desc("write a yaml record of the run"))
		executor.Define("-replay", cmds.Var(&opts.Replay).
			Args("path").Desc("fail if the run differs from a recorded yaml trace"))
		executor.Define("-tap", cmds.Switch(&opts.Tap).
			Desc("open a starlark repl over the finished run"))
	}
	if name == ECTS {
		executor.Define("-max-steps", cmds.Var(&opts.MaxSteps).
			Args("n").Desc("step fuse of the run"))
	}

	// log level flags
	executor.Inherit(cmds.GlobalExecutor)

	if err := executor.Execute(args); err != nil {
		return nil, err
	}
	if opts.In == "" {
		return nil, fmt.Errorf("%w: -in", ErrMissingOption)
	}
	if opts.Out == "" {
		opts.Out = DefaultOutput(opts.In, name.outputSuffix())
	}
	return opts, nil
}

// DefaultOutput inserts suffix before the extension of the input path.
func DefaultOutput(in string, suffix string) string {
	ext := filepath.Ext(in)
	if ext == filepath.Base(in) {
		// dot file
		ext = ""
	}
	return strings.TrimSuffix(in, ext) + suffix + ext
}
