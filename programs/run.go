package programs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/tagmachines/cmds"
	"github.com/reusee/tagmachines/debugs"
	"github.com/reusee/tagmachines/logs"
	"github.com/reusee/tagmachines/machineconfigs"
	"github.com/reusee/tagmachines/machines"
	"github.com/reusee/tagmachines/tagtocyclic"
	"github.com/reusee/tagmachines/tmtotag"
	"github.com/reusee/tagmachines/traces"
	"github.com/reusee/tagmachines/vars"
)

// Run runs one program with its command line arguments. Options not given
// fall back to the config files.
type Run func(ctx context.Context, name Name, args []string) error

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	output Output,
	dumpLevel machineconfigs.DumpLevel,
	stepLimit machineconfigs.CyclicStepLimit,
	tap debugs.Tap,
) Run {
	return func(ctx context.Context, name Name, args []string) (err error) {
		ctx, _ = newSpan(ctx, "", string(name))
		defer func() {
			if err != nil {
				logger.ErrorContext(ctx, "program failed",
					"program", name,
					"error", err,
				)
				err = logs.WrapSpan(ctx, err)
			}
		}()

		opts, err := parseOptions(name, args, output)
		if errors.Is(err, cmds.ErrHelp) {
			return nil
		}
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "run",
			"program", name,
			"in", opts.In,
			"out", opts.Out,
		)

		in, err := os.Open(opts.In)
		if err != nil {
			return wrap(err)
		}
		defer in.Close()

		out := &lazyFile{
			path: opts.Out,
		}
		defer func() {
			if e := out.Close(); e != nil && err == nil {
				err = wrap(e)
			}
		}()

		switch name {
		case CTM:
			return tmtotag.Convert(in, out)
		case CTS:
			return tagtocyclic.Convert(in, out)
		}

		level := machines.DumpLevel(dumpLevel)
		if opts.Dump != nil {
			level = *opts.Dump
		}
		maxSteps := vars.FirstNonZero(opts.MaxSteps, int(stepLimit))

		var recorded *traces.Trace
		if opts.Replay != "" {
			recorded, err = traces.Load(opts.Replay)
			if err != nil {
				return err
			}
		}

		var w io.Writer = out
		var trace *traces.Trace
		if opts.TraceYAML != "" || recorded != nil {
			trace = traces.New(string(name), opts.In, opts.Out)
			w = io.MultiWriter(out, trace)
		}

		var res *result
		switch name {
		case ETM:
			res, err = executeTuring(in, w, level)
		case ETS:
			res, err = executeTags(in, w, level)
		case ECTS:
			res, err = executeCyclic(in, w, level, maxSteps)
		default:
			return fmt.Errorf("unknown program: %s", name)
		}

		if trace != nil {
			var steps int
			var halted bool
			if res != nil {
				steps, halted = res.steps, res.halted
			}
			trace.Finish(steps, halted, err)
			if opts.TraceYAML != "" {
				if e := trace.Save(opts.TraceYAML); e != nil {
					return errors.Join(err, e)
				}
			}
			if recorded != nil {
				if e := recorded.Compare(trace); e != nil {
					return errors.Join(err, e)
				}
				logger.InfoContext(ctx, "replay matched",
					"trace", recorded.ID,
				)
			}
		}

		if res != nil {
			logger.InfoContext(ctx, "finished",
				"program", name,
				"steps", res.steps,
				"halted", res.halted,
			)
			if opts.Tap {
				tap(ctx, string(name), res.globals)
			}
		}

		return err
	}
}
