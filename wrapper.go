package hdlwrap

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"git.fractalqb.de/fractalqb/hdlwrap/hdlkore"
	"git.fractalqb.de/fractalqb/hdlwrap/mkfs"
)

// Wrapper runs one tool invocation and post-processes its outputs.
type Wrapper struct {
	Env   *hdlkore.Env
	Trace *hdlkore.Trace
	// NewLocator creates the runfiles lookup for argument files. Nil uses
	// NewRunfilesLocator.
	NewLocator func() (Locator, error)
}

// DefaultWrapper uses the process environment and traces to stderr at the
// level from RULES_VERILOG_VERILATOR_TRACE.
func DefaultWrapper(ctx context.Context) *Wrapper {
	tracer := DefaultTracer()
	tr := hdlkore.NewTrace(ctx, tracer)
	env := hdlkore.DefaultEnv(tr)
	if lvl, ok := env.Tag(hdlkore.EnvTrace); ok {
		if err := tracer.ParseLogFlag(lvl); err != nil {
			tr.Warn("ignoring `env`: `error`",
				slog.String(`env`, hdlkore.EnvTrace),
				slog.String(`error`, err.Error()),
			)
		}
	}
	return &Wrapper{Env: env, Trace: tr}
}

// Run runs the wrapper with the command line argv, program name excluded,
// and returns the process exit code.
func (w *Wrapper) Run(argv []string) int {
	args, err := w.LoadArgs(argv)
	if err != nil {
		return w.fail(err)
	}
	res, err := args.Command().Run(w.Trace.Step("exec"), w.Env)
	if err != nil {
		return w.fail(err)
	}
	if args.CaptureOutput && len(res.Output) > 0 {
		if res.Code != 0 || w.Env.Has(hdlkore.EnvDebug) {
			w.Env.Out.Write(res.Output)
		}
	}
	if res.Code != 0 {
		return res.Code
	}
	if lint, ok := w.Env.Tag(hdlkore.EnvLintOutput); ok {
		if err := mkfs.Touch(w.Trace.Step("lint"), lint); err != nil {
			return w.fail(err)
		}
	}
	if err := w.sortOutputs(args); err != nil {
		return w.fail(err)
	}
	return 0
}

// LoadArgs parses argv or, if RULES_VERILOG_VERILATOR_ARGS_FILE is set, the
// argument file it names.
func (w *Wrapper) LoadArgs(argv []string) (*Args, error) {
	tr := w.Trace.Step("args")
	afile, ok := w.Env.Tag(hdlkore.EnvArgsFile)
	if !ok {
		return Parse(tr, nil, argv)
	}
	newLoc := w.NewLocator
	if newLoc == nil {
		newLoc = NewRunfilesLocator
	}
	loc, err := newLoc()
	if err != nil {
		return nil, err
	}
	path, err := loc.Rlocation(afile)
	switch {
	case err != nil:
		return nil, errors.Wrapf(err, "find runfile: %s", afile)
	case path == "":
		return nil, errors.Errorf("find runfile: %s", afile)
	}
	tokens, err := ReadArgsFile(path)
	if err != nil {
		return nil, err
	}
	tr.Debug("read `count` arguments from `file`",
		slog.Int(`count`, len(tokens)),
		slog.String(`file`, path),
	)
	return Parse(tr, loc, tokens)
}

func (w *Wrapper) sortOutputs(args *Args) error {
	dests := mkfs.Dests{Srcs: args.OutputSrcs, Hdrs: args.OutputHdrs}
	if dests.IsZero() {
		return nil
	}
	tr := w.Trace.Step("sort")
	for _, out := range args.Outputs {
		if err := mkfs.SortOutputs(tr, out.Orig, dests); err != nil {
			return err
		}
	}
	return nil
}

func (w *Wrapper) fail(err error) int {
	w.Trace.Error(err.Error())
	return 1
}
