package hdlwrap

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"git.fractalqb.de/fractalqb/hdlwrap/hdlkore"
)

const (
	flagVerilator  = "--verilator="
	flagSrc        = "--src="
	flagOutput     = "--output="
	flagOutputSrcs = "--output_srcs="
	flagOutputHdrs = "--output_hdrs="
	flagCapture    = "--capture_output"
	argsDelimiter  = "--"
)

type Mapping struct {
	Orig string
	Path string
}

// Mappings are kept sorted by Orig and have no duplicate Orig.
type Mappings []Mapping

func (ms Mappings) find(orig string) (int, bool) {
	return slices.BinarySearchFunc(ms, orig, func(m Mapping, o string) int {
		return strings.Compare(m.Orig, o)
	})
}

// Set adds a mapping or replaces the path of an existing one.
func (ms *Mappings) Set(orig, path string) {
	i, ok := ms.find(orig)
	if ok {
		(*ms)[i].Path = path
		return
	}
	*ms = slices.Insert(*ms, i, Mapping{Orig: orig, Path: path})
}

func (ms Mappings) Get(orig string) (string, bool) {
	if i, ok := ms.find(orig); ok {
		return ms[i].Path, true
	}
	return "", false
}

// Args is one parsed wrapper invocation.
type Args struct {
	Verilator     string
	Sources       Mappings
	Outputs       Mappings
	OutputSrcs    string
	OutputHdrs    string
	CaptureOutput bool
	// ToolArgs are the arguments after "--" with all mappings applied.
	ToolArgs []string

	used *bitset.BitSet
}

type ArgError struct {
	Arg string
	Msg string
}

func (e *ArgError) Error() string { return fmt.Sprintf("%s: %s", e.Msg, e.Arg) }

// Parse parses the wrapper arguments without the program name. Paths of
// --verilator and --src are resolved with loc, which may be nil.
func Parse(tr *hdlkore.Trace, loc Locator, tokens []string) (*Args, error) {
	args := new(Args)
	for i, tok := range tokens {
		if tok == argsDelimiter {
			args.passThrough(tr, tokens[i+1:])
			return args, nil
		}
		if err := args.parseFlag(tr, loc, tok); err != nil {
			return nil, err
		}
	}
	return args, nil
}

func (a *Args) parseFlag(tr *hdlkore.Trace, loc Locator, tok string) error {
	if tok == flagCapture {
		a.CaptureOutput = true
		return nil
	}
	if p, ok := strings.CutPrefix(tok, flagVerilator); ok {
		if p == "" {
			return &ArgError{Arg: tok, Msg: "empty path"}
		}
		a.Verilator = ResolvePath(tr, loc, p)
		return nil
	}
	if p, ok := strings.CutPrefix(tok, flagSrc); ok {
		if p == "" {
			return &ArgError{Arg: tok, Msg: "empty path"}
		}
		a.Sources.Set(p, ResolvePath(tr, loc, p))
		return nil
	}
	if p, ok := strings.CutPrefix(tok, flagOutput); ok {
		if p == "" {
			return &ArgError{Arg: tok, Msg: "empty path"}
		}
		a.Outputs.Set(p, NormalizePath(p))
		return nil
	}
	if p, ok := strings.CutPrefix(tok, flagOutputSrcs); ok {
		a.OutputSrcs = p
		return nil
	}
	if p, ok := strings.CutPrefix(tok, flagOutputHdrs); ok {
		a.OutputHdrs = p
		return nil
	}
	return &ArgError{Arg: tok, Msg: "unknown argument"}
}

func (a *Args) passThrough(tr *hdlkore.Trace, tokens []string) {
	a.used = bitset.New(uint(len(a.Sources) + len(a.Outputs)))
	a.ToolArgs = make([]string, len(tokens))
	for i, tok := range tokens {
		a.ToolArgs[i] = a.Substitute(tok)
	}
	tr.Debug("`used` of `mappings` path mappings applied",
		slog.Uint64(`used`, uint64(a.used.Count())),
		slog.Int(`mappings`, len(a.Sources)+len(a.Outputs)),
	)
	for _, m := range a.UnusedMappings() {
		tr.Debug("unused path mapping `orig`", `orig`, m.Orig)
	}
}

// Substitute replaces every occurrence of each source and then each output
// mapping's Orig in arg. Replaced text is not searched again.
func (a *Args) Substitute(arg string) string {
	for i, m := range a.Sources {
		if strings.Contains(arg, m.Orig) {
			arg = strings.ReplaceAll(arg, m.Orig, m.Path)
			a.markUsed(i)
		}
	}
	for i, m := range a.Outputs {
		if strings.Contains(arg, m.Orig) {
			arg = strings.ReplaceAll(arg, m.Orig, m.Path)
			a.markUsed(len(a.Sources) + i)
		}
	}
	return arg
}

func (a *Args) markUsed(i int) {
	if a.used == nil {
		a.used = bitset.New(uint(len(a.Sources) + len(a.Outputs)))
	}
	a.used.Set(uint(i))
}

// UnusedMappings returns the source mappings and then the output mappings
// that no substituted argument referenced.
func (a *Args) UnusedMappings() (ms []Mapping) {
	isUsed := func(i int) bool { return a.used != nil && a.used.Test(uint(i)) }
	for i, m := range a.Sources {
		if !isUsed(i) {
			ms = append(ms, m)
		}
	}
	for i, m := range a.Outputs {
		if !isUsed(len(a.Sources) + i) {
			ms = append(ms, m)
		}
	}
	return ms
}

// Command returns the tool command of the invocation.
func (a *Args) Command() *Command {
	return &Command{
		Exe:     a.Verilator,
		Args:    a.ToolArgs,
		Capture: a.CaptureOutput,
	}
}
