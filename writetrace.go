package hdlwrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"git.fractalqb.de/fractalqb/sllm/v3"
	"github.com/pkg/errors"

	"git.fractalqb.de/fractalqb/hdlwrap/hdlkore"
)

// WriteTracer writes one line per trace event to W. Errors are always
// written as "Error: <message>"; an error message without args is written
// verbatim, not as an sllm template.
type WriteTracer struct {
	W   io.Writer
	Log hdlkore.TraceLog
}

var _ hdlkore.Tracer = (*WriteTracer)(nil)

func DefaultTracer() *WriteTracer {
	return &WriteTracer{W: os.Stderr, Log: hdlkore.DefaultTraceLog}
}

func (tr *WriteTracer) ParseLogFlag(f string) error {
	switch f {
	case "":
		return nil
	case "off":
		tr.Log = 0
	case "warn", "w":
		tr.Log = hdlkore.TraceWarn
	case "info", "i":
		tr.Log = hdlkore.TraceWarn | hdlkore.TraceInfo
	case "debug", "d":
		tr.Log = hdlkore.TraceWarn | hdlkore.TraceInfo | hdlkore.TraceDebug
	default:
		return errors.Errorf("write tracer: illegal log flag '%s'", f)
	}
	return nil
}

func (tr *WriteTracer) Debug(t *hdlkore.Trace, msg string, args ...any) {
	if tr.Log&hdlkore.TraceDebug == 0 {
		return
	}
	tr.line(t, "DEBUG", msg, args)
}

func (tr *WriteTracer) Info(t *hdlkore.Trace, msg string, args ...any) {
	if tr.Log&(hdlkore.TraceInfo|hdlkore.TraceDebug) == 0 {
		return
	}
	tr.line(t, "INFO ", msg, args)
}

func (tr *WriteTracer) Warn(t *hdlkore.Trace, msg string, args ...any) {
	if tr.Log&(hdlkore.TraceWarn|hdlkore.TraceInfo|hdlkore.TraceDebug) == 0 {
		return
	}
	tr.line(t, "WARN ", msg, args)
}

func (tr *WriteTracer) Error(_ *hdlkore.Trace, msg string, args ...any) {
	if len(args) == 0 {
		fmt.Fprintf(tr.W, "Error: %s\n", msg)
		return
	}
	io.WriteString(tr.W, "Error: ")
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr *WriteTracer) StartCmd(t *hdlkore.Trace, line string) {
	if tr.Log&(hdlkore.TraceInfo|hdlkore.TraceDebug) == 0 {
		return
	}
	fmt.Fprintf(tr.W, "hdlwrap@%s\t{ run %s\n", stepTag(t), line)
}

func (tr *WriteTracer) DoneCmd(t *hdlkore.Trace, line string, code int, dt time.Duration) {
	if tr.Log&(hdlkore.TraceInfo|hdlkore.TraceDebug) == 0 {
		return
	}
	fmt.Fprintf(tr.W, "hdlwrap@%s\t} exit %d took %s\n", stepTag(t), code, dt)
}

func (tr *WriteTracer) line(t *hdlkore.Trace, level, msg string, args []any) {
	fmt.Fprintf(tr.W, "hdlwrap@%s\t  %s ", stepTag(t), level)
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func stepTag(t *hdlkore.Trace) string {
	if t == nil || t.StepName() == "" {
		return "-"
	}
	return t.StepName()
}

type sllmArgs []any

func (as sllmArgs) append(buf []byte, _ int, n string) ([]byte, error) {
	for len(as) > 0 {
		switch k := as[0].(type) {
		case string:
			if len(as) == 1 {
				return buf, errors.Errorf("no value for key '%s'", n)
			}
			if k == n {
				return sllm.AppendArg(buf, as[1]), nil
			}
			as = as[2:]
		case slog.Attr:
			if k.Key == n {
				return sllm.AppendArg(buf, k.Value), nil
			}
			as = as[1:]
		default:
			return buf, errors.Errorf("illegal key type %T", k)
		}
	}
	return buf, errors.Errorf("no key '%s'", n)
}
