package hdlkore

import (
	"context"
	"time"
)

type Tracer interface {
	Debug(t *Trace, msg string, args ...any)
	Info(t *Trace, msg string, args ...any)
	Warn(t *Trace, msg string, args ...any)
	// Error is never filtered by a trace level.
	Error(t *Trace, msg string, args ...any)

	StartCmd(t *Trace, line string)
	DoneCmd(t *Trace, line string, code int, dt time.Duration)
}

type TraceLog int

var DefaultTraceLog TraceLog = TraceWarn

const (
	TraceWarn TraceLog = (1 << iota)
	TraceInfo
	TraceDebug
)

// Trace carries the context and the tracer through one wrapper run.
type Trace struct {
	ctx context.Context
	tr  Tracer
	// step names the part of the run that currently traces, e.g. "args".
	step string
}

func NewTrace(ctx context.Context, t Tracer) *Trace {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Trace{ctx: ctx, tr: t}
}

func (t *Trace) Ctx() context.Context {
	if t == nil {
		return context.Background()
	}
	return t.ctx
}

// Step returns a trace for a named part of the run sharing t's context and
// tracer.
func (t *Trace) Step(name string) *Trace {
	if t == nil {
		return &Trace{ctx: context.Background(), step: name}
	}
	return &Trace{ctx: t.ctx, tr: t.tr, step: name}
}

func (t *Trace) StepName() string {
	if t == nil {
		return ""
	}
	return t.step
}

func (t *Trace) Debug(msg string, args ...any) { t.root().Debug(t, msg, args...) }
func (t *Trace) Info(msg string, args ...any)  { t.root().Info(t, msg, args...) }
func (t *Trace) Warn(msg string, args ...any)  { t.root().Warn(t, msg, args...) }
func (t *Trace) Error(msg string, args ...any) { t.root().Error(t, msg, args...) }

func (t *Trace) StartCmd(line string) { t.root().StartCmd(t, line) }

func (t *Trace) DoneCmd(line string, code int, dt time.Duration) {
	t.root().DoneCmd(t, line, code, dt)
}

func (t *Trace) root() Tracer {
	if t == nil || t.tr == nil {
		return nopTracer{}
	}
	return t.tr
}

type nopTracer struct{}

func (nopTracer) Debug(*Trace, string, ...any)               {}
func (nopTracer) Info(*Trace, string, ...any)                {}
func (nopTracer) Warn(*Trace, string, ...any)                {}
func (nopTracer) Error(*Trace, string, ...any)               {}
func (nopTracer) StartCmd(*Trace, string)                    {}
func (nopTracer) DoneCmd(*Trace, string, int, time.Duration) {}
