package hdlwrap

import (
	"context"
	"testing"
	"time"

	"git.fractalqb.de/fractalqb/hdlwrap/hdlkore"
)

type TestTracer struct{ t *testing.T }

var _ hdlkore.Tracer = TestTracer{}

func testTrace(t *testing.T) *hdlkore.Trace {
	return hdlkore.NewTrace(context.Background(), TestTracer{t})
}

func (tr TestTracer) Debug(t *hdlkore.Trace, msg string, args ...any) {
	tr.t.Logf("hdlwrap-DEBUG[%s]: %s %v", t.StepName(), msg, args)
}

func (tr TestTracer) Info(t *hdlkore.Trace, msg string, args ...any) {
	tr.t.Logf("hdlwrap-INFO[%s]: %s %v", t.StepName(), msg, args)
}

func (tr TestTracer) Warn(t *hdlkore.Trace, msg string, args ...any) {
	tr.t.Logf("hdlwrap-WARN[%s]: %s %v", t.StepName(), msg, args)
}

func (tr TestTracer) Error(t *hdlkore.Trace, msg string, args ...any) {
	tr.t.Logf("hdlwrap-ERROR[%s]: %s %v", t.StepName(), msg, args)
}

func (tr TestTracer) StartCmd(t *hdlkore.Trace, line string) {
	tr.t.Logf("hdlwrap-StartCmd: %s", line)
}

func (tr TestTracer) DoneCmd(t *hdlkore.Trace, line string, code int, dt time.Duration) {
	tr.t.Logf("hdlwrap-DoneCmd: %s -> %d %s", line, code, dt)
}
