package hdlkore

import (
	"context"
	"testing"
	"time"
)

type countTracer map[string]int

func (c countTracer) Debug(t *Trace, _ string, _ ...any) { c["debug@"+t.StepName()]++ }
func (c countTracer) Info(t *Trace, _ string, _ ...any)  { c["info@"+t.StepName()]++ }
func (c countTracer) Warn(t *Trace, _ string, _ ...any)  { c["warn@"+t.StepName()]++ }
func (c countTracer) Error(t *Trace, _ string, _ ...any) { c["error@"+t.StepName()]++ }

func (c countTracer) StartCmd(t *Trace, _ string) { c["start@"+t.StepName()]++ }

func (c countTracer) DoneCmd(t *Trace, _ string, _ int, _ time.Duration) {
	c["done@"+t.StepName()]++
}

func TestTrace_Step(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, 4711)
	ct := countTracer{}
	root := NewTrace(ctx, ct)
	sub := root.Step("exec")
	if sub.Ctx().Value(ctxKey{}) != 4711 {
		t.Error("step lost context")
	}
	root.Warn("w")
	sub.Debug("d")
	sub.StartCmd("x")
	sub.DoneCmd("x", 0, 0)
	want := map[string]int{"warn@": 1, "debug@exec": 1, "start@exec": 1, "done@exec": 1}
	for k, n := range want {
		if ct[k] != n {
			t.Errorf("%s: %d, want %d", k, ct[k], n)
		}
	}
	if len(ct) != len(want) {
		t.Errorf("unexpected events: %v", ct)
	}
}

func TestTrace_nil(t *testing.T) {
	var tr *Trace
	tr.Debug("nothing")
	tr.Error("nothing")
	if tr.Ctx() == nil {
		t.Error("nil trace has no context")
	}
	if s := tr.Step("x"); s.StepName() != "x" || s.Ctx() == nil {
		t.Errorf("step of nil trace: %+v", s)
	}
}
