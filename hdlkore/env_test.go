package hdlkore

import (
	"errors"
	"slices"
	"testing"
)

func TestEnv_SetTag(t *testing.T) {
	var e Env
	e.SetTag("", "")
	if v, ok := e.Tag(""); !ok {
		t.Error("empty tag not set")
	} else if v != "" {
		t.Errorf("emty tag has value '%s'", v)
	}
	e.SetTag("foo", "")
	if !e.Has("foo") {
		t.Error("tag 'foo' not set")
	}
	e.SetTag("foo", "bar")
	if v, ok := e.Tag("foo"); !ok {
		t.Error("tag 'foo' not set")
	} else if v != "bar" {
		t.Errorf("tag 'foo' has value '%s'", v)
	}
}

func TestEnv_Sub(t *testing.T) {
	var top Env
	top.SetTag("A", "1")
	top.SetTag("B", "2")
	sub := top.Sub()
	sub.SetTag("C", "3")
	sub.DelTag("B")
	if v, _ := sub.Tag("A"); v != "1" {
		t.Errorf("inherited tag A: '%s'", v)
	}
	if sub.Has("B") {
		t.Error("deleted tag B still visible in sub env")
	}
	if !top.Has("B") {
		t.Error("deleting in sub env removed B from parent")
	}
	if top.Has("C") {
		t.Error("sub env tag C leaked into parent")
	}
	xenv, err := sub.ExecEnv()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(xenv, []string{"A=1", "C=3"}) {
		t.Errorf("exec env: %v", xenv)
	}
}

func TestEnv_ExecEnv_badKeys(t *testing.T) {
	var e Env
	e.SetTag("", "x")
	e.SetTag("a=b", "y")
	e.SetTag("OK", "z")
	xenv, err := e.ExecEnv()
	if !errors.Is(err, NonXEnvKeys(nil)) {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(xenv, []string{"OK=z"}) {
		t.Errorf("exec env: %v", xenv)
	}
}
