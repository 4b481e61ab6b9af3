package hdlwrap

import (
	"slices"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestReadArgs(t *testing.T) {
	in := "--verilator=tools/verilator\n\n--src=a.sv\r\n  \n--\n--cc\n"
	args := testerr.Shall1(ReadArgs(strings.NewReader(in))).BeNil(t)
	want := []string{"--verilator=tools/verilator", "--src=a.sv", "  ", "--", "--cc"}
	if !slices.Equal(args, want) {
		t.Errorf("args: %q", args)
	}
}

func TestReadArgsFile_missing(t *testing.T) {
	_, err := ReadArgsFile("testdata/no-such-args-file")
	if err == nil || !strings.HasPrefix(err.Error(), "failed to open args file") {
		t.Errorf("unexpected error: %v", err)
	}
}
