// Command hdlwrap runs Verilator as a Bazel action. See package
// git.fractalqb.de/fractalqb/hdlwrap for the arguments.
package main

import (
	"context"
	"os"

	"git.fractalqb.de/fractalqb/hdlwrap"
)

func main() {
	w := hdlwrap.DefaultWrapper(context.Background())
	os.Exit(w.Run(os.Args[1:]))
}
