// Package hdlkore holds the small core model shared by the hdlwrap packages:
// the environment a wrapper run sees ([Env]) and the leveled tracing of a run
// ([Trace], [Tracer]). It has no knowledge of the wrapped tool. The wrapper
// itself is in package [hdlwrap].
//
// [hdlwrap]: https://pkg.go.dev/git.fractalqb.de/fractalqb/hdlwrap
package hdlkore
