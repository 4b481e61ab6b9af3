package hdlwrap

import (
	"bytes"
	"os/exec"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"git.fractalqb.de/fractalqb/hdlwrap/hdlkore"
)

// Command is the tool invocation. It runs as a single command line through
// a shell.
type Command struct {
	Exe  string
	Args []string
	// Capture collects stdout and stderr into Result.Output instead of
	// passing them through.
	Capture bool
	// Shell is the shell command the line is appended to. Nil uses
	// /bin/sh -c, or cmd.exe on Windows.
	Shell []string
}

type Result struct {
	// Code is the exit code, 128+n for a process killed by signal n.
	Code   int
	Output []byte
}

// Line joins Exe and Args with single spaces.
func (c *Command) Line() string {
	parts := make([]string, 0, len(c.Args)+1)
	if c.Exe != "" {
		parts = append(parts, c.Exe)
	}
	parts = append(parts, c.Args...)
	return strings.Join(parts, " ")
}

// Run executes the command once. A non-zero exit is not an error, it is
// reported in Result.Code.
func (c *Command) Run(tr *hdlkore.Trace, env *hdlkore.Env) (res Result, err error) {
	if c.Exe == "" && len(c.Args) == 0 {
		return res, errors.New("no command provided to execute")
	}
	line := c.Line()
	var cmd *exec.Cmd
	if len(c.Shell) > 0 {
		args := append(slices.Clone(c.Shell[1:]), line)
		cmd = exec.CommandContext(tr.Ctx(), c.Shell[0], args...)
	} else {
		cmd = shellCommand(tr.Ctx(), line)
	}
	xenv, err := env.ExecEnv()
	if err != nil {
		tr.Warn(err.Error())
	}
	cmd.Env = xenv
	var out bytes.Buffer
	if c.Capture {
		cmd.Stdout = &out
		cmd.Stderr = &out
	} else {
		cmd.Stdin = env.In
		cmd.Stdout = env.Out
		cmd.Stderr = env.Err
	}
	tr.StartCmd(line)
	start := time.Now()
	res.Code, err = exitCode(cmd.Run())
	if err != nil {
		return res, errors.Wrap(err, "failed to execute command")
	}
	tr.DoneCmd(line, res.Code, time.Since(start))
	if c.Capture {
		res.Output = out.Bytes()
	}
	return res, nil
}

func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var xerr *exec.ExitError
	if !errors.As(err, &xerr) {
		return 1, err
	}
	if ws, ok := xerr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal()), nil
	}
	return xerr.ExitCode(), nil
}
