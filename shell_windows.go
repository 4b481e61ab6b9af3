package hdlwrap

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

func shellCommand(ctx context.Context, line string) *exec.Cmd {
	comspec := os.Getenv("ComSpec")
	if comspec == "" {
		comspec = "cmd.exe"
	}
	cmd := exec.CommandContext(ctx, comspec)
	// cmd.exe does its own parsing, pass the line unquoted
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: fmt.Sprintf(`%s /S /C "%s"`, comspec, line),
	}
	return cmd
}
