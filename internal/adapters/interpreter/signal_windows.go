//go:build windows

package interpreter

import (
	"os/exec"
)

func setProcessGroup(_ *exec.Cmd) {}

// terminate kills the process outright; Windows has no graceful equivalent of SIGTERM.
func terminate(cmd *exec.Cmd) error {
	return kill(cmd)
}

func kill(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
