//go:build !windows

package player

import (
	"os/exec"
	"syscall"
)

// mpv gets its own process group so the Ctrl+C the terminal delivers to
// subplay does not reach it before the history is written.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

// killProcess kills mpv together with anything it spawned (ytdl hooks, scripts).
func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}

	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err == nil {
		return nil
	}

	return cmd.Process.Kill()
}
