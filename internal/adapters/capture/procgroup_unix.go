//go:build !windows

package capture

import (
	"os/exec"
	"syscall"
)

// ownProcessGroup puts the shell in a fresh process group. The pty path skips
// it because pty.Start already makes the child a session leader.
func ownProcessGroup(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

// killGroupOnCancel kills every process of the pipeline, not just the shell,
// so a grandchild holding stdout cannot outlive the timeout
func killGroupOnCancel(cmd *exec.Cmd) {
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
