//go:build windows

package capture

import "os/exec"

func ownProcessGroup(*exec.Cmd) {}

// killGroupOnCancel keeps exec's default kill; WaitDelay still bounds the wait
func killGroupOnCancel(*exec.Cmd) {}
