// Command screenwatch polls screen text, reports meaningful changes and
// optionally analyzes them with a remote model
package main

import (
	"fmt"
	"os"

	perr "screenwatch/internal/platform/errors"
)

// exit statuses
const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "screenwatch: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if perr.IsCode(err, perr.ErrorCodeConfig) {
		return exitConfig
	}
	return exitFailed
}
