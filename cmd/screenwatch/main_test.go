package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	perr "screenwatch/internal/platform/errors"
	"screenwatch/internal/platform/testkit"

	"github.com/spf13/pflag"
)

// clearEnv blanks every key the CLI reads so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"INTERVAL", "REGION", "HISTORY", "MIN_CHANGE", "STRATEGY", "NORMALIZE", "SHOW_RAW", "MODEL",
		"CAPTURE", "CAPTURE_CMD", "CAPTURE_FILE", "CAPTURE_ANSI", "CAPTURE_PTY", "STATUS_ADDR",
		"STATUS_ORIGINS",
	} {
		t.Setenv("SCREENWATCH_"+k, "")
	}
	t.Setenv("OPENAI_API_KEY", "")
}

func screenFile(t *testing.T, text string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "screen.txt")
	if err := os.WriteFile(p, []byte(text), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

// runCmd executes the root command with an already cancelled context so the
// loop starts and stops without ticking
func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func TestExitCode(t *testing.T) {
	if exitCode(nil) != exitOK {
		t.Fatal("nil error must exit 0")
	}
	if exitCode(perr.Configf("bad interval")) != exitConfig {
		t.Fatal("config errors must exit 2")
	}
	if exitCode(errors.New("boom")) != exitFailed {
		t.Fatal("other errors must exit 1")
	}
}

func TestRun_StartsAndStopsCleanly(t *testing.T) {
	clearEnv(t)
	out, _, err := runCmd(t, "--capture", "file", "--capture-file", screenFile(t, "hello"), "--strategy", "digest")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	testkit.MustContain(t, out, "Starting screen text monitor. Press Ctrl+C to stop.")
	testkit.MustContain(t, out, "Strategy: digest")
	testkit.MustContain(t, out, "Stopped.")
}

func TestRun_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCREENWATCH_STRATEGY", "digest")
	t.Setenv("SCREENWATCH_CAPTURE", "file")
	t.Setenv("SCREENWATCH_CAPTURE_FILE", screenFile(t, "x"))

	out, _, err := runCmd(t)
	if err != nil {
		t.Fatal(err)
	}
	testkit.MustContain(t, out, "Strategy: digest")

	out, _, err = runCmd(t, "--strategy", "fuzzy")
	if err != nil {
		t.Fatal(err)
	}
	testkit.MustContain(t, out, "Strategy: fuzzy")
}

func TestRun_ConfigErrors(t *testing.T) {
	cases := map[string][]string{
		"interval too small": {"--capture", "file", "--capture-file", "x", "--interval", "0.1"},
		"bad region":         {"--capture", "file", "--capture-file", "x", "--region", "10,10,5,5"},
		"bad strategy":       {"--capture", "file", "--capture-file", "x", "--strategy", "levenshtein"},
		"empty command":      {"--capture", "command"},
		"remote without key": {"--capture", "file", "--capture-file", "x", "--model", "gpt-4.1-mini"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			_, _, err := runCmd(t, args...)
			if exitCode(err) != exitConfig {
				t.Fatalf("exit %d for %v", exitCode(err), err)
			}
		})
	}
}

func TestRun_RemoteKeyMessage(t *testing.T) {
	clearEnv(t)
	_, _, err := runCmd(t, "--capture", "file", "--capture-file", "x", "--model", "gpt-4.1-mini")
	testkit.MustCode(t, err, perr.ErrorCodeConfig)
	testkit.MustContain(t, err.Error(), "OPENAI_API_KEY is not set")
}

func TestVersionFlag(t *testing.T) {
	clearEnv(t)
	out, _, err := runCmd(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	testkit.MustContain(t, out, "screenwatch")
}

func TestRun_UsageErrorsAreConfigErrors(t *testing.T) {
	cases := map[string][]string{
		"unknown flag":    {"--nope"},
		"malformed float": {"--interval", "abc"},
		"malformed int":   {"--history", "many"},
		"missing value":   {"--strategy"},
		"positional args": {"extra"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			_, _, err := runCmd(t, args...)
			if exitCode(err) != exitConfig {
				t.Fatalf("exit %d for %v", exitCode(err), err)
			}
		})
	}
}

func TestExecute_MalformedFlagExitsConfig(t *testing.T) {
	clearEnv(t)
	if got := execute([]string{"--interval", "abc"}); got != exitConfig {
		t.Fatalf("execute = %d, want %d", got, exitConfig)
	}
}

func TestBuild_StatusWiring(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCREENWATCH_CAPTURE", "file")
	t.Setenv("SCREENWATCH_CAPTURE_FILE", screenFile(t, "x"))
	t.Setenv("SCREENWATCH_STATUS_ORIGINS", "http://localhost:3000, http://127.0.0.1:3000")

	f := &flags{}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.bind(fs)
	if err := fs.Parse([]string{"--status-addr", "127.0.0.1:0"}); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	a, err := build(&out, &errOut, f, fs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if a.status == nil || a.statusAddr != "127.0.0.1:0" {
		t.Fatalf("status module not wired: %+v", a)
	}
	if len(a.statusOrigins) != 2 || a.statusOrigins[1] != "http://127.0.0.1:3000" {
		t.Fatalf("origins %v", a.statusOrigins)
	}
}
