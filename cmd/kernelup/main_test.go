package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"testing"
)

func TestRunMainSuccessDoesNotExit(t *testing.T) {
	orig := executeFunc
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error { return nil }
	t.Cleanup(func() { executeFunc = orig })

	exited := false
	runMain([]string{"kernelup"}, &bytes.Buffer{}, &bytes.Buffer{}, func(int) { exited = true })
	if exited {
		t.Fatal("expected no exit on success")
	}
}

func TestRunMainErrorExitsOne(t *testing.T) {
	orig := executeFunc
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return errors.New("boom")
	}
	t.Cleanup(func() { executeFunc = orig })

	stderr := &bytes.Buffer{}
	code := -1
	runMain([]string{"kernelup"}, &bytes.Buffer{}, stderr, func(c int) { code = c })
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "kernelup: error: boom") {
		t.Fatalf("expected error line, got %q", stderr.String())
	}
}

func TestRunMainPropagatesSubprocessExitCode(t *testing.T) {
	subErr := exec.Command("sh", "-c", "exit 3").Run()
	var exitErr *exec.ExitError
	if !errors.As(subErr, &exitErr) {
		t.Fatalf("expected *exec.ExitError from sh, got %v", subErr)
	}

	orig := executeFunc
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return fmt.Errorf("make exited with an error: %w", subErr)
	}
	t.Cleanup(func() { executeFunc = orig })

	code := -1
	runMain([]string{"kernelup"}, &bytes.Buffer{}, &bytes.Buffer{}, func(c int) { code = c })
	if code != 3 {
		t.Fatalf("expected exit 3, got %d", code)
	}
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	Version, Commit, BuildDate = "dev", "unknown", "unknown"
	if got := versionString(); got != "dev" {
		t.Fatalf("expected bare version, got %q", got)
	}

	Version, Commit, BuildDate = "1.2.3", "abc1234", "2026-08-28"
	got := versionString()
	if !strings.Contains(got, "1.2.3") || !strings.Contains(got, "commit abc1234") || !strings.Contains(got, "built 2026-08-28") {
		t.Fatalf("unexpected version string %q", got)
	}
}
