package kernel

import (
	"io"
	"os"
	"os/exec"
)

// Runner runs external commands. The real implementation shells out; tests
// substitute a fake to observe the exact invocations.
type Runner interface {
	// Run executes name with args in dir. env entries of the form KEY=VALUE
	// are appended to the inherited environment. dir may be empty to run in
	// the current directory.
	Run(dir string, env []string, name string, args ...string) error
}

// ExecRunner implements Runner with os/exec, streaming the child's output
// so long-running builds show progress as it happens.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command and blocks until it exits. The returned error is
// the *exec.ExitError when the command exits non-zero.
func (r ExecRunner) Run(dir string, env []string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}
