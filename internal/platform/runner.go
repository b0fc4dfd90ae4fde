package platform

import (
	"context"
	"os/exec"
)

// CommandRunner runs external commands. It exists so dialog adapters can be
// exercised without spawning real processes.
type CommandRunner interface {
	// LookPath reports the full path of an executable on PATH.
	LookPath(file string) (string, error)
	// Output runs a command and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner calls actual commands via os/exec.
type ExecRunner struct{}

// LookPath searches PATH for file.
func (ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Output executes a command and returns its standard output.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}
