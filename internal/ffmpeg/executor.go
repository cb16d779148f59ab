package ffmpeg

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
)

// ExitNotFound is the reserved exit code reported when the ffmpeg
// executable cannot be started at all.
const ExitNotFound = 127

// Executor abstracts command execution for testability.
type Executor interface {
	// Run executes the binary with the child's output attached to the
	// parent's streams and returns the process exit code.
	Run(ctx context.Context, binary string, args []string) int
	// Capture executes the binary and returns its combined output along
	// with the exit code.
	Capture(ctx context.Context, binary string, args []string) (string, int)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) int {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return exitCode(cmd.Run())
}

func (commandExecutor) Capture(ctx context.Context, binary string, args []string) (string, int) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	output, err := cmd.CombinedOutput()
	return string(output), exitCode(err)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return ExitNotFound
	}
	return 1
}
