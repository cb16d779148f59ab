package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"vidcut/internal/timecode"
)

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps interactions with one resolved ffmpeg binary.
type Client struct {
	binary string
	exec   Executor
}

// New constructs a client around an already-resolved binary path.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffmpeg binary required")
	}
	client := &Client{binary: binary, exec: commandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Binary returns the executable path the client was built with.
func (c *Client) Binary() string {
	return c.binary
}

// Run executes a planned command and returns the process exit code.
func (c *Client) Run(ctx context.Context, cmd Command) int {
	return c.exec.Run(ctx, c.binary, cmd.Args)
}

// CommandLine renders a planned command for display, binary included.
func (c *Client) CommandLine(cmd Command) string {
	return strings.Join(append([]string{c.binary}, cmd.Args...), " ")
}

var durationPattern = regexp.MustCompile(`Duration:\s*(\d+):(\d+):(\d+(?:\.\d+)?)`)

// ProbeDuration runs ffmpeg in inspect mode and scans its diagnostic output
// for the source's total duration. It never fails hard: any invocation or
// parse problem reports absence and the caller decides whether that is
// fatal. ffmpeg exits non-zero when given no output file, so the exit code
// is deliberately ignored here.
func (c *Client) ProbeDuration(ctx context.Context, path string) (float64, bool) {
	output, _ := c.exec.Capture(ctx, c.binary, []string{"-hide_banner", "-i", path})
	match := durationPattern.FindStringSubmatch(output)
	if match == nil {
		return 0, false
	}
	hours, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(match[3], 64)
	if err != nil {
		return 0, false
	}
	return timecode.Compose(hours, minutes, seconds), true
}

// Version reports the first line of `ffmpeg -version`.
func (c *Client) Version(ctx context.Context) (string, error) {
	output, code := c.exec.Capture(ctx, c.binary, []string{"-version"})
	if code != 0 {
		return "", fmt.Errorf("ffmpeg -version exited with code %d", code)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	return strings.TrimSpace(line), nil
}
