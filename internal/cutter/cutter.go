package cutter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"vidcut/internal/cutrange"
	"vidcut/internal/ffmpeg"
	"vidcut/internal/logging"
)

// Request describes one planned trim. Times holds the already-parsed time
// expressions; Accurate skips the fast attempt entirely.
type Request struct {
	Input     string
	Output    string
	Times     cutrange.Raw
	Overwrite bool
	Accurate  bool
	DryRun    bool
}

// Option configures the cutter.
type Option func(*Cutter)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cutter) {
		if logger != nil {
			c.logger = logging.NewComponentLogger(logger, "cutter")
		}
	}
}

// WithPlanWriter redirects dry-run command output (defaults to stdout).
func WithPlanWriter(w io.Writer) Option {
	return func(c *Cutter) {
		if w != nil {
			c.plan = w
		}
	}
}

// Cutter processes trim requests against one ffmpeg client.
type Cutter struct {
	client *ffmpeg.Client
	logger *slog.Logger
	plan   io.Writer
}

// New constructs a cutter.
func New(client *ffmpeg.Client, opts ...Option) (*Cutter, error) {
	if client == nil {
		return nil, errors.New("ffmpeg client required")
	}
	c := &Cutter{
		client: client,
		logger: logging.NewNop(),
		plan:   os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Cut processes a single input end to end: resolve the window, plan the
// commands, run the execution state machine. All failures are scoped to
// this one input.
func (c *Cutter) Cut(ctx context.Context, req Request) Outcome {
	if _, err := os.Stat(req.Input); err != nil {
		c.logger.Warn("skipping input", logging.String("input", req.Input), logging.Error(err))
		return Outcome{
			Input:  req.Input,
			Output: req.Output,
			Status: StatusSkipped,
			Err:    fmt.Errorf("input not found: %s", req.Input),
		}
	}

	probed := false
	probe := cutrange.ProbeFunc(func() (float64, bool) {
		probed = true
		return c.client.ProbeDuration(ctx, req.Input)
	})

	window, err := cutrange.Resolve(req.Times, probe)
	if err != nil {
		return Outcome{Input: req.Input, Output: req.Output, Status: StatusFailed, Err: err}
	}
	c.logger.Debug("resolved window",
		logging.String("input", req.Input),
		logging.Float64("start", window.Start),
		logging.Float64("duration", window.Duration),
		logging.Bool("bounded", window.Bounded),
		logging.Bool("probed", probed))

	params := ffmpeg.CutParams{
		Input:     req.Input,
		Output:    req.Output,
		Window:    window,
		Overwrite: req.Overwrite,
	}
	return c.execute(ctx, req, params)
}

// runState is the explicit execution state machine position.
type runState int

const (
	stateRunFast runState = iota
	stateRunAccurate
)

func (c *Cutter) execute(ctx context.Context, req Request, params ffmpeg.CutParams) Outcome {
	state := stateRunFast
	if req.Accurate {
		state = stateRunAccurate
	}

	for {
		switch state {
		case stateRunFast:
			cmd := ffmpeg.BuildFast(params)
			if req.DryRun {
				return c.planOnly(req, cmd)
			}
			code := c.client.Run(ctx, cmd)
			if code == 0 {
				c.logger.Info("cut complete",
					logging.String("input", req.Input),
					logging.String("via", string(ffmpeg.ModeFast)))
				return Outcome{Input: req.Input, Output: req.Output, Status: StatusSucceeded, Via: ffmpeg.ModeFast}
			}
			c.logger.Warn("fast copy failed, falling back to accurate",
				logging.String("input", req.Input),
				logging.Int("code", code))
			state = stateRunAccurate

		case stateRunAccurate:
			cmd := ffmpeg.BuildAccurate(params)
			if req.DryRun {
				return c.planOnly(req, cmd)
			}
			code := c.client.Run(ctx, cmd)
			if code == 0 {
				c.logger.Info("cut complete",
					logging.String("input", req.Input),
					logging.String("via", string(ffmpeg.ModeAccurate)))
				return Outcome{Input: req.Input, Output: req.Output, Status: StatusSucceeded, Via: ffmpeg.ModeAccurate}
			}
			stage := "accurate fallback"
			if req.Accurate {
				stage = "accurate cut"
			}
			return Outcome{
				Input:  req.Input,
				Output: req.Output,
				Status: StatusFailed,
				Code:   code,
				Err:    fmt.Errorf("%w: %s exited with code %d", ErrExecutionFailed, stage, code),
			}
		}
	}
}

func (c *Cutter) planOnly(req Request, cmd ffmpeg.Command) Outcome {
	fmt.Fprintln(c.plan, c.client.CommandLine(cmd))
	return Outcome{Input: req.Input, Output: req.Output, Status: StatusPlanned, Via: cmd.Mode}
}
