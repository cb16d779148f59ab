package cutter

import (
	"errors"

	"vidcut/internal/ffmpeg"
)

// ErrExecutionFailed marks cuts whose ffmpeg invocation(s) exited non-zero.
var ErrExecutionFailed = errors.New("ffmpeg execution failed")

// Status classifies the result of processing one input file.
type Status string

const (
	// StatusSucceeded means an ffmpeg invocation produced the output.
	StatusSucceeded Status = "succeeded"
	// StatusFailed means resolution or every attempted invocation failed.
	StatusFailed Status = "failed"
	// StatusSkipped means the input was never processed (missing file).
	StatusSkipped Status = "skipped"
	// StatusPlanned means dry-run mode printed the command without executing.
	StatusPlanned Status = "planned"
)

// Outcome is the per-input result consumed by the reporting layer.
type Outcome struct {
	Input  string
	Output string
	Status Status
	// Via names the strategy that produced the output when Status is
	// StatusSucceeded or StatusPlanned.
	Via ffmpeg.Mode
	// Code is the final ffmpeg exit code when Status is StatusFailed.
	Code int
	Err  error
}

// OK reports whether the outcome should count against the process exit code.
func (o Outcome) OK() bool {
	return o.Status != StatusFailed
}

// Reason renders the failure or skip explanation, empty on success.
func (o Outcome) Reason() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}
