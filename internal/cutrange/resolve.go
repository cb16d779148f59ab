package cutrange

import (
	"errors"
	"fmt"
	"math"

	"vidcut/internal/timecode"
)

var (
	// ErrInvalidRange marks requests whose start lies beyond the computed end.
	ErrInvalidRange = errors.New("invalid cut range")
	// ErrProbeUnavailable marks tail trims that could not learn the source duration.
	ErrProbeUnavailable = errors.New("source duration unavailable")
)

// Raw carries the optional user-supplied time expressions, already parsed
// into seconds. A nil field means the flag was not supplied.
type Raw struct {
	Start     *float64
	End       *float64
	Duration  *float64
	TrimStart *float64
	TrimEnd   *float64
}

// Resolved is the canonical cut window consumed by the command builders.
// Bounded reports whether Duration is meaningful; an unbounded cut runs to
// the end of the source and omits the duration argument entirely.
type Resolved struct {
	Start    float64
	Duration float64
	Bounded  bool
}

// ProbeFunc fetches the source media's total duration in seconds on demand.
// The boolean reports whether probing succeeded.
type ProbeFunc func() (float64, bool)

// Resolve combines the raw inputs into a Resolved window.
//
// Trim-start composes additively with an explicit start. When neither end
// nor trim-end is present the probe is never invoked and the duration comes
// from the duration flag alone (absent means unbounded). Otherwise the probe
// runs exactly once: trim-end wins over end for defining the cut point, and
// either one wins over an explicit duration.
func Resolve(raw Raw, probe ProbeFunc) (Resolved, error) {
	start := 0.0
	if raw.Start != nil {
		start = *raw.Start
	}
	if raw.TrimStart != nil {
		start += *raw.TrimStart
	}
	start = math.Max(0, start)

	if raw.End == nil && raw.TrimEnd == nil {
		if raw.Duration != nil {
			return Resolved{Start: start, Duration: math.Max(0, *raw.Duration), Bounded: true}, nil
		}
		return Resolved{Start: start}, nil
	}

	var total float64
	probed := false
	if probe != nil {
		total, probed = probe()
	}

	if raw.TrimEnd != nil {
		if !probed {
			return Resolved{}, fmt.Errorf("%w: trim-end needs the total duration and probing failed", ErrProbeUnavailable)
		}
		keepTo := math.Max(0, total-*raw.TrimEnd)
		duration := keepTo - start
		if duration < 0 {
			return Resolved{}, fmt.Errorf("%w: start %s is past keep-to %s",
				ErrInvalidRange, timecode.Format(start), timecode.Format(keepTo))
		}
		return Resolved{Start: start, Duration: duration, Bounded: true}, nil
	}

	duration := *raw.End - start
	if duration < 0 {
		return Resolved{}, fmt.Errorf("%w: start %s is past end %s",
			ErrInvalidRange, timecode.Format(start), timecode.Format(*raw.End))
	}
	return Resolved{Start: start, Duration: duration, Bounded: true}, nil
}
