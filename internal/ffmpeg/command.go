package ffmpeg

import (
	"math"
	"path/filepath"
	"strings"

	"vidcut/internal/cutrange"
	"vidcut/internal/timecode"
)

// Mode discriminates the two cut strategies.
type Mode string

const (
	// ModeFast stream-copies without re-encoding; seeks snap to keyframes.
	ModeFast Mode = "fast"
	// ModeAccurate re-encodes video for a frame-exact cut point.
	ModeAccurate Mode = "accurate"
)

// Command is one planned ffmpeg invocation. Args excludes the binary itself.
type Command struct {
	Mode Mode
	Args []string
}

// CutParams is the shared parameter record both builders consume.
type CutParams struct {
	Input     string
	Output    string
	Window    cutrange.Resolved
	Overwrite bool
}

// faststart containers keep their index at the tail by default; relocating
// it lets playback begin before the whole file has downloaded.
var faststartExtensions = map[string]struct{}{
	".mp4": {},
	".m4v": {},
	".mov": {},
}

func wantsFaststart(output string) bool {
	_, ok := faststartExtensions[strings.ToLower(filepath.Ext(output))]
	return ok
}

// BuildFast plans the stream-copy cut. The seek argument goes before -i so
// ffmpeg jumps by keyframe index instead of decoding, and timestamps are
// normalized so the clip restarts at zero.
func BuildFast(p CutParams) Command {
	args := []string{"-hide_banner", overwriteFlag(p.Overwrite)}
	if p.Window.Start > 0 {
		args = append(args, "-ss", timecode.Format(p.Window.Start))
	}
	args = append(args, "-i", p.Input)
	if p.Window.Bounded {
		args = append(args, "-t", timecode.Format(math.Max(0, p.Window.Duration)))
	}
	args = append(args, "-map", "0", "-c", "copy", "-avoid_negative_ts", "make_zero")
	if wantsFaststart(p.Output) {
		args = append(args, "-movflags", "+faststart")
	}
	args = append(args, p.Output)
	return Command{Mode: ModeFast, Args: args}
}

// BuildAccurate plans the frame-accurate cut. Seeking after -i forces a
// decode to the exact timestamp; video is re-encoded with a fast preset
// while audio is copied verbatim.
func BuildAccurate(p CutParams) Command {
	args := []string{"-hide_banner", overwriteFlag(p.Overwrite), "-i", p.Input}
	if p.Window.Start > 0 {
		args = append(args, "-ss", timecode.Format(p.Window.Start))
	}
	if p.Window.Bounded {
		args = append(args, "-t", timecode.Format(math.Max(0, p.Window.Duration)))
	}
	args = append(args, "-map", "0", "-c:v", "libx264", "-preset", "veryfast", "-crf", "18", "-c:a", "copy")
	if wantsFaststart(p.Output) {
		args = append(args, "-movflags", "+faststart")
	}
	args = append(args, p.Output)
	return Command{Mode: ModeAccurate, Args: args}
}

func overwriteFlag(overwrite bool) string {
	if overwrite {
		return "-y"
	}
	return "-n"
}
