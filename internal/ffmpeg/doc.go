// Package ffmpeg wraps the external ffmpeg binary.
//
// It covers three concerns: locating the executable (explicit override, the
// VIDCUT_FFMPEG environment variable, then PATH), building the trim command
// lines (a fast stream-copy variant and a frame-accurate re-encoding
// variant), and invoking the binary through an injectable Executor so tests
// never spawn real processes.
//
// The duration probe parses ffmpeg's own diagnostic banner instead of
// shelling out to ffprobe, which keeps the tool's external surface to a
// single binary.
package ffmpeg
