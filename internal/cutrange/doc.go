// Package cutrange reconciles the user's time expressions into one
// canonical (start, duration) pair.
//
// The five inputs (start, end, duration, trim-start, trim-end) are all
// optional and may overlap; Resolve applies a fixed precedence and consults
// the source's total duration only when an end-relative input actually
// requires it. Probing costs a full ffmpeg invocation per file, so the
// probe is passed in as a deferred callable and invoked at most once.
package cutrange
