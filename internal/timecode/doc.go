// Package timecode converts between human time expressions and seconds.
//
// Parse accepts the forms users type on the command line: plain seconds
// ("45.5"), explicit second or millisecond suffixes ("90s", "250ms"), and
// colon clock notation with up to three fields ("1:02:03.5", "02:03").
// Format renders seconds back into the fixed-width HH:MM:SS.mmm timestamp
// that ffmpeg expects on -ss and -t.
package timecode
