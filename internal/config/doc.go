// Package config loads and validates the vidcut configuration file.
//
// Configuration is optional: every field has a default, and the file only
// exists to pin an ffmpeg binary, change the batch output suffix, or adjust
// logging. Lookup order is an explicit --config path, then
// ~/.config/vidcut/config.toml, then vidcut.toml in the working directory.
package config
