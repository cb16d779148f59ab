// Package main hosts the vidcut CLI entrypoint and command graph.
//
// The root command performs the cut itself: it parses the time flags,
// expands input arguments, and hands each file to the cutter. Subcommands
// cover environment inspection (doctor) and configuration scaffolding.
//
// Keep this package lean: time arithmetic, range resolution, command
// synthesis, and execution all live in the internal packages; this layer
// only translates flags into requests and renders outcomes.
package main
