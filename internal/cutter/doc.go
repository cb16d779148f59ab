// Package cutter orchestrates one trim per input file.
//
// Cut resolves the requested time window, plans the fast stream-copy and
// accurate re-encode commands, and drives the execution state machine:
// run the fast command first, fall back to the accurate command on any
// non-zero exit, and report a per-input outcome. Forcing accurate mode
// skips the fast attempt; dry-run stops after printing the planned command.
package cutter
