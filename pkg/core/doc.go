// Package core wires the build pipeline: validate the rules directory,
// discover rule documents, short-circuit on dry-run, then drive every
// active provider through init, per-rule handle fan-out, and finish.
//
// The pipeline is fail-fast. The first error from any phase aborts the run;
// filesystem writes already issued by other providers are not reversed.
package core
