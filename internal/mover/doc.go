// Package mover relocates a single file or folder into its category
// directory, handling collision-safe placement.
//
// Every operation returns an explicit Result instead of only logging: the
// orchestrator aggregates these into the run summary while the mover emits
// the per-entry log line (info for moves and no-ops, warn for collisions,
// error for failures). A rename that fails because source and destination
// sit on different filesystems falls back to copy-then-remove.
package mover
