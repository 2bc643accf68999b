// Package sorter runs a single organization pass over a directory.
//
// A run captures an immutable snapshot of the directory, ensures every
// category directory exists, classifies and moves loose files, then
// reclassifies subfolders that are not themselves category directories by
// the majority category of their direct children. Per-entry problems are
// contained in the run summary; only snapshot or directory-creation
// failures abort the run.
//
// Each run holds a per-directory file lock so two simultaneous invocations
// against the same directory cannot race each other's moves.
package sorter
