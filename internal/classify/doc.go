// Package classify decides which category a file or folder belongs to.
//
// Both entry points are pure and total: they never touch the filesystem,
// always return a category name, and are deterministic for a given table
// order. Filename prefix rules outrank extension rules for files; folders
// are assigned by strict majority of their direct children's extension
// categories, falling back to the table default on empty folders and ties.
package classify
