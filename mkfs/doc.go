// Package mkfs has the file system operations of a wrapper run: sorting
// generated files into source and header directories and touching the lint
// sentinel.
package mkfs
