// Package fsops defines the public contracts of the fsops filesystem helpers:
// the primitive FileSystem port, lazily-queried Handles, traversal Filters,
// the Logger interface, sentinel errors and CLI exit codes.
//
// Implementations live under internal/: internal/files/filesystem provides the
// OS and in-memory FileSystem, internal/fileops implements the recursive
// operations on top of it.
package fsops
