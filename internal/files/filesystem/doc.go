// Package filesystem provides implementations of fsops.FileSystem.
//
// Implementations:
//   - OSFileSystem: Production implementation using the os package
//   - MemoryFileSystem: In-memory implementation for tests and dry runs
package filesystem
