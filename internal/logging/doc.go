// Package logging provides concrete implementations of the fsops.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr (or a given writer) with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
