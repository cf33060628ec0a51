package fsops

import "io/fs"

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FileSystem is the set of primitive calls the recursive operations are built on.
// Every method is a single blocking call; implementations hold no resources open
// between calls.
type FileSystem interface {
	// Stat returns metadata for the entry at path.
	// A missing entry must yield an error satisfying errors.Is(err, fs.ErrNotExist).
	Stat(path string) (FileInfo, error)

	// ReadDir returns the immediate children of the directory at path.
	// Order is implementation-defined.
	ReadDir(path string) ([]FileInfo, error)

	// MkdirAll creates the directory at path together with any missing parents.
	MkdirAll(path string) error

	// Remove deletes a file or an empty directory.
	Remove(path string) error
}
