package filesystem

import (
	"fmt"
	"os"

	"github.com/vvka-141/fsops/pkg/fsops"
)

// OSFileSystem implements fsops.FileSystem for the OS filesystem
type OSFileSystem struct {
	dirMode os.FileMode
}

// NewOSFileSystem creates a new OS filesystem that creates directories with
// fsops.DefaultDirMode.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{dirMode: fsops.DefaultDirMode}
}

// NewOSFileSystemWithMode creates an OS filesystem that creates directories with mode.
// A zero mode falls back to fsops.DefaultDirMode.
func NewOSFileSystemWithMode(mode os.FileMode) *OSFileSystem {
	if mode == 0 {
		mode = fsops.DefaultDirMode
	}
	return &OSFileSystem{dirMode: mode}
}

// DirMode returns the permission bits used for new directories.
func (p *OSFileSystem) DirMode() os.FileMode { return p.dirMode }

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}

// ReadDir returns the directory entries in the order os.ReadDir reports them
// (sorted by file name). Non-directories are rejected before they are opened,
// since opening a fifo blocks until a writer appears.
func (p *OSFileSystem) ReadDir(path string) ([]FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to read directory: %s is not a directory", path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	result := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			// entry vanished between listing and stat
			continue
		}
		result = append(result, info)
	}

	return result, nil
}

func (p *OSFileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, p.dirMode)
}

func (p *OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}
