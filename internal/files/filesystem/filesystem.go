package filesystem

import "github.com/vvka-141/fsops/pkg/fsops"

// FileInfo is re-exported so callers of this package need not import io/fs.
type FileInfo = fsops.FileInfo

var (
	_ fsops.FileSystem = (*OSFileSystem)(nil)
	_ fsops.FileSystem = (*MemoryFileSystem)(nil)
)
