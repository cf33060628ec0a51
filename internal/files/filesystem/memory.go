package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements fsops.FileSystem in memory.
// Paths are virtual and always use forward slashes; relative paths resolve
// against the root given to NewMemoryFileSystem.
//
// The *Func hooks let tests inject failures: when set, a hook runs before the
// corresponding operation and a non-nil error is returned in place of it.
type MemoryFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	root    string

	ReadDirFunc  func(path string) error
	MkdirAllFunc func(path string) error
	RemoveFunc   func(path string) error
}

// NewMemoryFileSystem creates a new in-memory filesystem whose root directory
// (and its ancestors) already exist.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean("/" + filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.mkdirChain(root)
	return mfs
}

// resolve maps a caller path to its key in the entries map.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// mkdirChain creates directory entries for p and every missing ancestor.
// Callers must hold the write lock or own mfs exclusively.
func (mfs *MemoryFileSystem) mkdirChain(p string) error {
	if existing, ok := mfs.entries[p]; ok {
		if !existing.info.isDir {
			return fmt.Errorf("not a directory: %s", p)
		}
		return nil
	}
	if p != "/" {
		if err := mfs.mkdirChain(path.Dir(p)); err != nil {
			return err
		}
	}
	mfs.entries[p] = &memoryEntry{
		info: &memoryFileInfo{
			name:    path.Base(p),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
	return nil
}

// AddFile adds a file, creating its parent directories.
// Panics if a parent path is already occupied by a file.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	if err := mfs.mkdirChain(path.Dir(absPath)); err != nil {
		panic(err)
	}
	mfs.entries[absPath] = &memoryEntry{
		content: []byte(content),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
}

// AddDir adds an empty directory together with its parents.
// Panics if the path or a parent is already occupied by a file.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if err := mfs.mkdirChain(mfs.resolve(dirPath)); err != nil {
		panic(err)
	}
}

// ReadFile returns the content of a file.
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	entry, ok := mfs.entries[mfs.resolve(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}
	if entry.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return entry.content, nil
}

// Paths returns every entry path in sorted order (for test verification).
func (mfs *MemoryFileSystem) Paths() []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	paths := make([]string, 0, len(mfs.entries))
	for p := range mfs.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	entry, ok := mfs.entries[mfs.resolve(statPath)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return entry.info, nil
}

// ReadDir returns the immediate children sorted by name, matching os.ReadDir.
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	if mfs.ReadDirFunc != nil {
		if err := mfs.ReadDirFunc(dirPath); err != nil {
			return nil, err
		}
	}

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.resolve(dirPath)
	entry, ok := mfs.entries[absPath]
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: fs.ErrNotExist}
	}
	if !entry.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for p, child := range mfs.entries {
		if p != absPath && path.Dir(p) == absPath {
			result = append(result, child.info)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}

func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	if mfs.MkdirAllFunc != nil {
		if err := mfs.MkdirAllFunc(dirPath); err != nil {
			return err
		}
	}

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	return mfs.mkdirChain(mfs.resolve(dirPath))
}

// Remove deletes a file or an empty directory.
func (mfs *MemoryFileSystem) Remove(removePath string) error {
	if mfs.RemoveFunc != nil {
		if err := mfs.RemoveFunc(removePath); err != nil {
			return err
		}
	}

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(removePath)
	entry, ok := mfs.entries[absPath]
	if !ok {
		return &fs.PathError{Op: "remove", Path: removePath, Err: fs.ErrNotExist}
	}
	if entry.info.isDir {
		prefix := strings.TrimSuffix(absPath, "/") + "/"
		for p := range mfs.entries {
			if p != absPath && strings.HasPrefix(p, prefix) {
				return fmt.Errorf("directory not empty: %s", removePath)
			}
		}
	}
	delete(mfs.entries, absPath)
	return nil
}
