package fileops

import (
	"strings"

	"github.com/vvka-141/fsops/internal/files/filesystem"
	"github.com/vvka-141/fsops/internal/files/pathutil"
	"github.com/vvka-141/fsops/internal/logging"
	"github.com/vvka-141/fsops/pkg/fsops"
)

// Ops runs the recursive operations. Handles carry their own filesystem; the
// one given to New backs the handles Ops builds from path strings.
// Ops is safe for concurrent use as long as the filesystem and logger are.
type Ops struct {
	fs     fsops.FileSystem
	logger fsops.Logger
}

// New creates Ops for fs. A nil logger discards all messages.
// Panics if fs is nil.
func New(fs fsops.FileSystem, logger fsops.Logger) *Ops {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Ops{fs: fs, logger: logger}
}

// NewOS creates Ops bound to the OS filesystem.
func NewOS(logger fsops.Logger) *Ops {
	return New(filesystem.NewOSFileSystem(), logger)
}

// FS returns the filesystem the operations run against.
func (o *Ops) FS() fsops.FileSystem { return o.fs }

// Handle creates a handle for path on this Ops' filesystem without normalizing it.
func (o *Ops) Handle(path string) *fsops.Handle {
	return fsops.NewHandle(o.fs, path)
}

// EnsureDirectoryExists creates the directory h denotes, along with any missing
// ancestors. With asFile set, h is taken to be a file and its parent directory
// is created instead.
//
// Returns true only when a directory was actually created. Returns false
// without touching anything when h already exists or, with asFile, when h has
// no parent or its parent already exists. Returns false when creation fails.
// Returns ErrInvalidArgument for a nil handle.
func (o *Ops) EnsureDirectoryExists(h *fsops.Handle, asFile bool) (bool, error) {
	if err := fsops.RequireHandle(h, "handle is nil"); err != nil {
		return false, err
	}
	if h.Exists() {
		return false, nil
	}

	target := h
	if asFile {
		target = h.Parent()
	}
	if target == nil || target.Exists() {
		return false, nil
	}

	if err := target.FS().MkdirAll(target.Path()); err != nil {
		o.logger.Verbose("mkdir %s failed: %v", target.Path(), err)
		return false, nil
	}
	o.logger.Verbose("created directory %s", target.Path())
	return true, nil
}

// EnsureDir is EnsureDirectoryExists with h treated as a directory.
func (o *Ops) EnsureDir(h *fsops.Handle) (bool, error) {
	return o.EnsureDirectoryExists(h, false)
}

// EnsureDirectoryPath normalizes path and calls EnsureDirectoryExists on it.
// Returns ErrInvalidArgument for an empty path.
func (o *Ops) EnsureDirectoryPath(path string, asFile bool) (bool, error) {
	if err := fsops.RequirePath(path, "path is empty"); err != nil {
		return false, err
	}
	return o.EnsureDirectoryExists(o.Handle(pathutil.Normalize(path)), asFile)
}

// EnsureDirPath is EnsureDirectoryPath with path treated as a directory.
func (o *Ops) EnsureDirPath(path string) (bool, error) {
	return o.EnsureDirectoryPath(path, false)
}

// DeleteRecursive removes h. A regular file is removed directly. For a directory every
// child is processed first, with the same deleteDirs flag; the directory itself
// is removed afterwards only when deleteDirs is set, so with deleteDirs false
// the directory skeleton is left in place.
//
// The result is true when at least one removal anywhere in the subtree
// succeeded. It is deliberately coarse: true does not mean the subtree is gone,
// and individual failures are logged and skipped rather than aborting the walk.
// Returns false for a missing entry and for special files (fifos, sockets,
// devices), which are never removed. Returns ErrInvalidArgument for a nil handle.
func (o *Ops) DeleteRecursive(h *fsops.Handle, deleteDirs bool) (bool, error) {
	if err := fsops.RequireHandle(h, "handle is nil"); err != nil {
		return false, err
	}
	return o.deleteRecursive(h, deleteDirs), nil
}

func (o *Ops) deleteRecursive(h *fsops.Handle, deleteDirs bool) bool {
	info, err := h.FS().Stat(h.Path())
	if err != nil {
		return false
	}
	if info.Mode().IsRegular() {
		return o.remove(h)
	}
	if !info.IsDir() {
		// fifos, sockets and devices have no listing and are left alone
		o.logger.Verbose("skipped %s: not a regular file or directory", h.Path())
		return false
	}

	deleted := false
	for _, child := range h.Children() {
		if o.deleteRecursive(child, deleteDirs) {
			deleted = true
		}
	}
	if deleteDirs && o.remove(h) {
		deleted = true
	}
	return deleted
}

func (o *Ops) remove(h *fsops.Handle) bool {
	if err := h.FS().Remove(h.Path()); err != nil {
		o.logger.Verbose("remove %s failed: %v", h.Path(), err)
		return false
	}
	o.logger.Verbose("removed %s", h.Path())
	return true
}

// Delete is DeleteRecursive with directories removed too.
func (o *Ops) Delete(h *fsops.Handle) (bool, error) {
	return o.DeleteRecursive(h, true)
}

// DeletePath normalizes path and calls DeleteRecursive on it.
// Returns ErrInvalidArgument for an empty path.
func (o *Ops) DeletePath(path string, deleteDirs bool) (bool, error) {
	if err := fsops.RequirePath(path, "path is empty"); err != nil {
		return false, err
	}
	return o.DeleteRecursive(o.Handle(pathutil.Normalize(path)), deleteDirs)
}

// DeleteAllPath is DeletePath with directories removed too.
func (o *Ops) DeleteAllPath(path string) (bool, error) {
	return o.DeletePath(path, true)
}

// ListFiles returns every file under h that filter accepts, depth first in the
// order the filesystem lists directories. A regular file handle yields itself
// when accepted. Special files are never listed. A nil or missing handle yields
// an empty slice.
//
// The filter is applied to the children of every directory before descending,
// directories included: a subdirectory the filter rejects is skipped with
// everything beneath it, even files the filter would accept. Use a filter that
// accepts directories (see internal/filters) to restrict only the files.
func (o *Ops) ListFiles(h *fsops.Handle, filter fsops.Filter) []*fsops.Handle {
	files := make([]*fsops.Handle, 0)
	if h == nil {
		return files
	}
	return o.listFiles(h, filter, files)
}

func (o *Ops) listFiles(h *fsops.Handle, filter fsops.Filter, acc []*fsops.Handle) []*fsops.Handle {
	info, err := h.FS().Stat(h.Path())
	if err != nil {
		return acc
	}
	if info.Mode().IsRegular() {
		if filter == nil || filter.Accept(h) {
			acc = append(acc, h)
		}
		return acc
	}
	if !info.IsDir() {
		return acc
	}

	for _, child := range h.ChildrenFiltered(filter) {
		acc = o.listFiles(child, filter, acc)
	}
	return acc
}

// ListAll is ListFiles without a filter.
func (o *Ops) ListAll(h *fsops.Handle) []*fsops.Handle {
	return o.ListFiles(h, nil)
}

// ListFilesPath lists the tree at path. Surrounding whitespace is trimmed;
// the path is not normalized. A blank path yields an empty slice.
func (o *Ops) ListFilesPath(path string, filter fsops.Filter) []*fsops.Handle {
	path = strings.TrimSpace(path)
	if path == "" {
		return make([]*fsops.Handle, 0)
	}
	return o.ListFiles(o.Handle(path), filter)
}

// ListAllPath is ListFilesPath without a filter.
func (o *Ops) ListAllPath(path string) []*fsops.Handle {
	return o.ListFilesPath(path, nil)
}
