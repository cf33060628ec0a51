package fsops

import (
	"path/filepath"
	"strings"
)

// Handle references a filesystem entry by path. Attributes are queried from the
// underlying FileSystem on every call and never cached, so a Handle stays valid
// (and may start or stop existing) as the tree changes underneath it.
//
// A nil *Handle is the "no entry" value returned by Parent for roots.
type Handle struct {
	fs   FileSystem
	path string
}

// NewHandle creates a handle for path on fs. The path is used as given.
func NewHandle(fs FileSystem, path string) *Handle {
	return &Handle{fs: fs, path: path}
}

// Path returns the path the handle was created with.
func (h *Handle) Path() string { return h.path }

// Name returns the last element of the path.
func (h *Handle) Name() string { return filepath.Base(h.path) }

// FS returns the filesystem the handle lives on.
func (h *Handle) FS() FileSystem { return h.fs }

func (h *Handle) String() string { return h.path }

// Exists reports whether the entry is present. Stat failures other than
// "not found" also report false.
func (h *Handle) Exists() bool {
	_, err := h.fs.Stat(h.path)
	return err == nil
}

// IsFile reports whether the entry exists and is a regular file. Directories,
// fifos, sockets and device nodes are not files.
func (h *Handle) IsFile() bool {
	info, err := h.fs.Stat(h.path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether the entry exists and is a directory.
func (h *Handle) IsDir() bool {
	info, err := h.fs.Stat(h.path)
	return err == nil && info.IsDir()
}

// Parent returns the handle of the containing directory, or nil when the path
// has no parent component: a filesystem root, or a relative path with a single
// element such as "report.txt".
func (h *Handle) Parent() *Handle {
	p := strings.TrimRight(h.path, string(filepath.Separator))
	if p == "" {
		return nil
	}
	if !strings.ContainsAny(p, "/"+string(filepath.Separator)) {
		return nil
	}
	dir := filepath.Dir(p)
	if dir == h.path {
		return nil
	}
	return &Handle{fs: h.fs, path: dir}
}

// Child returns a handle for name inside this handle's path.
func (h *Handle) Child(name string) *Handle {
	return &Handle{fs: h.fs, path: filepath.Join(h.path, name)}
}

// Children returns handles for the immediate children of a directory, in the
// order the FileSystem reports them. It returns nil when the entry is not a
// directory or cannot be listed.
func (h *Handle) Children() []*Handle {
	infos, err := h.fs.ReadDir(h.path)
	if err != nil {
		return nil
	}
	children := make([]*Handle, 0, len(infos))
	for _, info := range infos {
		children = append(children, h.Child(info.Name()))
	}
	return children
}

// ChildrenFiltered is Children restricted to the entries filter accepts.
// A nil filter accepts everything.
func (h *Handle) ChildrenFiltered(filter Filter) []*Handle {
	children := h.Children()
	if children == nil || filter == nil {
		return children
	}
	kept := children[:0]
	for _, child := range children {
		if filter.Accept(child) {
			kept = append(kept, child)
		}
	}
	return kept
}
