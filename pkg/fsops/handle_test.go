package fsops_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/fsops/internal/files/filesystem"
	"github.com/vvka-141/fsops/pkg/fsops"
)

func TestHandle_Attributes(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("docs/a.txt", "a")

	file := fsops.NewHandle(mfs, "/data/docs/a.txt")
	assert.True(t, file.Exists())
	assert.True(t, file.IsFile())
	assert.False(t, file.IsDir())
	assert.Equal(t, "a.txt", file.Name())
	assert.Nil(t, file.Children(), "a file has no listing")

	dir := fsops.NewHandle(mfs, "/data/docs")
	assert.True(t, dir.IsDir())
	assert.False(t, dir.IsFile())

	missing := fsops.NewHandle(mfs, "/data/none")
	assert.False(t, missing.Exists())
	assert.False(t, missing.IsFile())
	assert.False(t, missing.IsDir())
	assert.Nil(t, missing.Children())
}

func TestHandle_AttributesAreNotCached(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	h := fsops.NewHandle(mfs, "/data/late.txt")
	require.False(t, h.Exists())

	mfs.AddFile("late.txt", "now")
	assert.True(t, h.Exists())
}

func TestHandle_Parent(t *testing.T) {
	tests := []struct {
		path string
		want string // empty means nil
	}{
		{"/data/docs/a.txt", "/data/docs"},
		{"/data", "/"},
		{"/", ""},
		{"report.txt", ""},
		{"dir/", ""},
		{"dir/report.txt", "dir"},
		{"./report.txt", "."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			h := fsops.NewHandle(nil, filepath.FromSlash(tt.path))
			parent := h.Parent()
			if tt.want == "" {
				assert.Nil(t, parent)
				return
			}
			require.NotNil(t, parent)
			assert.Equal(t, filepath.FromSlash(tt.want), parent.Path())
		})
	}
}

func TestHandle_ChildrenFiltered(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("a.txt", "a")
	mfs.AddFile("b.md", "b")
	mfs.AddDir("c")

	dir := fsops.NewHandle(mfs, "/data")
	require.Len(t, dir.Children(), 3)
	require.Len(t, dir.ChildrenFiltered(nil), 3)

	onlyDirs := fsops.FilterFunc(func(h *fsops.Handle) bool { return h.IsDir() })
	kept := dir.ChildrenFiltered(onlyDirs)
	require.Len(t, kept, 1)
	assert.Equal(t, "c", kept[0].Name())
}

func TestRequireHelpers(t *testing.T) {
	err := fsops.RequireHandle(nil, "file is nil")
	require.ErrorIs(t, err, fsops.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "file is nil")
	assert.NoError(t, fsops.RequireHandle(fsops.NewHandle(nil, "x"), "unused"))

	err = fsops.RequirePath("", "path is empty")
	require.ErrorIs(t, err, fsops.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "path is empty")
	assert.NoError(t, fsops.RequirePath(" ", "unused"))
}
