//go:build unix

package fileops

import (
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFifo(t *testing.T, path string) {
	t.Helper()
	if err := syscall.Mkfifo(path, 0644); err != nil {
		t.Skipf("mkfifo unsupported here: %v", err)
	}
}

func TestListFiles_SkipsFifo(t *testing.T) {
	dir := t.TempDir()
	makeFifo(t, filepath.Join(dir, "pipe"))
	ops := NewOS(nil)

	assert.Empty(t, ops.ListAllPath(dir))
	assert.Empty(t, ops.ListAllPath(filepath.Join(dir, "pipe")))
}

func TestDeleteRecursive_LeavesFifo(t *testing.T) {
	dir := t.TempDir()
	pipe := filepath.Join(dir, "pipe")
	makeFifo(t, pipe)
	ops := NewOS(nil)

	h := ops.Handle(pipe)
	assert.True(t, h.Exists())
	assert.False(t, h.IsFile(), "a fifo is not a regular file")
	assert.False(t, h.IsDir())

	deleted, err := ops.DeleteRecursive(h, true)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.True(t, h.Exists())

	// the parent cannot be removed while the fifo is inside
	deleted, err = ops.DeleteAllPath(dir)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.True(t, h.Exists())
}
