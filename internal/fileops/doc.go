// Package fileops implements recursive directory creation, recursive delete,
// recursive listing with filters, and file-name sanitization on top of an
// fsops.FileSystem.
//
// All operations are synchronous, hold no state between calls and take no
// locks; concurrent mutation of the same tree by others leads to whatever the
// underlying filesystem does. Filesystem failures are absorbed: they surface
// only as a false result or a shorter listing, never as an error. The only
// error an operation returns is fsops.ErrInvalidArgument, and it is returned
// before anything on disk is touched.
package fileops
