// Package files groups the low-level filesystem pieces the operations build on.
//
// Sub-packages:
//   - filesystem: fsops.FileSystem implementations (OS and in-memory)
//   - pathutil: path canonicalization applied to user-supplied paths
package files
