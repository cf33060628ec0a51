// Package pathutil canonicalizes textual paths before handles are built from them.
package pathutil

import (
	"path"
	"path/filepath"
	"strings"
)

// Normalize canonicalizes p: backslashes become forward slashes, repeated
// separators and "." / ".." segments are collapsed, and the result is converted
// to the host separator. Drive prefixes ("C:") and UNC prefixes ("//server")
// survive. An empty path stays empty.
func Normalize(p string) string {
	if p == "" {
		return ""
	}

	s := strings.ReplaceAll(p, `\`, "/")

	var prefix string
	if hasDrive(s) {
		prefix, s = s[:2], s[2:]
	} else if strings.HasPrefix(s, "//") && !strings.HasPrefix(s, "///") {
		// UNC share: keep one extra slash, Clean collapses the rest
		prefix, s = "/", s[1:]
	}

	if s == "" {
		return filepath.FromSlash(prefix)
	}
	return filepath.FromSlash(prefix + path.Clean(s))
}

func hasDrive(s string) bool {
	if len(s) < 2 || s[1] != ':' {
		return false
	}
	c := s[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
