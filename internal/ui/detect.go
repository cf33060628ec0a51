package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ColorEnabled reports whether output written to w should be styled.
//
// Returns false if:
//   - NO_COLOR is set (https://no-color.org)
//   - FSOPS_NO_COLOR=1 is set
//   - CI is set (common CI/CD convention)
//   - w is not a terminal (pipes, files, buffers)
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FSOPS_NO_COLOR") == "1" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
