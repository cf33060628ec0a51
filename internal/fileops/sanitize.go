package fileops

import (
	"regexp"

	"github.com/vvka-141/fsops/pkg/fsops"
)

var invalidFileNameChars = regexp.MustCompile("[" + regexp.QuoteMeta(fsops.InvalidFileNameChars) + "]")

// SanitizeFileName removes every character reserved in Windows file names
// (\ / : * ? " < > |). Separators are stripped too, so pass bare names rather
// than paths. The empty string is returned unchanged.
func SanitizeFileName(name string) string {
	if name == "" {
		return name
	}
	return invalidFileNameChars.ReplaceAllString(name, "")
}

// ContainsInvalidChars reports whether name contains any character
// SanitizeFileName would remove.
func ContainsInvalidChars(name string) bool {
	return name != "" && invalidFileNameChars.MatchString(name)
}
