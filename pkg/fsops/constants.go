package fsops

import "io/fs"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Command completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitInvalidName     = 10 // check found names with reserved characters
	ExitInvalidArgument = 11 // Required path or handle missing
	ExitConfigError     = 12 // fsops.yaml or environment could not be parsed
)

const (
	// DefaultDirMode is the permission used for directories created by MkdirAll.
	DefaultDirMode fs.FileMode = 0755

	// InvalidFileNameChars lists the characters reserved in Windows file names.
	InvalidFileNameChars = `\/:*?"<>|`

	// ConfigFileName is the project configuration file looked up by the CLI.
	ConfigFileName = "fsops.yaml"
)
