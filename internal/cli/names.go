package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsops/internal/fileops"
	"github.com/vvka-141/fsops/pkg/fsops"
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize <name>...",
	Short: "Strip characters Windows does not allow in file names",
	Long: `Print each name with every \ / : * ? " < > | removed, one per line.
Separators are removed too, so pass bare file names. On a terminal, changed
names are shown as "name → clean".`,
	Example: `  fsops sanitize 'Q3: results?.pdf'`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSanitize,
}

var checkCmd = &cobra.Command{
	Use:   "check <name>...",
	Short: "Report file names containing characters Windows does not allow",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(sanitizeCmd)
	rootCmd.AddCommand(checkCmd)
}

func runSanitize(cmd *cobra.Command, args []string) error {
	rt, err := loadCommandEnv(cmd)
	if err != nil {
		return err
	}

	for _, name := range args {
		clean := fileops.SanitizeFileName(name)
		if clean != name {
			rt.logger.Verbose("%q -> %q", name, clean)
			if rt.printer.Styled() {
				rt.printer.Mapping(name, clean)
				continue
			}
		}
		rt.printer.Line(clean)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	rt, err := loadCommandEnv(cmd)
	if err != nil {
		return err
	}

	invalid := 0
	for _, name := range args {
		if fileops.ContainsInvalidChars(name) {
			rt.printer.Failure(name, "contains invalid characters")
			invalid++
			continue
		}
		rt.printer.Success(name, "ok")
	}

	if invalid > 0 {
		return fmt.Errorf("%d name(s) contain one of %s: %w", invalid, fsops.InvalidFileNameChars, fsops.ErrInvalidName)
	}
	return nil
}
