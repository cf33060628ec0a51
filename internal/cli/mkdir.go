package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsops/internal/files/pathutil"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <path>...",
	Short: "Create directories and any missing parents",
	Long: `Create each directory together with its missing parents.

Existing entries are left untouched. With --as-file each path names a file,
and only its containing directory is created.`,
	Example: `  fsops mkdir build/out/assets
  fsops mkdir --as-file logs/2024/app.log`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMkdir,
}

type mkdirOptions struct {
	asFile bool
}

var mkdirFlags mkdirOptions

func init() {
	rootCmd.AddCommand(mkdirCmd)
	mkdirCmd.Flags().BoolVar(&mkdirFlags.asFile, "as-file", false, "Treat each path as a file and create its parent directory")
}

func runMkdir(cmd *cobra.Command, args []string) error {
	rt, err := loadCommandEnv(cmd)
	if err != nil {
		return err
	}

	failed := 0
	for _, arg := range args {
		created, err := rt.ops.EnsureDirectoryPath(arg, mkdirFlags.asFile)
		if err != nil {
			return fmt.Errorf("mkdir %q: %w", arg, err)
		}

		h := rt.ops.Handle(pathutil.Normalize(arg))
		switch {
		case created:
			rt.printer.Success(arg, "created")
		case h.Exists():
			rt.printer.Skipped(arg, "exists")
		case mkdirFlags.asFile && (h.Parent() == nil || h.Parent().IsDir()):
			rt.printer.Skipped(arg, "parent exists")
		default:
			rt.printer.Failure(arg, "could not be created")
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to create %d of %d path(s)", failed, len(args))
	}
	return nil
}
