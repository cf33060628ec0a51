package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsops/internal/files/pathutil"
)

var rmCmd = &cobra.Command{
	Use:   "rm <path>...",
	Short: "Delete files and directory trees",
	Long: `Delete each path. Directories are emptied depth first and then removed,
unless --keep-dirs is given, in which case only files are deleted and the
directory skeleton stays.

Entries that cannot be removed are skipped; the command reports paths that
survived and exits non-zero.`,
	Example: `  fsops rm build
  fsops rm --keep-dirs cache
  fsops rm --dry-run dist`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRm,
}

type rmOptions struct {
	keepDirs bool
	dryRun   bool
}

var rmFlags rmOptions

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolVar(&rmFlags.keepDirs, "keep-dirs", false, "Delete files only and keep the directories (default from fsops.yaml delete.keep_directories)")
	rmCmd.Flags().BoolVar(&rmFlags.dryRun, "dry-run", false, "List the files that would be deleted without deleting anything")
}

func runRm(cmd *cobra.Command, args []string) error {
	rt, err := loadCommandEnv(cmd)
	if err != nil {
		return err
	}

	keepDirs := rt.cfg.Delete.KeepDirectories
	if cmd.Flags().Changed("keep-dirs") {
		keepDirs = rmFlags.keepDirs
	}

	if rmFlags.dryRun {
		for _, arg := range args {
			for _, h := range rt.ops.ListAllPath(pathutil.Normalize(arg)) {
				rt.printer.Path(h.Path())
			}
		}
		return nil
	}

	failed := 0
	for _, arg := range args {
		h := rt.ops.Handle(pathutil.Normalize(arg))
		existed := h.Exists()

		deleted, err := rt.ops.DeletePath(arg, !keepDirs)
		if err != nil {
			return fmt.Errorf("rm %q: %w", arg, err)
		}

		// deleted only says something was removed; check what is left
		switch {
		case !existed:
			rt.printer.Skipped(arg, "not found")
		case !keepDirs && h.Exists():
			rt.printer.Failure(arg, "partially removed")
			failed++
		case keepDirs && len(rt.ops.ListAll(h)) > 0:
			rt.printer.Failure(arg, "files remain")
			failed++
		case deleted:
			rt.printer.Success(arg, "removed")
		default:
			rt.printer.Skipped(arg, "nothing to remove")
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to fully remove %d of %d path(s)", failed, len(args))
	}
	return nil
}
