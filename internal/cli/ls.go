package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/fsops/internal/filters"
)

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List files recursively",
	Long: `List every file under path (default ".") depth first, one per line.

--ext and --glob restrict which files are printed. --no-hidden skips entries
whose name starts with a dot, including everything inside hidden directories.
--files-only stops at the top level.`,
	Example: `  fsops ls src --ext .go
  fsops ls --glob '*_test.go' --no-hidden`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLs,
}

type lsOptions struct {
	extensions []string
	glob       string
	noHidden   bool
	filesOnly  bool
}

var lsFlags lsOptions

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().StringSliceVar(&lsFlags.extensions, "ext", nil, "Only list files with these extensions (comma-separated)")
	lsCmd.Flags().StringVar(&lsFlags.glob, "glob", "", "Only list files whose name matches this pattern")
	lsCmd.Flags().BoolVar(&lsFlags.noHidden, "no-hidden", false, "Skip dot files and dot directories")
	lsCmd.Flags().BoolVar(&lsFlags.filesOnly, "files-only", false, "Do not descend into subdirectories")
}

func runLs(cmd *cobra.Command, args []string) error {
	rt, err := loadCommandEnv(cmd)
	if err != nil {
		return err
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	exts := rt.cfg.List.Extensions
	if cmd.Flags().Changed("ext") {
		exts = lsFlags.extensions
	}
	pattern := rt.cfg.List.Pattern
	if cmd.Flags().Changed("glob") {
		pattern = lsFlags.glob
	}
	noHidden := rt.cfg.List.ExcludeHidden
	if cmd.Flags().Changed("no-hidden") {
		noHidden = lsFlags.noHidden
	}

	filter := filters.Compose(exts, pattern, noHidden)
	if lsFlags.filesOnly {
		filter = filters.All(filter, filters.FilesOnly())
	}

	files := rt.ops.ListFilesPath(root, filter)
	rt.logger.Verbose("%d file(s) under %s", len(files), root)
	for _, h := range files {
		rt.printer.Path(h.Path())
	}
	return nil
}
