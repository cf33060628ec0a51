package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsops/internal/config"
	"github.com/vvka-141/fsops/internal/fileops"
	"github.com/vvka-141/fsops/internal/files/filesystem"
	"github.com/vvka-141/fsops/internal/logging"
	"github.com/vvka-141/fsops/internal/ui"
	"github.com/vvka-141/fsops/pkg/fsops"
)

var rootCmd = &cobra.Command{
	Use:   "fsops",
	Short: "Recursive filesystem helpers",
	Long: `fsops creates directory trees, deletes them, lists files with filters,
and cleans file names of characters Windows does not allow (\ / : * ? " < > |).

Operations are best-effort: a path that cannot be created or removed is
reported, never retried, and the rest of the work carries on.

Configuration is read from fsops.yaml in the --config directory, then from
a .env file and FSOPS_* environment variables.

Exit Codes:
  0  - Success
  1  - General error (some paths could not be processed)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - check found names with invalid characters
  11 - Empty path argument
  12 - Invalid fsops.yaml or FSOPS_* environment value`,
	SilenceUsage: true,
}

type globalOptions struct {
	verbose   bool
	configDir string
	envFile   string
}

var globalFlags globalOptions

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&globalFlags.configDir, "config", ".", "Directory containing "+fsops.ConfigFileName)
	rootCmd.PersistentFlags().StringVar(&globalFlags.envFile, "env-file", "", "Load environment overrides from this file instead of .env")
}

// commandEnv bundles what every command needs, built from flags and configuration.
type commandEnv struct {
	cfg     *config.ProjectConfig
	logger  fsops.Logger
	ops     *fileops.Ops
	printer *ui.Printer
}

// loadCommandEnv resolves configuration (fsops.yaml, then env, then flags)
// and wires the OS filesystem, logger and printer for cmd.
func loadCommandEnv(cmd *cobra.Command) (*commandEnv, error) {
	cfg, err := config.LoadOrDefault(globalFlags.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", fsops.ConfigFileName, err)
	}

	var envFiles []string
	if globalFlags.envFile != "" {
		envFiles = append(envFiles, globalFlags.envFile)
	}
	if err := cfg.ApplyEnv(envFiles...); err != nil {
		return nil, err
	}
	if globalFlags.verbose {
		cfg.Verbose = true
	}

	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}

	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), cfg.Verbose)
	logger.Verbose("directory mode %04o", mode)

	return &commandEnv{
		cfg:     cfg,
		logger:  logger,
		ops:     fileops.New(filesystem.NewOSFileSystemWithMode(mode), logger),
		printer: ui.NewPrinter(cmd.OutOrStdout()),
	}, nil
}
