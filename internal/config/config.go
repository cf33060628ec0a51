package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fsops/pkg/fsops"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables that override the config file.
const (
	EnvVerbose  = "FSOPS_VERBOSE"
	EnvKeepDirs = "FSOPS_KEEP_DIRS"
	EnvDirMode  = "FSOPS_DIR_MODE"
)

type DeleteConfig struct {
	KeepDirectories bool `yaml:"keep_directories"`
}

type ListConfig struct {
	Extensions    []string `yaml:"extensions,omitempty"`
	Pattern       string   `yaml:"pattern,omitempty"`
	ExcludeHidden bool     `yaml:"exclude_hidden"`
}

type ProjectConfig struct {
	Verbose bool         `yaml:"verbose"`
	DirMode string       `yaml:"dir_mode,omitempty"`
	Delete  DeleteConfig `yaml:"delete"`
	List    ListConfig   `yaml:"list"`
}

// Default returns the configuration used when no fsops.yaml is present.
func Default() *ProjectConfig {
	return &ProjectConfig{}
}

// Load reads fsops.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, fsops.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", fsops.ErrInvalidConfig, configPath, err)
	}
	if _, err := cfg.Mode(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault is Load that falls back to Default when fsops.yaml is missing.
func LoadOrDefault(dir string) (*ProjectConfig, error) {
	cfg, err := Load(dir)
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv loads .env files into the process environment and applies the
// FSOPS_* overrides to cfg. Without envFiles, a .env in the working directory
// is loaded if present. Variables already set in the environment win over the
// files.
func (cfg *ProjectConfig) ApplyEnv(envFiles ...string) error {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return fmt.Errorf("%w: env file: %v", fsops.ErrInvalidConfig, err)
	}

	if v, ok := os.LookupEnv(EnvVerbose); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", fsops.ErrInvalidConfig, EnvVerbose, v)
		}
		cfg.Verbose = b
	}
	if v, ok := os.LookupEnv(EnvKeepDirs); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", fsops.ErrInvalidConfig, EnvKeepDirs, v)
		}
		cfg.Delete.KeepDirectories = b
	}
	if v, ok := os.LookupEnv(EnvDirMode); ok && v != "" {
		cfg.DirMode = v
		if _, err := cfg.Mode(); err != nil {
			return err
		}
	}
	return nil
}

// Mode parses DirMode as octal permission bits. An empty DirMode yields
// fsops.DefaultDirMode.
func (cfg *ProjectConfig) Mode() (os.FileMode, error) {
	s := strings.TrimSpace(cfg.DirMode)
	if s == "" {
		return fsops.DefaultDirMode, nil
	}
	m, err := strconv.ParseUint(strings.TrimPrefix(s, "0o"), 8, 32)
	if err != nil || m == 0 || m > 0777 {
		return 0, fmt.Errorf("%w: dir_mode %q is not an octal permission", fsops.ErrInvalidConfig, cfg.DirMode)
	}
	return os.FileMode(m), nil
}
