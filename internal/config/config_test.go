package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fsops/pkg/fsops"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fsops.ConfigFileName), []byte(content), 0644))
}

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `verbose: true
dir_mode: "0700"
delete:
  keep_directories: true
list:
  extensions: [".go", "md"]
  pattern: "*_test.go"
  exclude_hidden: true
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Verbose)
	assert.Equal(t, "0700", cfg.DirMode)
	assert.True(t, cfg.Delete.KeepDirectories)
	assert.Equal(t, []string{".go", "md"}, cfg.List.Extensions)
	assert.Equal(t, "*_test.go", cfg.List.Pattern)
	assert.True(t, cfg.List.ExcludeHidden)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), mode)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "verbose: false\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.False(t, cfg.Delete.KeepDirectories)
	assert.Empty(t, cfg.List.Extensions)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, fsops.DefaultDirMode, mode)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound))

	cfg, err := LoadOrDefault(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "list: [unclosed\n")

	_, err := Load(dir)
	assert.ErrorIs(t, err, fsops.ErrInvalidConfig)

	_, err = LoadOrDefault(dir)
	assert.ErrorIs(t, err, fsops.ErrInvalidConfig)
}

func TestLoad_InvalidDirMode(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "dir_mode: rwx\n")

	_, err := Load(dir)
	assert.ErrorIs(t, err, fsops.ErrInvalidConfig)
}

func TestMode(t *testing.T) {
	tests := []struct {
		in      string
		want    os.FileMode
		wantErr bool
	}{
		{"", fsops.DefaultDirMode, false},
		{"755", 0755, false},
		{"0750", 0750, false},
		{"0o700", 0700, false},
		{"999", 0, true},
		{"0", 0, true},
		{"1777", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			mode, err := (&ProjectConfig{DirMode: tt.in}).Mode()
			if tt.wantErr {
				assert.ErrorIs(t, err, fsops.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv(EnvVerbose, "true")
	t.Setenv(EnvKeepDirs, "1")
	t.Setenv(EnvDirMode, "0711")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())

	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Delete.KeepDirectories)
	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0711), mode)
}

func TestApplyEnv_InvalidValues(t *testing.T) {
	t.Setenv(EnvVerbose, "maybe")
	assert.ErrorIs(t, Default().ApplyEnv(), fsops.ErrInvalidConfig)

	t.Setenv(EnvVerbose, "")
	t.Setenv(EnvDirMode, "abc")
	assert.ErrorIs(t, Default().ApplyEnv(), fsops.ErrInvalidConfig)
}

func TestApplyEnv_EnvFile(t *testing.T) {
	// register restore, then clear so the file can set it
	t.Setenv(EnvKeepDirs, "")
	require.NoError(t, os.Unsetenv(EnvKeepDirs))

	envFile := filepath.Join(t.TempDir(), "fsops.env")
	require.NoError(t, os.WriteFile(envFile, []byte("# overrides\n"+EnvKeepDirs+"=true\n"), 0644))

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(envFile))
	assert.True(t, cfg.Delete.KeepDirectories)
}

func TestApplyEnv_MissingEnvFile(t *testing.T) {
	err := Default().ApplyEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, fsops.ErrInvalidConfig)
}
