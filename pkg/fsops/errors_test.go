package fsops_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/fsops/pkg/fsops"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, fsops.ExitSuccess},
		{"unknown flag", errors.New("unknown flag: --foo"), fsops.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), fsops.ExitUsageError},
		{"unknown command", errors.New(`unknown command "frob" for "fsops"`), fsops.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), fsops.ExitUsageError},
		{"requires args", errors.New("requires at least 1 arg(s), only received 0"), fsops.ExitUsageError},
		{"general error", errors.New("something went wrong"), fsops.ExitGeneralError},
		{"invalid argument", fmt.Errorf("mkdir: %w", fsops.ErrInvalidArgument), fsops.ExitInvalidArgument},
		{"invalid name", fmt.Errorf("2 names: %w", fsops.ErrInvalidName), fsops.ExitInvalidName},
		{"invalid config", fmt.Errorf("%w: bad yaml", fsops.ErrInvalidConfig), fsops.ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fsops.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
