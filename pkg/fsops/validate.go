package fsops

import "fmt"

// RequireHandle returns an error wrapping ErrInvalidArgument when h is nil.
func RequireHandle(h *Handle, message string) error {
	if h == nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, message)
	}
	return nil
}

// RequirePath returns an error wrapping ErrInvalidArgument when path is empty.
func RequirePath(path string, message string) error {
	if path == "" {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, message)
	}
	return nil
}
