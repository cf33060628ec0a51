// Package filters provides ready-made fsops.Filter values for listing.
//
// ListFiles applies its filter to directories as well as files, and a rejected
// directory is not descended into. The file-oriented filters here (Extensions,
// Glob) therefore accept every directory, so they restrict which files are
// returned without pruning the walk. Compose with Not, All and Any to prune on
// purpose.
package filters

import (
	"path"
	"strings"

	"github.com/vvka-141/fsops/pkg/fsops"
)

// Extensions accepts directories and files whose extension matches one of
// exts, case-insensitively. A leading dot is optional. With no extensions it
// accepts everything.
func Extensions(exts ...string) fsops.Filter {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}

	return fsops.FilterFunc(func(h *fsops.Handle) bool {
		if len(set) == 0 || h.IsDir() {
			return true
		}
		_, ok := set[strings.ToLower(path.Ext(h.Name()))]
		return ok
	})
}

// Glob accepts directories and files whose base name matches pattern
// (path.Match syntax). A malformed pattern matches no file.
func Glob(pattern string) fsops.Filter {
	return fsops.FilterFunc(func(h *fsops.Handle) bool {
		if h.IsDir() {
			return true
		}
		ok, err := path.Match(pattern, h.Name())
		return err == nil && ok
	})
}

// NoHidden rejects entries whose name starts with a dot, pruning hidden
// directories with their contents.
func NoHidden() fsops.Filter {
	return fsops.FilterFunc(func(h *fsops.Handle) bool {
		return !strings.HasPrefix(h.Name(), ".")
	})
}

// FilesOnly accepts only plain files. Given to ListFiles on a directory it
// stops the walk at the first level.
func FilesOnly() fsops.Filter {
	return fsops.FilterFunc(func(h *fsops.Handle) bool {
		return h.IsFile()
	})
}

// All accepts a handle when every non-nil filter does. With none it accepts everything.
func All(filters ...fsops.Filter) fsops.Filter {
	return fsops.FilterFunc(func(h *fsops.Handle) bool {
		for _, f := range filters {
			if f != nil && !f.Accept(h) {
				return false
			}
		}
		return true
	})
}

// Any accepts a handle when at least one non-nil filter does. With none it rejects everything.
func Any(filters ...fsops.Filter) fsops.Filter {
	return fsops.FilterFunc(func(h *fsops.Handle) bool {
		for _, f := range filters {
			if f != nil && f.Accept(h) {
				return true
			}
		}
		return false
	})
}

// Not inverts f.
func Not(f fsops.Filter) fsops.Filter {
	return fsops.FilterFunc(func(h *fsops.Handle) bool {
		return !f.Accept(h)
	})
}

// Compose builds the filter used by the ls command. It returns nil (accept
// everything) when no option is set, so the listing runs unfiltered.
func Compose(exts []string, pattern string, excludeHidden bool) fsops.Filter {
	var parts []fsops.Filter
	if excludeHidden {
		parts = append(parts, NoHidden())
	}
	if len(exts) > 0 {
		parts = append(parts, Extensions(exts...))
	}
	if pattern != "" {
		parts = append(parts, Glob(pattern))
	}

	switch len(parts) {
	case 0:
		return nil
	case 1:
		return parts[0]
	default:
		return All(parts...)
	}
}
