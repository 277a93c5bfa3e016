// Package roots labels media paths with the storage root they live on.
// Libraries are laid out as <mount>/MOVIES/... and <mount>/TV/..., so the
// segment before those markers is the mount; paths without a marker get a
// coarse two-segment label. The label is only ever compared for equality.
package roots

import (
	"path/filepath"
	"strings"
)

// Resolve returns the storage-root label for a path. An absolute path's
// leading separator counts as its first segment, so "/data/stuff/x.mkv"
// falls back to "/data". Empty input resolves to "unknown".
func Resolve(path string) string {
	if strings.TrimSpace(path) == "" {
		return "unknown"
	}
	parts := split(path)
	for i, part := range parts {
		if (part == "MOVIES" || part == "TV") && i > 0 {
			return join(parts[:i])
		}
	}
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return join(parts)
}

func split(path string) []string {
	slashed := filepath.ToSlash(path)
	var parts []string
	if strings.HasPrefix(slashed, "/") {
		parts = append(parts, "/")
		slashed = strings.TrimLeft(slashed, "/")
	}
	for _, segment := range strings.Split(slashed, "/") {
		if segment != "" {
			parts = append(parts, segment)
		}
	}
	return parts
}

func join(parts []string) string {
	if len(parts) == 0 {
		return "unknown"
	}
	if parts[0] == "/" {
		return "/" + strings.Join(parts[1:], "/")
	}
	return strings.Join(parts, "/")
}
