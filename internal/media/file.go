package media

import (
	"path/filepath"
	"strings"
)

// File is one scanned media file. The identity is an in-memory attribute;
// reports key groups by the rendered identity, so it is not serialized and
// files loaded from a report carry Identity == nil.
type File struct {
	Path      string   `json:"path"`
	Filename  string   `json:"filename"`
	Extension string   `json:"extension"`
	Size      int64    `json:"size"`
	Kind      Kind     `json:"type"`
	Identity  Identity `json:"-"`
}

// NewFile builds a File for a scanned path. ok is false when the extension
// is not one of the fixed media extensions.
func NewFile(path string, size int64) (File, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	kind, ok := KindForExtension(ext)
	if !ok {
		return File{}, false
	}
	return File{
		Path:      path,
		Filename:  filepath.Base(path),
		Extension: ext,
		Size:      size,
		Kind:      kind,
		Identity:  Unknown{},
	}, true
}
