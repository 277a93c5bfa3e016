// Package identify turns media paths into identities without touching
// file contents.
//
// Episode detection runs before movie detection and keys off an SxxEyy
// marker anywhere in the path. Show names come from the library layout:
// the first segment under a configured TV root, a directory above a
// season folder, the filename prefix before the marker, or the parent
// directory, in that order. Movies need a parenthesized four-digit year,
// looked for in the first segment under a configured movie root, then the
// filename, then the parent directory; bracket and dot year styles are
// deliberately not recognized. Anything
// that matches neither rule is Unknown, never an error.
package identify
