// Package dupes groups identified media files into duplicate groups.
//
// Movies and episodes are grouped separately, keyed by the rendered
// identity key. First-seen key order and member insertion order are both
// preserved so report output is deterministic for a fixed file tree. Only
// groups with at least two members count as duplicates.
package dupes
