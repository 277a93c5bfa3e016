// Package textutil provides the text normalization used for duplicate
// group keys.
//
// Keys must compare equal across cosmetic filename differences, so the
// normalizer lowercases, strips punctuation, and collapses whitespace
// runs. Display strings are never normalized here; callers that want
// pretty output keep the original casing.
package textutil
