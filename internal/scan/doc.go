// Package scan walks configured media trees, identifies what each file
// is, and writes duplicate reports.
//
// The default scan groups video files by extracted identity (movie title
// and year, or show/season/episode) and persists a JSON report plus a
// human-readable summary. The by-hash variant groups media files by
// SHA-256 digest instead, catching exact copies that identity extraction
// cannot see; its report uses a different shape and is not consumed by
// the resolver.
package scan
