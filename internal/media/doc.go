// Package media defines the scanned-file model shared by both phases:
// the Kind enum with its fixed extension sets, the Identity tagged union
// (movie, episode, unknown), and the rendered group-key formats the
// report file is keyed by.
package media
