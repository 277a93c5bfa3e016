// Package resolve walks a duplicate report interactively and deletes the
// copies the operator rejects.
//
// TV groups come first ordered by show, season, and episode, then movie
// groups by key. Each group shows its members, a recommendation for
// which copy to keep, and a keep prompt; every deletion is confirmed
// individually and defaults to no. Quitting, or the input stream ending,
// stops the session cleanly with whatever was resolved so far.
//
// Responses arrive through an InputSource so tests can script entire
// sessions without a terminal.
package resolve
