// Package navigator holds the client-side paging state machine.
//
// State is a value. Every transition goes through Reduce, which returns a new
// State and never edits the old one. A fetch is tagged with a sequence number
// when it starts; a completion whose number is not the latest issued is
// dropped, so the most recently requested page always wins regardless of the
// order responses arrive in. A failed fetch leaves page, total and items as
// they were and only records the error.
//
// Navigator wraps the reducer for blocking callers. The terminal browser
// drives the same reducer from bubbletea messages instead.
package navigator
