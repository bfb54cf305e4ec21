// Package tokens expands %-prefixed codes in artifact filename templates
// (screenshots, demo recordings) against a read-only game state snapshot.
//
// # Codes
//
//	%d  date, YYYYMMDD
//	%t  time, HHMMSS
//	%n  player name
//	%g  short game mode (COOP, SOLO, DUEL, DM, TDM, CTF)
//	%w  basename of the map resource file
//	%m  map name
//	%r  "g" followed by the short build hash
//	%%  a literal percent sign
//
// A percent sign followed by any other character is dropped together with
// that character. A percent sign in the final position is kept as is.
//
// # Resource file selection
//
// %w assumes the base resource file is always loaded at position 0. With
// exactly two files loaded the map comes from position 1; with more than two
// the first add-on, at position 2, is used instead. With zero or one file it
// expands to nothing.
package tokens
