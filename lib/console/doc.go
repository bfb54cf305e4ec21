// Package console runs console command lines and command scripts.
//
// A script is plain text. Commands are separated by newlines or semicolons,
// arguments by whitespace. Double quotes group an argument and understand the
// \" and \\ escapes. Text from // to the end of the line is a comment unless
// it appears inside quotes.
//
// Commands are looked up by name first. Names no command claims are offered
// to the registered resolvers in order (variables, aliases, ...).
package console
