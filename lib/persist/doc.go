// Package persist loads the client config at startup and writes it back on
// demand or at shutdown.
//
// # Saved file layout
//
//	// Generated by Odamex <version> - don't hurt anything
//
//	// --- Console variables ---
//
//	<archived variables>
//	// --- Key Bindings ---
//
//	unbindall
//	<primary bindings>
//	<double-tap bindings>
//
//	// --- Automap Bindings ---
//
//	unambind all
//	<automap bindings>
//
//	// --- Aliases ---
//
//	<aliases>
//
// The section order is fixed so that files stay readable by every client
// version. The unbindall and unambind all lines clear the defaults installed
// before the file runs, so a loaded file reproduces the saved bindings
// exactly.
//
// # Save guard
//
// Save does nothing until Load has completed once. A client that fails
// before loading would otherwise replace a good config with an empty one.
//
// A config file that cannot be opened for writing is skipped silently.
package persist
