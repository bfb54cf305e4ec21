// Package config locates the client's configuration file and loads the
// settings of the odacfg tool itself.
//
// # Two kinds of configuration
//
// The client config (odamex.cfg) is a console script holding archived
// variables, key bindings and aliases. This package only resolves where it
// lives; reading and writing it is done by the persist package.
//
// The tool settings (odacfg.yaml) are read with viper from the user
// directory, the environment (ODACFG_ prefix) and command line flags. They
// hold the path override and the defaults for artifact naming.
//
// # User directory
//
// Both files live in the user directory, $HOME/.odamex unless the user_dir
// setting points elsewhere. A --config flag (or ODACFG_CONFIG) replaces the
// client config path entirely and is used verbatim.
package config
