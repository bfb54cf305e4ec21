package config

import (
	"path/filepath"

	"github.com/odamex/odacfg/lib/util"
)

// ODAMEX_BASE_DIR is the user directory name under $HOME.
const ODAMEX_BASE_DIR = ".odamex"

// DefaultConfigFile is the client config file name inside the user directory.
const DefaultConfigFile = "odamex.cfg"

// ConfigExtension is appended to config filenames given without it.
const ConfigExtension = ".cfg"

// Settings holds the odacfg tool settings.
type Settings struct {
	// Config overrides the client config path when non-empty.
	Config string
	// UserDir is where the client keeps its files.
	// Default: $HOME/.odamex
	UserDir string
	Naming  NamingSettings
}

// NamingSettings are the defaults for artifact filenames.
type NamingSettings struct {
	// Template is expanded with the tokens package.
	// Default: Odamex_%g_%d_%t
	Template string
	// Extension of the artifact, without the dot.
	// Default: png
	Extension string
	// Dir is where artifacts are written.
	// Default: the user directory
	Dir string
	// StateFile is a YAML game state snapshot used for expansion.
	StateFile string
}

// BuildOdamexDirPath returns the default user directory.
func BuildOdamexDirPath() string {
	return filepath.Join(util.UserHome(), ODAMEX_BASE_DIR)
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	dir := BuildOdamexDirPath()
	return Settings{
		Config:  "",
		UserDir: dir,
		Naming: NamingSettings{
			Template:  "Odamex_%g_%d_%t",
			Extension: "png",
			Dir:       dir,
			StateFile: "",
		},
	}
}
