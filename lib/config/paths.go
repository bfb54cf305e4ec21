package config

import (
	"path/filepath"
)

// PathResolver resolves the effective client config path.
type PathResolver struct {
	// Override is used verbatim when non-empty.
	Override string
	UserDir  string
}

// NewPathResolver builds a resolver from tool settings.
func NewPathResolver(s Settings) *PathResolver {
	return &PathResolver{Override: s.Config, UserDir: s.UserDir}
}

// ConfigPath returns the override if one was given, otherwise odamex.cfg in
// the user directory.
func (r *PathResolver) ConfigPath() string {
	if r.Override != "" {
		return r.Override
	}
	dir := r.UserDir
	if dir == "" {
		dir = BuildOdamexDirPath()
	}
	return filepath.Join(dir, DefaultConfigFile)
}
