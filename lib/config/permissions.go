package config

import (
	"os"

	"github.com/odamex/odacfg/lib/util"
	"github.com/spf13/afero"
)

// StandardFilePermissions for configuration files and artifacts
const StandardFilePermissions = 0o644

// StandardDirPermissions for the user directory
const StandardDirPermissions = 0o755

func ensureDir(dir string) error {
	return os.MkdirAll(dir, StandardDirPermissions)
}

func fileExists(path string) bool {
	return util.CheckFileExists(afero.NewOsFs(), path)
}
