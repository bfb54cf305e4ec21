package util

import (
	"github.com/spf13/afero"
)

// Check if a file exists on fs
// returns false for an empty path or if it cannot be stat'ed for any reason
func CheckFileExists(fs afero.Fs, fpath string) bool {
	if fpath == "" {
		return false
	}
	_, e := fs.Stat(fpath)
	return e == nil
}
