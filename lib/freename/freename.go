// Package freename picks an unused filename for a new artifact such as a
// screenshot or demo recording.
//
// Reserve only checks for existence; it does not create the file. Another
// writer may take the same name before the caller creates it.
package freename

import (
	"errors"
	"strconv"

	"github.com/go-i2p/logger"
	"github.com/odamex/odacfg/lib/util"
	"github.com/spf13/afero"
)

var log = logger.GetGoI2PLogger()

// MaxSuffix is the highest numeric suffix tried before giving up.
const MaxSuffix = 9999

// ErrNamesExhausted is returned when every candidate up to MaxSuffix exists.
var ErrNamesExhausted = errors.New("no free filename left")

// Finder searches for free names on a filesystem.
type Finder struct {
	fs afero.Fs
}

// NewFinder returns a Finder checking existence on fs.
func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Candidate formats the name tried for suffix n. Suffix 0 means no suffix.
func Candidate(base string, n int, ext string) string {
	if n == 0 {
		return base + "." + ext
	}
	return base + "." + strconv.Itoa(n) + "." + ext
}

// Reserve returns base.ext if it is free, otherwise the first free name among
// base.1.ext through base.9999.ext.
func (f *Finder) Reserve(base, ext string) (string, error) {
	for n := 0; n <= MaxSuffix; n++ {
		name := Candidate(base, n, ext)
		if !util.CheckFileExists(f.fs, name) {
			log.WithFields(logger.Fields{
				"at":     "(Finder) Reserve",
				"name":   name,
				"suffix": n,
			}).Debug("Found free filename")
			return name, nil
		}
	}

	log.WithFields(logger.Fields{
		"at":   "(Finder) Reserve",
		"base": base,
		"ext":  ext,
	}).Warn("All numbered filenames are taken")
	return "", ErrNamesExhausted
}
