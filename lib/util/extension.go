package util

import (
	"strings"
)

// AppendExtension returns filename with ext (including the leading dot)
// appended unless filename already ends in ext, ignoring case.
func AppendExtension(filename, ext string) string {
	if strings.HasSuffix(strings.ToLower(filename), strings.ToLower(ext)) {
		return filename
	}
	return filename + ext
}
