package constants

import "strings"

// AllowedExtensions holds the attachment extensions accepted for extraction.
// The engine assumes extractable text structure, so only PDFs are ingested.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExtension reports whether the filename carries an accepted
// extension.
func IsAllowedExtension(filename string) bool {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return false
	}
	_, ok := AllowedExtensions[NormalizeExt(filename[idx:])]
	return ok
}
