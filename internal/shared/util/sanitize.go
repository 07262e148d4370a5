package util

import (
	"errors"
	"strings"
)

var errInvalidFileName = errors.New("invalid file name")

// SanitizeFileName makes an uploaded file name safe to embed in a storage
// key: traversal sequences are rejected, path separators and whitespace are
// flattened to underscores.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errInvalidFileName
	}
	s := strings.TrimSpace(name)
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case r == ' ' || r == '\t':
			return '_'
		default:
			return r
		}
	}, s)
	if s == "" {
		return "", errInvalidFileName
	}
	return s, nil
}
