package selscan

import (
	"path/filepath"
	"strings"
)

// Mode is the source dialect an extractor is bound to.
type Mode string

// Mode constants.
const (
	ModeMarkup    Mode = "markup"
	ModeComponent Mode = "component"
)

// ParseMode converts a user-supplied mode name into a Mode.
// "html" and "jsx" are accepted as aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markup", "html":
		return ModeMarkup, nil
	case "component", "jsx":
		return ModeComponent, nil
	}
	return "", Errorf(EINVALID, "unknown mode %q (want markup or component)", s)
}

// ModeForPath returns the mode implied by a file's extension, or an empty
// Mode if the extension is not supported.
func ModeForPath(path string) Mode {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ModeMarkup
	case ".jsx", ".js":
		return ModeComponent
	default:
		return ""
	}
}
